package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/testutil"
)

// TestReconcile_MidBatchFailureRollsBackEverything injects a write failure
// partway through a batch and verifies the plan state is exactly what it was
// before the call, timestamps included.
func TestReconcile_MidBatchFailureRollsBackEverything(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t)

	_, err := env.reconciler.Reconcile(ctx, contract.ReconcileRequest{
		PlanID: plan.ID,
		Activities: []domain.ActivityPatch{
			patch("base", withSpan("2024-01-01", "2024-01-05")),
		},
	})
	require.NoError(t, err)

	before, err := env.activities.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)

	boom := errors.New("disk went away")
	failing := NewReconcileService(&testutil.FailOnNthExecUoW{DB: env.db, FailOn: 2, Err: boom}, nil)

	_, err = failing.Reconcile(ctx, contract.ReconcileRequest{
		PlanID: plan.ID,
		Activities: []domain.ActivityPatch{
			patch("base", withProgress(90)),
			patch("n1"),
			patch("n2"),
		},
	})
	require.ErrorIs(t, err, boom)

	after, listErr := env.activities.ListByPlan(ctx, plan.ID)
	require.NoError(t, listErr)
	assert.Equal(t, before, after, "failed batch must leave the plan byte-identical")
}

// TestReconcile_FailureDuringDeletionRollsBackUpserts verifies that a late
// failure (in the deletion pass) also undoes the earlier upsert pass.
func TestReconcile_FailureDuringDeletionRollsBackUpserts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t)

	_, err := env.reconciler.Reconcile(ctx, contract.ReconcileRequest{
		PlanID:     plan.ID,
		Activities: []domain.ActivityPatch{patch("old")},
	})
	require.NoError(t, err)

	before, err := env.activities.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)

	boom := errors.New("constraint gremlin")
	// Exec 1 creates "fresh"; exec 2 is a deletion write for "old".
	failing := NewReconcileService(&testutil.FailOnNthExecUoW{DB: env.db, FailOn: 2, Err: boom}, nil)

	_, err = failing.Reconcile(ctx, contract.ReconcileRequest{
		PlanID:        plan.ID,
		Activities:    []domain.ActivityPatch{patch("fresh")},
		DeleteMissing: true,
	})
	require.ErrorIs(t, err, boom)

	after, listErr := env.activities.ListByPlan(ctx, plan.ID)
	require.NoError(t, listErr)
	assert.Equal(t, before, after)
}
