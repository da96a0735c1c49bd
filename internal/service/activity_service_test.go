package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/repository"
	"github.com/offcon/crono/internal/testutil"
)

func TestActivityService_CreateAppliesDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t)
	svc := NewActivityService(env.activities, env.uow)

	a, err := svc.Create(ctx, contract.ActivityInput{
		PlanID:   plan.ID,
		Code:     "7",
		Status:   "BOGUS",
		Progress: 300,
	})
	require.NoError(t, err)
	assert.Equal(t, "7", a.Description, "description defaults to the code")
	assert.Equal(t, domain.StatusPending, a.Status)
	assert.Equal(t, domain.KindDelivery, a.Kind)
	assert.Equal(t, 100, a.Progress)
}

func TestActivityService_CreateRequiresCode(t *testing.T) {
	env := newTestEnv(t)
	plan := env.createPlan(t)
	svc := NewActivityService(env.activities, env.uow)

	_, err := svc.Create(context.Background(), contract.ActivityInput{PlanID: plan.ID, Code: "  "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestActivityService_CreateUnderUnknownParentIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	plan := env.createPlan(t)
	svc := NewActivityService(env.activities, env.uow)

	ghost := int64(4242)
	_, err := svc.Create(context.Background(), contract.ActivityInput{
		PlanID: plan.ID, Code: "x", ParentID: &ghost,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActivityService_UpdateScheduleRollsUpAncestors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t)
	svc := NewActivityService(env.activities, env.uow)

	parent := testutil.NewTestActivity(plan.ID, "1")
	require.NoError(t, env.activities.Create(ctx, parent))
	child := testutil.NewTestActivity(plan.ID, "1.1",
		testutil.WithParent(parent.ID), testutil.WithDates("2024-05-01", "2024-05-10"))
	require.NoError(t, env.activities.Create(ctx, child))

	err := svc.UpdateSchedule(ctx, child.ID, contract.ScheduleInput{
		Start: strPtr("2024-05-01"),
		End:   strPtr("2024-05-25"),
	})
	require.NoError(t, err)

	got, err := env.activities.GetByID(ctx, parent.ID)
	require.NoError(t, err)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, "2024-05-25", got.EndDate.Format(domain.DateLayout),
		"parent range follows the dragged child")
}

func TestActivityService_UpdateScheduleClampsProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t)
	svc := NewActivityService(env.activities, env.uow)

	a := testutil.NewTestActivity(plan.ID, "1")
	require.NoError(t, env.activities.Create(ctx, a))

	require.NoError(t, svc.UpdateSchedule(ctx, a.ID, contract.ScheduleInput{Progress: intPtr(-10)}))
	got, err := env.activities.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Progress)
}

func TestActivityService_UpdateScheduleRejectsBadDate(t *testing.T) {
	env := newTestEnv(t)
	plan := env.createPlan(t)
	svc := NewActivityService(env.activities, env.uow)

	a := testutil.NewTestActivity(plan.ID, "1")
	require.NoError(t, env.activities.Create(context.Background(), a))

	err := svc.UpdateSchedule(context.Background(), a.ID, contract.ScheduleInput{Start: strPtr("2024-13-99")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestActivityService_DeleteCascadesAndRollsUp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t)
	svc := NewActivityService(env.activities, env.uow)

	parent := testutil.NewTestActivity(plan.ID, "1")
	require.NoError(t, env.activities.Create(ctx, parent))
	early := testutil.NewTestActivity(plan.ID, "1.1",
		testutil.WithParent(parent.ID), testutil.WithDates("2024-01-01", "2024-01-10"))
	require.NoError(t, env.activities.Create(ctx, early))
	late := testutil.NewTestActivity(plan.ID, "1.2",
		testutil.WithParent(parent.ID), testutil.WithDates("2024-01-05", "2024-01-20"))
	require.NoError(t, env.activities.Create(ctx, late))
	require.NoError(t, env.followUps.Create(ctx, testutil.NewTestFollowUp(late.ID, "2024-01-06")))

	// Seed the parent's rolled-up range.
	require.NoError(t, svc.UpdateSchedule(ctx, early.ID, contract.ScheduleInput{}))

	require.NoError(t, svc.Delete(ctx, late.ID))

	_, err := env.activities.GetByID(ctx, late.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	fups, err := env.followUps.ListByActivity(ctx, late.ID)
	require.NoError(t, err)
	assert.Empty(t, fups)

	got, err := env.activities.GetByID(ctx, parent.ID)
	require.NoError(t, err)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, "2024-01-10", got.EndDate.Format(domain.DateLayout))
}

func TestActivityService_DeleteUnknownIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewActivityService(env.activities, env.uow)
	err := svc.Delete(context.Background(), 99999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
