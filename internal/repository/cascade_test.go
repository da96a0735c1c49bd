package repository

import (
	"context"
	"testing"

	"github.com/offcon/crono/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCascadeDelete_PlanToActivities verifies that deleting a plan cascades to its activities.
func TestCascadeDelete_PlanToActivities(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	planRepo := NewSQLitePlanRepo(db)
	actRepo := NewSQLiteActivityRepo(db)

	plan := testutil.NewTestPlan()
	require.NoError(t, planRepo.Create(ctx, plan))
	act := testutil.NewTestActivity(plan.ID, "1")
	require.NoError(t, actRepo.Create(ctx, act))

	require.NoError(t, planRepo.Delete(ctx, plan.ID))

	_, err := actRepo.GetByID(ctx, act.ID)
	assert.ErrorIs(t, err, ErrNotFound, "activity should be cascade-deleted with its plan")
}

// TestCascadeDelete_ActivityToFollowUps verifies activities -> followups cascade.
func TestCascadeDelete_ActivityToFollowUps(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	planRepo := NewSQLitePlanRepo(db)
	actRepo := NewSQLiteActivityRepo(db)
	fupRepo := NewSQLiteFollowUpRepo(db)

	plan := testutil.NewTestPlan()
	require.NoError(t, planRepo.Create(ctx, plan))
	act := testutil.NewTestActivity(plan.ID, "1")
	require.NoError(t, actRepo.Create(ctx, act))
	fup := testutil.NewTestFollowUp(act.ID, "2024-02-01")
	require.NoError(t, fupRepo.Create(ctx, fup))

	require.NoError(t, actRepo.Delete(ctx, act.ID))

	_, err := fupRepo.GetByID(ctx, fup.ID)
	assert.ErrorIs(t, err, ErrNotFound, "follow-up should be cascade-deleted with its activity")
}

// TestCascadeDelete_ActivityToLinks verifies activities -> external_links cascade.
func TestCascadeDelete_ActivityToLinks(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	planRepo := NewSQLitePlanRepo(db)
	actRepo := NewSQLiteActivityRepo(db)
	linkRepo := NewSQLiteLinkRepo(db)

	plan := testutil.NewTestPlan()
	require.NoError(t, planRepo.Create(ctx, plan))
	act := testutil.NewTestActivity(plan.ID, "1")
	require.NoError(t, actRepo.Create(ctx, act))
	require.NoError(t, linkRepo.Create(ctx, testutil.NewTestLink(act.ID, "OC-55")))

	require.NoError(t, actRepo.Delete(ctx, act.ID))

	links, err := linkRepo.ListByActivity(ctx, act.ID)
	require.NoError(t, err)
	assert.Empty(t, links, "links should be cascade-deleted with their activity")
}

// TestCascadeDelete_ParentToChildren verifies the parent_id self-reference cascade.
func TestCascadeDelete_ParentToChildren(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	planRepo := NewSQLitePlanRepo(db)
	actRepo := NewSQLiteActivityRepo(db)

	plan := testutil.NewTestPlan()
	require.NoError(t, planRepo.Create(ctx, plan))
	parent := testutil.NewTestActivity(plan.ID, "1")
	require.NoError(t, actRepo.Create(ctx, parent))
	child := testutil.NewTestActivity(plan.ID, "1.1", testutil.WithParent(parent.ID))
	require.NoError(t, actRepo.Create(ctx, child))

	require.NoError(t, actRepo.Delete(ctx, parent.ID))

	_, err := actRepo.GetByID(ctx, child.ID)
	assert.ErrorIs(t, err, ErrNotFound, "children fall with their parent at the schema level")
}
