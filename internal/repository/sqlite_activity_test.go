package repository

import (
	"context"
	"testing"

	"github.com/offcon/crono/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	planRepo := NewSQLitePlanRepo(db)
	actRepo := NewSQLiteActivityRepo(db)

	plan := testutil.NewTestPlan()
	require.NoError(t, planRepo.Create(ctx, plan))
	require.NotZero(t, plan.ID, "Create should assign the surrogate id")

	act := testutil.NewTestActivity(plan.ID, "1", testutil.WithDates("2024-01-01", "2024-01-10"))
	require.NoError(t, actRepo.Create(ctx, act))
	require.NotZero(t, act.ID)

	got, err := actRepo.GetByID(ctx, act.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", got.Code)
	assert.Equal(t, plan.ID, got.PlanID)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, "2024-01-01", got.StartDate.Format("2006-01-02"))
	require.NotNil(t, got.EndDate)
	assert.Equal(t, "2024-01-10", got.EndDate.Format("2006-01-02"))
	assert.Nil(t, got.ParentID)
}

func TestActivityRepo_GetByCode(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	planRepo := NewSQLitePlanRepo(db)
	actRepo := NewSQLiteActivityRepo(db)

	plan := testutil.NewTestPlan()
	require.NoError(t, planRepo.Create(ctx, plan))
	act := testutil.NewTestActivity(plan.ID, "2.1")
	require.NoError(t, actRepo.Create(ctx, act))

	got, err := actRepo.GetByCode(ctx, plan.ID, "2.1")
	require.NoError(t, err)
	assert.Equal(t, act.ID, got.ID)

	_, err = actRepo.GetByCode(ctx, plan.ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityRepo_CodeUniqueWithinPlan(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	planRepo := NewSQLitePlanRepo(db)
	actRepo := NewSQLiteActivityRepo(db)

	plan := testutil.NewTestPlan()
	require.NoError(t, planRepo.Create(ctx, plan))
	require.NoError(t, actRepo.Create(ctx, testutil.NewTestActivity(plan.ID, "1")))

	err := actRepo.Create(ctx, testutil.NewTestActivity(plan.ID, "1"))
	assert.ErrorIs(t, err, ErrConstraint, "duplicate code within a plan must be rejected")

	// Same code in a different plan is fine.
	other := testutil.NewTestPlan()
	require.NoError(t, planRepo.Create(ctx, other))
	assert.NoError(t, actRepo.Create(ctx, testutil.NewTestActivity(other.ID, "1")))
}

func TestActivityRepo_UpdateParentAndDetach(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	planRepo := NewSQLitePlanRepo(db)
	actRepo := NewSQLiteActivityRepo(db)

	plan := testutil.NewTestPlan()
	require.NoError(t, planRepo.Create(ctx, plan))
	parent := testutil.NewTestActivity(plan.ID, "1")
	child := testutil.NewTestActivity(plan.ID, "1.1")
	require.NoError(t, actRepo.Create(ctx, parent))
	require.NoError(t, actRepo.Create(ctx, child))

	require.NoError(t, actRepo.UpdateParent(ctx, child.ID, &parent.ID))
	got, err := actRepo.GetByID(ctx, child.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, parent.ID, *got.ParentID)

	require.NoError(t, actRepo.UpdateParent(ctx, child.ID, nil))
	got, err = actRepo.GetByID(ctx, child.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ParentID, "nil parent means detach to root")
}

func TestActivityRepo_ListByPlanOrdering(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	planRepo := NewSQLitePlanRepo(db)
	actRepo := NewSQLiteActivityRepo(db)

	plan := testutil.NewTestPlan()
	require.NoError(t, planRepo.Create(ctx, plan))
	require.NoError(t, actRepo.Create(ctx, testutil.NewTestActivity(plan.ID, "B", testutil.WithOrder(2))))
	require.NoError(t, actRepo.Create(ctx, testutil.NewTestActivity(plan.ID, "A", testutil.WithOrder(1))))
	require.NoError(t, actRepo.Create(ctx, testutil.NewTestActivity(plan.ID, "C", testutil.WithOrder(1))))

	acts, err := actRepo.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, acts, 3)
	assert.Equal(t, "A", acts[0].Code, "order_index first, then code")
	assert.Equal(t, "C", acts[1].Code)
	assert.Equal(t, "B", acts[2].Code)
}

func TestActivityRepo_UpdateDates(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	planRepo := NewSQLitePlanRepo(db)
	actRepo := NewSQLiteActivityRepo(db)

	plan := testutil.NewTestPlan()
	require.NoError(t, planRepo.Create(ctx, plan))
	act := testutil.NewTestActivity(plan.ID, "1", testutil.WithDates("2024-01-01", "2024-01-05"))
	require.NoError(t, actRepo.Create(ctx, act))

	require.NoError(t, actRepo.UpdateDates(ctx, act.ID, nil, nil))
	got, err := actRepo.GetByID(ctx, act.ID)
	require.NoError(t, err)
	assert.Nil(t, got.StartDate)
	assert.Nil(t, got.EndDate)
}
