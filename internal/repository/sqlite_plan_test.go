package repository

import (
	"context"
	"testing"

	"github.com/offcon/crono/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRepo_CreateGetList(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLitePlanRepo(db)

	plan := testutil.NewTestPlan(testutil.WithClient("Offcon Ltda"))
	require.NoError(t, repo.Create(ctx, plan))

	got, err := repo.GetByID(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.Number, got.Number)
	assert.Equal(t, "Offcon Ltda", got.ClientName)

	byNumber, err := repo.GetByNumber(ctx, plan.Number)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, byNumber.ID)

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, plans)
}

func TestPlanRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(db)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanRepo_DuplicateNumber(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLitePlanRepo(db)

	plan := testutil.NewTestPlan()
	require.NoError(t, repo.Create(ctx, plan))

	dup := testutil.NewTestPlan()
	dup.Number = plan.Number
	assert.ErrorIs(t, repo.Create(ctx, dup), ErrConstraint)
}
