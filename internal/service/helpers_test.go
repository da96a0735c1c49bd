package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/db"
	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/repository"
	"github.com/offcon/crono/internal/testutil"
)

// testEnv wires a full service stack over an in-memory database.
type testEnv struct {
	db         *sql.DB
	uow        db.UnitOfWork
	plans      repository.PlanRepo
	activities repository.ActivityRepo
	followUps  repository.FollowUpRepo
	links      repository.LinkRepo
	reconciler ReconcileService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	return &testEnv{
		db:         database,
		uow:        uow,
		plans:      repository.NewSQLitePlanRepo(database),
		activities: repository.NewSQLiteActivityRepo(database),
		followUps:  repository.NewSQLiteFollowUpRepo(database),
		links:      repository.NewSQLiteLinkRepo(database),
		reconciler: NewReconcileService(uow, nil),
	}
}

func (e *testEnv) createPlan(t *testing.T) *domain.Plan {
	t.Helper()
	plan := testutil.NewTestPlan()
	require.NoError(t, e.plans.Create(context.Background(), plan))
	return plan
}

func (e *testEnv) mustGetByCode(t *testing.T, planID int64, code string) *domain.Activity {
	t.Helper()
	a, err := e.activities.GetByCode(context.Background(), planID, code)
	require.NoError(t, err, "activity %q should exist", code)
	return a
}

// reconcileRequestWith is sugar for a plain upsert batch.
func reconcileRequestWith(planID int64, patches ...domain.ActivityPatch) contract.ReconcileRequest {
	return contract.ReconcileRequest{PlanID: planID, Activities: patches}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// patch builds an ActivityPatch the way a decoded JSON payload would look,
// setting the presence flags for any presence-sensitive field passed.
func patch(code string, opts ...func(*domain.ActivityPatch)) domain.ActivityPatch {
	p := domain.ActivityPatch{Code: code}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func withDesc(d string) func(*domain.ActivityPatch) {
	return func(p *domain.ActivityPatch) { p.Description = strPtr(d) }
}

func withParentCode(code string) func(*domain.ActivityPatch) {
	return func(p *domain.ActivityPatch) {
		p.ParentCode = strPtr(code)
		p.HasParentCode = true
	}
}

func withParentNull() func(*domain.ActivityPatch) {
	return func(p *domain.ActivityPatch) {
		p.ParentCode = nil
		p.HasParentCode = true
	}
}

func withSpan(start, end string) func(*domain.ActivityPatch) {
	return func(p *domain.ActivityPatch) {
		p.StartDate = strPtr(start)
		p.EndDate = strPtr(end)
		p.HasStartDate = true
		p.HasEndDate = true
	}
}

func withStatus(s string) func(*domain.ActivityPatch) {
	return func(p *domain.ActivityPatch) { p.Status = strPtr(s) }
}

func withKindPatch(k string) func(*domain.ActivityPatch) {
	return func(p *domain.ActivityPatch) { p.Kind = strPtr(k) }
}

func withProgress(n int) func(*domain.ActivityPatch) {
	return func(p *domain.ActivityPatch) { p.Progress = intPtr(n) }
}

func withOrder(n int) func(*domain.ActivityPatch) {
	return func(p *domain.ActivityPatch) { p.OrderIndex = intPtr(n) }
}

func withResponsible(r string) func(*domain.ActivityPatch) {
	return func(p *domain.ActivityPatch) {
		p.Responsible = strPtr(r)
		p.HasResponsible = true
	}
}
