package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/importer"
	"github.com/offcon/crono/internal/repository"
)

func TestImport_FileRoundTripByPlanNumber(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	plan := env.createPlan(t)
	svc := NewImportService(env.plans, env.reconciler)

	path := filepath.Join(t.TempDir(), "batch.json")
	payload := `{
		"plan": {"number": "` + plan.Number + `"},
		"activities": [
			{"code": "1", "description": "Estrutura"},
			{"code": "1.1", "parent_code": "1", "start_date": "2024-07-01", "end_date": "2024-07-10"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	stats, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Created)
	assert.Equal(t, 1, stats.ParentLinked)

	parent := env.mustGetByCode(t, plan.ID, "1")
	require.NotNil(t, parent.StartDate, "import rolls dates up like any reconciliation")
	assert.Equal(t, "2024-07-01", parent.StartDate.Format(domain.DateLayout))
}

func TestImport_InvalidSchemaReportsAllProblems(t *testing.T) {
	env := newTestEnv(t)
	svc := NewImportService(env.plans, env.reconciler)

	schema := &importer.ImportSchema{
		Activities: []domain.ActivityPatch{{Code: ""}, {Code: "1"}, {Code: "1"}},
	}
	_, err := svc.ImportSchema(context.Background(), schema)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "3 problems")
}

func TestImport_UnknownPlanNumberIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewImportService(env.plans, env.reconciler)

	schema := &importer.ImportSchema{
		Plan:       importer.PlanImport{Number: "OS-none"},
		Activities: []domain.ActivityPatch{{Code: "1"}},
	}
	_, err := svc.ImportSchema(context.Background(), schema)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
