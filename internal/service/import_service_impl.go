package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/importer"
	"github.com/offcon/crono/internal/repository"
)

// ImportService replays a schedule batch file against a plan.
type ImportService interface {
	ImportFile(ctx context.Context, filePath string) (contract.ReconcileStats, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema) (contract.ReconcileStats, error)
}

type importService struct {
	plans      repository.PlanRepo
	reconciler ReconcileService
}

// NewImportService creates the file import service. Importing is a
// reconciliation: re-running the same file is a no-op beyond counters.
func NewImportService(plans repository.PlanRepo, reconciler ReconcileService) ImportService {
	return &importService{plans: plans, reconciler: reconciler}
}

func (s *importService) ImportFile(ctx context.Context, filePath string) (contract.ReconcileStats, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return contract.ReconcileStats{}, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

func (s *importService) ImportSchema(ctx context.Context, schema *importer.ImportSchema) (contract.ReconcileStats, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return contract.ReconcileStats{}, formatValidationErrors(errs)
	}

	planID := schema.Plan.ID
	if planID == 0 {
		plan, err := s.plans.GetByNumber(ctx, strings.TrimSpace(schema.Plan.Number))
		if err != nil {
			return contract.ReconcileStats{}, fmt.Errorf("plan %q: %w", schema.Plan.Number, err)
		}
		planID = plan.ID
	}

	return s.reconciler.Reconcile(ctx, importer.Convert(schema, planID))
}

func formatValidationErrors(errs []error) error {
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, "  - "+e.Error())
	}
	return fmt.Errorf("%w: import file has %d problems:\n%s", ErrValidation, len(errs), strings.Join(lines, "\n"))
}
