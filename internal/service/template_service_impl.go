package service

import (
	"context"
	"time"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/domain"
)

// templateStep is one entry of the standard fabrication schedule. Steps run
// back to back; a zero-duration step is a milestone.
type templateStep struct {
	code        string
	description string
	days        int
}

// standardTemplate is the shop's default schedule for a fabrication order,
// from PO receipt to delivery.
var standardTemplate = []templateStep{
	{code: "1", description: "Recebimento PO", days: 0},
	{code: "2", description: "Recebimento Materiais", days: 7},
	{code: "3", description: "Montagem/Soldagem", days: 5},
	{code: "4", description: "Inspeção dimensional 3D", days: 1},
	{code: "5", description: "ENDs TH", days: 1},
	{code: "6", description: "Decapagem e Passivação", days: 1},
	{code: "7", description: "Pintura", days: 0},
	{code: "8", description: "Embalagem e entrega", days: 1},
}

type templateService struct {
	reconciler ReconcileService
}

// NewTemplateService creates the schedule seeding service. Seeding is a
// reconciliation with delete_missing set, so re-applying the template
// resets a plan to the standard eight steps.
func NewTemplateService(reconciler ReconcileService) TemplateService {
	return &templateService{reconciler: reconciler}
}

func (s *templateService) ApplyStandard(ctx context.Context, planID int64, start time.Time) (contract.ReconcileStats, error) {
	req := contract.ReconcileRequest{
		PlanID:        planID,
		Activities:    StandardTemplatePatches(start),
		DeleteMissing: true,
	}
	return s.reconciler.Reconcile(ctx, req)
}

// StandardTemplatePatches expands the standard schedule into activity
// descriptors starting at the given date. Each step starts where the
// previous one ended; zero-day steps become same-day milestones.
func StandardTemplatePatches(start time.Time) []domain.ActivityPatch {
	patches := make([]domain.ActivityPatch, 0, len(standardTemplate))
	cursor := start
	for i, step := range standardTemplate {
		stepStart := cursor
		stepEnd := cursor.AddDate(0, 0, step.days)
		if step.days == 0 {
			stepEnd = stepStart
		}

		desc := step.description
		startStr := stepStart.Format(domain.DateLayout)
		endStr := stepEnd.Format(domain.DateLayout)
		kind := string(domain.KindDelivery)
		if step.days == 0 {
			kind = string(domain.KindMilestone)
		}
		order := i

		patches = append(patches, domain.ActivityPatch{
			Code:         step.code,
			Description:  &desc,
			StartDate:    &startStr,
			EndDate:      &endStr,
			Kind:         &kind,
			OrderIndex:   &order,
			HasStartDate: true,
			HasEndDate:   true,
		})
		cursor = stepEnd
	}
	return patches
}
