package service

import (
	"context"
	"time"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/wbs"
)

// ReconcileService applies a batch of partial activity descriptors to a
// plan's WBS tree in one transaction: create, merge, relink, delete.
type ReconcileService interface {
	Reconcile(ctx context.Context, req contract.ReconcileRequest) (contract.ReconcileStats, error)
}

type PlanService interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, id int64) error
}

type ActivityService interface {
	Create(ctx context.Context, in contract.ActivityInput) (*domain.Activity, error)
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	ListByPlan(ctx context.Context, planID int64) ([]*domain.Activity, error)
	Update(ctx context.Context, id int64, in contract.ActivityInput) (*domain.Activity, error)
	UpdateSchedule(ctx context.Context, id int64, in contract.ScheduleInput) error
	Delete(ctx context.Context, id int64) error
}

type FollowUpService interface {
	Create(ctx context.Context, activityID int64, in contract.FollowUpInput) (*domain.FollowUp, error)
	ListByActivity(ctx context.Context, activityID int64) ([]*domain.FollowUp, error)
	Update(ctx context.Context, id int64, in contract.FollowUpInput) (*domain.FollowUp, error)
	Delete(ctx context.Context, id int64) error
}

type LinkService interface {
	Create(ctx context.Context, activityID int64, in contract.LinkInput) (*domain.ExternalLink, error)
	ListByActivity(ctx context.Context, activityID int64) ([]*domain.ExternalLink, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectionService serves the read path: nested tree, Gantt timeline and
// dashboard stats, all recomputed from the store on every call.
type ProjectionService interface {
	Tree(ctx context.Context, planID int64) ([]*wbs.Node, error)
	Gantt(ctx context.Context, planID int64, window wbs.GanttWindow) ([]wbs.GanttRow, error)
	Stats(ctx context.Context, planID int64, today time.Time) (wbs.PlanStats, error)
}

// TemplateService seeds a plan with the standard fabrication schedule.
type TemplateService interface {
	ApplyStandard(ctx context.Context, planID int64, start time.Time) (contract.ReconcileStats, error)
}
