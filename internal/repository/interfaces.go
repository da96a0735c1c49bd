package repository

import (
	"context"
	"time"

	"github.com/offcon/crono/internal/domain"
)

type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	GetByID(ctx context.Context, id int64) (*domain.Plan, error)
	GetByNumber(ctx context.Context, number string) (*domain.Plan, error)
	List(ctx context.Context) ([]*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan) error
	Delete(ctx context.Context, id int64) error
}

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	GetByCode(ctx context.Context, planID int64, code string) (*domain.Activity, error)
	ListByPlan(ctx context.Context, planID int64) ([]*domain.Activity, error)
	ListChildren(ctx context.Context, parentID int64) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	UpdateParent(ctx context.Context, id int64, parentID *int64) error
	UpdateDates(ctx context.Context, id int64, start, end *time.Time) error
	Delete(ctx context.Context, id int64) error
	CountByPlan(ctx context.Context, planID int64) (int, error)
}

type FollowUpRepo interface {
	Create(ctx context.Context, f *domain.FollowUp) error
	GetByID(ctx context.Context, id int64) (*domain.FollowUp, error)
	ListByActivity(ctx context.Context, activityID int64) ([]*domain.FollowUp, error)
	Update(ctx context.Context, f *domain.FollowUp) error
	Delete(ctx context.Context, id int64) error
	DeleteByActivity(ctx context.Context, activityID int64) error
}

type LinkRepo interface {
	Create(ctx context.Context, l *domain.ExternalLink) error
	ListByActivity(ctx context.Context, activityID int64) ([]*domain.ExternalLink, error)
	ListByPlan(ctx context.Context, planID int64) ([]*domain.ExternalLink, error)
	Delete(ctx context.Context, id int64) error
	DeleteByActivity(ctx context.Context, activityID int64) error
}
