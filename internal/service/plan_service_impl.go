package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/offcon/crono/internal/db"
	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/repository"
)

type planService struct {
	plans repository.PlanRepo
	uow   db.UnitOfWork
}

// NewPlanService creates the plan CRUD service. The unit of work is only
// needed for Delete, which cascades through the plan's activity trees.
func NewPlanService(plans repository.PlanRepo, uow db.UnitOfWork) PlanService {
	return &planService{plans: plans, uow: uow}
}

func (s *planService) Create(ctx context.Context, p *domain.Plan) error {
	if strings.TrimSpace(p.Number) == "" {
		return fmt.Errorf("%w: plan number is required", ErrValidation)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = string(domain.StatusPending)
	}
	return s.plans.Create(ctx, p)
}

func (s *planService) GetByID(ctx context.Context, id int64) (*domain.Plan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) List(ctx context.Context) ([]*domain.Plan, error) {
	return s.plans.List(ctx)
}

func (s *planService) Update(ctx context.Context, p *domain.Plan) error {
	if strings.TrimSpace(p.Number) == "" {
		return fmt.Errorf("%w: plan number is required", ErrValidation)
	}
	p.UpdatedAt = time.Now().UTC()
	return s.plans.Update(ctx, p)
}

func (s *planService) Delete(ctx context.Context, id int64) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txActs := repository.NewSQLiteActivityRepo(tx)
		txFollowUps := repository.NewSQLiteFollowUpRepo(tx)
		txLinks := repository.NewSQLiteLinkRepo(tx)

		if _, err := txPlans.GetByID(ctx, id); err != nil {
			return err
		}
		all, err := txActs.ListByPlan(ctx, id)
		if err != nil {
			return fmt.Errorf("listing plan activities: %w", err)
		}
		removed := make(map[int64]bool)
		for _, a := range all {
			if a.ParentID != nil || removed[a.ID] {
				continue
			}
			ids, err := deleteSubtree(ctx, txActs, txFollowUps, txLinks, a.ID)
			if err != nil {
				return err
			}
			for _, rid := range ids {
				removed[rid] = true
			}
		}
		return txPlans.Delete(ctx, id)
	})
}
