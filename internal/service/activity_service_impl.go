package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/db"
	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/repository"
)

type activityService struct {
	activities repository.ActivityRepo
	uow        db.UnitOfWork
}

// NewActivityService creates the single-activity CRUD service. Writes that
// touch the tree shape (dates, parent, delete) run in a transaction and
// re-aggregate ancestor date ranges before committing.
func NewActivityService(activities repository.ActivityRepo, uow db.UnitOfWork) ActivityService {
	return &activityService{activities: activities, uow: uow}
}

func (s *activityService) Create(ctx context.Context, in contract.ActivityInput) (*domain.Activity, error) {
	a, err := activityFromInput(in)
	if err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActs := repository.NewSQLiteActivityRepo(tx)
		if a.ParentID != nil {
			if _, err := txActs.GetByID(ctx, *a.ParentID); err != nil {
				return fmt.Errorf("parent activity %d: %w", *a.ParentID, err)
			}
		}
		if err := txActs.Create(ctx, a); err != nil {
			return err
		}
		return rollUpFrom(ctx, txActs, a.ParentID)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *activityService) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *activityService) ListByPlan(ctx context.Context, planID int64) ([]*domain.Activity, error) {
	return s.activities.ListByPlan(ctx, planID)
}

func (s *activityService) Update(ctx context.Context, id int64, in contract.ActivityInput) (*domain.Activity, error) {
	var updated *domain.Activity
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActs := repository.NewSQLiteActivityRepo(tx)
		current, err := txActs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := applyInput(current, in); err != nil {
			return err
		}
		if err := txActs.Update(ctx, current); err != nil {
			return err
		}
		if err := rollUpFrom(ctx, txActs, current.ParentID); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *activityService) UpdateSchedule(ctx context.Context, id int64, in contract.ScheduleInput) error {
	start, err := parseOptionalDate(in.Start)
	if err != nil {
		return fmt.Errorf("%w: invalid start date", ErrValidation)
	}
	end, err := parseOptionalDate(in.End)
	if err != nil {
		return fmt.Errorf("%w: invalid end date", ErrValidation)
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActs := repository.NewSQLiteActivityRepo(tx)
		current, err := txActs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if in.Start != nil {
			current.StartDate = start
		}
		if in.End != nil {
			current.EndDate = end
		}
		if in.Progress != nil {
			current.Progress = domain.ClampProgress(*in.Progress)
		}
		current.UpdatedAt = time.Now().UTC()
		if err := txActs.Update(ctx, current); err != nil {
			return err
		}
		return rollUpFrom(ctx, txActs, current.ParentID)
	})
}

func (s *activityService) Delete(ctx context.Context, id int64) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActs := repository.NewSQLiteActivityRepo(tx)
		txFollowUps := repository.NewSQLiteFollowUpRepo(tx)
		txLinks := repository.NewSQLiteLinkRepo(tx)

		current, err := txActs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if _, err := deleteSubtree(ctx, txActs, txFollowUps, txLinks, id); err != nil {
			return err
		}
		return rollUpFrom(ctx, txActs, current.ParentID)
	})
}

func activityFromInput(in contract.ActivityInput) (*domain.Activity, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: activity code is required", ErrValidation)
	}
	start, err := parseOptionalDate(in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: activity %q has invalid start_date", ErrValidation, code)
	}
	end, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: activity %q has invalid end_date", ErrValidation, code)
	}

	now := time.Now().UTC()
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		desc = code
	}
	return &domain.Activity{
		PlanID:      in.PlanID,
		Code:        code,
		Description: desc,
		Responsible: in.Responsible,
		StartDate:   start,
		EndDate:     end,
		Status:      domain.NormalizeStatus(in.Status, domain.StatusPending),
		Progress:    domain.ClampProgress(in.Progress),
		Kind:        domain.NormalizeKind(in.Kind, domain.KindDelivery),
		OrderIndex:  in.OrderIndex,
		ParentID:    in.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func applyInput(a *domain.Activity, in contract.ActivityInput) error {
	if code := strings.TrimSpace(in.Code); code != "" {
		a.Code = code
	}
	if desc := strings.TrimSpace(in.Description); desc != "" {
		a.Description = desc
	}
	a.Responsible = in.Responsible
	start, err := parseOptionalDate(in.StartDate)
	if err != nil {
		return fmt.Errorf("%w: activity %q has invalid start_date", ErrValidation, a.Code)
	}
	end, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return fmt.Errorf("%w: activity %q has invalid end_date", ErrValidation, a.Code)
	}
	a.StartDate = start
	a.EndDate = end
	a.Status = domain.NormalizeStatus(in.Status, a.Status)
	a.Kind = domain.NormalizeKind(in.Kind, a.Kind)
	a.Progress = domain.ClampProgress(in.Progress)
	a.OrderIndex = in.OrderIndex
	a.UpdatedAt = time.Now().UTC()
	return nil
}
