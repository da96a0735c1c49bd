package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/repository"
)

type followUpService struct {
	followUps  repository.FollowUpRepo
	activities repository.ActivityRepo
}

// NewFollowUpService creates the follow-up log service.
func NewFollowUpService(followUps repository.FollowUpRepo, activities repository.ActivityRepo) FollowUpService {
	return &followUpService{followUps: followUps, activities: activities}
}

func (s *followUpService) Create(ctx context.Context, activityID int64, in contract.FollowUpInput) (*domain.FollowUp, error) {
	if _, err := s.activities.GetByID(ctx, activityID); err != nil {
		return nil, fmt.Errorf("activity %d: %w", activityID, err)
	}
	f, err := followUpFromInput(activityID, in)
	if err != nil {
		return nil, err
	}
	if err := s.followUps.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *followUpService) ListByActivity(ctx context.Context, activityID int64) ([]*domain.FollowUp, error) {
	return s.followUps.ListByActivity(ctx, activityID)
}

func (s *followUpService) Update(ctx context.Context, id int64, in contract.FollowUpInput) (*domain.FollowUp, error) {
	current, err := s.followUps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := followUpFromInput(current.ActivityID, in)
	if err != nil {
		return nil, err
	}
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt
	if err := s.followUps.Update(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *followUpService) Delete(ctx context.Context, id int64) error {
	if _, err := s.followUps.GetByID(ctx, id); err != nil {
		return err
	}
	return s.followUps.Delete(ctx, id)
}

func followUpFromInput(activityID int64, in contract.FollowUpInput) (*domain.FollowUp, error) {
	date, err := domain.ParseDate(strings.TrimSpace(in.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: follow-up has invalid date %q", ErrValidation, in.Date)
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, fmt.Errorf("%w: follow-up description is required", ErrValidation)
	}
	return &domain.FollowUp{
		ActivityID:  activityID,
		Date:        *date,
		Description: desc,
		Responsible: in.Responsible,
		Status:      domain.NormalizeStatus(in.Status, domain.StatusPending),
		CreatedAt:   time.Now().UTC(),
	}, nil
}
