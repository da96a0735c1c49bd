package service

import (
	"context"
	"fmt"
	"time"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/repository"
)

type linkService struct {
	links      repository.LinkRepo
	activities repository.ActivityRepo
}

// NewLinkService creates the external-order link service.
func NewLinkService(links repository.LinkRepo, activities repository.ActivityRepo) LinkService {
	return &linkService{links: links, activities: activities}
}

func (s *linkService) Create(ctx context.Context, activityID int64, in contract.LinkInput) (*domain.ExternalLink, error) {
	if emptyRef(in.PurchaseOrderRef) && emptyRef(in.ServiceOrderRef) {
		return nil, fmt.Errorf("%w: link needs a purchase order or service order reference", ErrValidation)
	}
	if _, err := s.activities.GetByID(ctx, activityID); err != nil {
		return nil, fmt.Errorf("activity %d: %w", activityID, err)
	}
	l := &domain.ExternalLink{
		ActivityID:       activityID,
		PurchaseOrderRef: in.PurchaseOrderRef,
		ServiceOrderRef:  in.ServiceOrderRef,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.links.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *linkService) ListByActivity(ctx context.Context, activityID int64) ([]*domain.ExternalLink, error) {
	return s.links.ListByActivity(ctx, activityID)
}

func (s *linkService) Delete(ctx context.Context, id int64) error {
	return s.links.Delete(ctx, id)
}

func emptyRef(s *string) bool {
	return s == nil || *s == ""
}
