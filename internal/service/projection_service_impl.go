package service

import (
	"context"
	"fmt"
	"time"

	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/repository"
	"github.com/offcon/crono/internal/wbs"
)

type projectionService struct {
	plans      repository.PlanRepo
	activities repository.ActivityRepo
	links      repository.LinkRepo
}

// NewProjectionService creates the read-side projections. Every call
// recomputes from the flat store; nothing is cached.
func NewProjectionService(
	plans repository.PlanRepo,
	activities repository.ActivityRepo,
	links repository.LinkRepo,
) ProjectionService {
	return &projectionService{plans: plans, activities: activities, links: links}
}

func (s *projectionService) Tree(ctx context.Context, planID int64) ([]*wbs.Node, error) {
	activities, links, err := s.load(ctx, planID)
	if err != nil {
		return nil, err
	}
	return wbs.BuildTree(activities, links), nil
}

func (s *projectionService) Gantt(ctx context.Context, planID int64, window wbs.GanttWindow) ([]wbs.GanttRow, error) {
	activities, links, err := s.load(ctx, planID)
	if err != nil {
		return nil, err
	}
	return wbs.ProjectGantt(activities, links, window), nil
}

func (s *projectionService) Stats(ctx context.Context, planID int64, today time.Time) (wbs.PlanStats, error) {
	if _, err := s.plans.GetByID(ctx, planID); err != nil {
		return wbs.PlanStats{}, fmt.Errorf("plan %d: %w", planID, err)
	}
	activities, err := s.activities.ListByPlan(ctx, planID)
	if err != nil {
		return wbs.PlanStats{}, fmt.Errorf("listing activities: %w", err)
	}
	return wbs.ComputeStats(activities, today), nil
}

func (s *projectionService) load(ctx context.Context, planID int64) ([]*domain.Activity, []*domain.ExternalLink, error) {
	if _, err := s.plans.GetByID(ctx, planID); err != nil {
		return nil, nil, fmt.Errorf("plan %d: %w", planID, err)
	}
	activities, err := s.activities.ListByPlan(ctx, planID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing activities: %w", err)
	}
	links, err := s.links.ListByPlan(ctx, planID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing external links: %w", err)
	}
	return activities, links, nil
}
