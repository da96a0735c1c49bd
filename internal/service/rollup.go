package service

import (
	"context"
	"fmt"
	"time"

	"github.com/offcon/crono/internal/repository"
	"github.com/offcon/crono/internal/wbs"
)

// applyPlanRollup recomputes the cascaded date ranges for a whole plan and
// writes back every node whose stored range drifted from its children's
// aggregate. Used after bulk reconciliation, where many subtrees may have
// moved at once.
func applyPlanRollup(ctx context.Context, activities repository.ActivityRepo, planID int64) error {
	all, err := activities.ListByPlan(ctx, planID)
	if err != nil {
		return fmt.Errorf("listing activities for rollup: %w", err)
	}
	for id, r := range wbs.Rollup(all) {
		if err := activities.UpdateDates(ctx, id, r.Start, r.End); err != nil {
			return fmt.Errorf("rolling up activity %d: %w", id, err)
		}
	}
	return nil
}

// rollUpFrom walks the ancestor chain starting at the given activity's
// parent, recomputing each ancestor's range from its children and writing
// it back when it changed. Cheaper than a plan-wide rollup for single-node
// edits; stops early once an ancestor's range is already correct.
func rollUpFrom(ctx context.Context, activities repository.ActivityRepo, parentID *int64) error {
	seen := make(map[int64]bool)
	for parentID != nil {
		id := *parentID
		if seen[id] {
			// Stored cycle; bail rather than loop.
			return nil
		}
		seen[id] = true

		parent, err := activities.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("loading ancestor %d for rollup: %w", id, err)
		}
		children, err := activities.ListChildren(ctx, id)
		if err != nil {
			return fmt.Errorf("listing children of ancestor %d: %w", id, err)
		}
		r, any := wbs.ChildRange(children)
		if !any {
			return nil
		}
		if datesEqual(parent.StartDate, r.Start) && datesEqual(parent.EndDate, r.End) {
			return nil
		}
		if err := activities.UpdateDates(ctx, id, r.Start, r.End); err != nil {
			return fmt.Errorf("rolling up ancestor %d: %w", id, err)
		}
		parentID = parent.ParentID
	}
	return nil
}

func datesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
