package service

import (
	"context"
	"fmt"

	"github.com/offcon/crono/internal/repository"
)

// deleteSubtree removes an activity and everything below it: children
// depth-first, each node's follow-ups and external links before the node
// itself. Returns the ids of every activity removed, deepest first.
//
// Callers run this inside a transaction; a failure partway through must
// roll back the whole batch.
func deleteSubtree(
	ctx context.Context,
	activities repository.ActivityRepo,
	followUps repository.FollowUpRepo,
	links repository.LinkRepo,
	id int64,
) ([]int64, error) {
	children, err := activities.ListChildren(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing children of activity %d: %w", id, err)
	}

	var removed []int64
	for _, child := range children {
		sub, err := deleteSubtree(ctx, activities, followUps, links, child.ID)
		if err != nil {
			return nil, err
		}
		removed = append(removed, sub...)
	}

	if err := followUps.DeleteByActivity(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting follow-ups of activity %d: %w", id, err)
	}
	if err := links.DeleteByActivity(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting links of activity %d: %w", id, err)
	}
	if err := activities.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting activity %d: %w", id, err)
	}
	return append(removed, id), nil
}
