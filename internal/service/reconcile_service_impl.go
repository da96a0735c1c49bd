package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/db"
	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/repository"
	"github.com/offcon/crono/internal/wbs"
)

type reconcileService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver

	// planLocks serializes reconciliation runs per plan. Concurrent batches
	// against the same plan would otherwise interleave their read-modify-write
	// passes; different plans proceed in parallel.
	planLocks sync.Map // int64 -> *sync.Mutex
}

// NewReconcileService creates the bulk reconciliation engine.
func NewReconcileService(uow db.UnitOfWork, observer UseCaseObserver) ReconcileService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &reconcileService{uow: uow, observer: observer}
}

func (s *reconcileService) Reconcile(ctx context.Context, req contract.ReconcileRequest) (contract.ReconcileStats, error) {
	started := time.Now()
	runID := uuid.New().String()

	stats, err := s.reconcile(ctx, req)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "reconcile",
		RunID:     runID,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
		Fields: map[string]any{
			"plan_id":        req.PlanID,
			"batch_size":     len(req.Activities),
			"remove_codes":   len(req.RemoveCodes),
			"delete_missing": req.DeleteMissing,
			"created":        stats.Created,
			"updated":        stats.Updated,
			"deleted":        stats.Deleted,
			"parent_linked":  stats.ParentLinked,
		},
	})
	return stats, err
}

func (s *reconcileService) reconcile(ctx context.Context, req contract.ReconcileRequest) (contract.ReconcileStats, error) {
	var stats contract.ReconcileStats

	if err := validateBatch(req.Activities); err != nil {
		return stats, err
	}

	mu := s.lockFor(req.PlanID)
	mu.Lock()
	defer mu.Unlock()

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txActs := repository.NewSQLiteActivityRepo(tx)
		txFollowUps := repository.NewSQLiteFollowUpRepo(tx)
		txLinks := repository.NewSQLiteLinkRepo(tx)

		if _, err := txPlans.GetByID(ctx, req.PlanID); err != nil {
			return fmt.Errorf("plan %d: %w", req.PlanID, err)
		}

		existing, err := txActs.ListByPlan(ctx, req.PlanID)
		if err != nil {
			return fmt.Errorf("listing plan activities: %w", err)
		}
		byCode := make(map[string]*domain.Activity, len(existing))
		for _, a := range existing {
			byCode[a.Code] = a
		}

		// Pass 1: upsert every descriptor by code. Parent links wait for
		// pass 2 so a descriptor may reference a sibling that appears later
		// in the same batch.
		for _, patch := range req.Activities {
			code := strings.TrimSpace(patch.Code)
			if current, ok := byCode[code]; ok {
				if err := mergePatch(current, patch); err != nil {
					return err
				}
				if err := txActs.Update(ctx, current); err != nil {
					return fmt.Errorf("updating activity %q: %w", code, err)
				}
				stats.Updated++
				continue
			}

			fresh, err := newFromPatch(req.PlanID, code, patch)
			if err != nil {
				return err
			}
			if err := txActs.Create(ctx, fresh); err != nil {
				return fmt.Errorf("creating activity %q: %w", code, err)
			}
			byCode[code] = fresh
			stats.Created++
		}

		// Pass 2: resolve symbolic parent references against the post-upsert
		// state, so forward references within the batch land correctly.
		refreshed, err := txActs.ListByPlan(ctx, req.PlanID)
		if err != nil {
			return fmt.Errorf("re-listing plan activities: %w", err)
		}
		byCode = make(map[string]*domain.Activity, len(refreshed))
		parents := make(map[int64]*int64, len(refreshed))
		for _, a := range refreshed {
			byCode[a.Code] = a
			parents[a.ID] = a.ParentID
		}

		for _, patch := range req.Activities {
			if !patch.HasParentCode {
				continue
			}
			child := byCode[strings.TrimSpace(patch.Code)]
			if child == nil {
				continue
			}

			if patch.ParentCode == nil || strings.TrimSpace(*patch.ParentCode) == "" {
				if child.ParentID != nil {
					if err := txActs.UpdateParent(ctx, child.ID, nil); err != nil {
						return fmt.Errorf("detaching activity %q: %w", child.Code, err)
					}
					child.ParentID = nil
					parents[child.ID] = nil
				}
				continue
			}

			parentCode := strings.TrimSpace(*patch.ParentCode)
			parent := byCode[parentCode]
			if parent == nil {
				return fmt.Errorf("%w: activity %q references unknown parent code %q",
					ErrValidation, child.Code, parentCode)
			}
			if wbs.CreatesCycle(parents, child.ID, parent.ID) {
				return fmt.Errorf("%w: linking activity %q under %q would create a cycle",
					ErrValidation, child.Code, parentCode)
			}
			if child.ParentID == nil || *child.ParentID != parent.ID {
				pid := parent.ID
				if err := txActs.UpdateParent(ctx, child.ID, &pid); err != nil {
					return fmt.Errorf("linking activity %q under %q: %w", child.Code, parentCode, err)
				}
				child.ParentID = &pid
				parents[child.ID] = &pid
			}
			stats.ParentLinked++
		}

		// Pass 3: deletion. Explicit remove_codes first, then — under
		// delete_missing — every pre-existing code absent from the batch.
		// Each removed id counts once even when a target sits inside an
		// already-deleted subtree.
		targets := deletionTargets(req, existing)
		removed := make(map[int64]bool)
		for _, code := range targets {
			node := byCode[code]
			if node == nil || removed[node.ID] {
				continue
			}
			ids, err := deleteSubtree(ctx, txActs, txFollowUps, txLinks, node.ID)
			if err != nil {
				return err
			}
			for _, id := range ids {
				removed[id] = true
			}
			stats.Deleted += len(ids)
		}

		return applyPlanRollup(ctx, txActs, req.PlanID)
	})
	if err != nil {
		return contract.ReconcileStats{}, err
	}
	return stats, nil
}

func (s *reconcileService) lockFor(planID int64) *sync.Mutex {
	v, _ := s.planLocks.LoadOrStore(planID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// validateBatch rejects structurally bad batches before any lock or
// transaction is taken: blank codes, duplicate codes, unparseable dates.
func validateBatch(patches []domain.ActivityPatch) error {
	seen := make(map[string]bool, len(patches))
	for i, p := range patches {
		code := strings.TrimSpace(p.Code)
		if code == "" {
			return fmt.Errorf("%w: activity at position %d has an empty code", ErrValidation, i)
		}
		if seen[code] {
			return fmt.Errorf("%w: duplicate activity code %q in batch", ErrValidation, code)
		}
		seen[code] = true

		if p.StartDate != nil {
			if _, err := domain.ParseDate(*p.StartDate); err != nil {
				return fmt.Errorf("%w: activity %q has invalid start_date %q", ErrValidation, code, *p.StartDate)
			}
		}
		if p.EndDate != nil {
			if _, err := domain.ParseDate(*p.EndDate); err != nil {
				return fmt.Errorf("%w: activity %q has invalid end_date %q", ErrValidation, code, *p.EndDate)
			}
		}
	}
	return nil
}

// mergePatch folds a descriptor into an existing record. Absent fields keep
// their stored value; explicit nulls clear the presence-flagged ones.
func mergePatch(a *domain.Activity, p domain.ActivityPatch) error {
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Status != nil {
		a.Status = domain.NormalizeStatus(*p.Status, a.Status)
	}
	if p.Kind != nil {
		a.Kind = domain.NormalizeKind(*p.Kind, a.Kind)
	}
	if p.Progress != nil {
		a.Progress = domain.ClampProgress(*p.Progress)
	}
	if p.OrderIndex != nil {
		a.OrderIndex = *p.OrderIndex
	}
	if p.HasResponsible {
		a.Responsible = p.Responsible
	}
	if p.HasStartDate {
		t, err := parseOptionalDate(p.StartDate)
		if err != nil {
			return fmt.Errorf("%w: activity %q has invalid start_date", ErrValidation, a.Code)
		}
		a.StartDate = t
	}
	if p.HasEndDate {
		t, err := parseOptionalDate(p.EndDate)
		if err != nil {
			return fmt.Errorf("%w: activity %q has invalid end_date", ErrValidation, a.Code)
		}
		a.EndDate = t
	}
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// newFromPatch builds a fresh activity from a descriptor, applying the
// creation defaults: description falls back to the code, status to pending,
// kind to delivery, order index to zero.
func newFromPatch(planID int64, code string, p domain.ActivityPatch) (*domain.Activity, error) {
	now := time.Now().UTC()
	a := &domain.Activity{
		PlanID:      planID,
		Code:        code,
		Description: code,
		Status:      domain.StatusPending,
		Kind:        domain.KindDelivery,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Status != nil {
		a.Status = domain.NormalizeStatus(*p.Status, domain.StatusPending)
	}
	if p.Kind != nil {
		a.Kind = domain.NormalizeKind(*p.Kind, domain.KindDelivery)
	}
	if p.Progress != nil {
		a.Progress = domain.ClampProgress(*p.Progress)
	}
	if p.OrderIndex != nil {
		a.OrderIndex = *p.OrderIndex
	}
	if p.HasResponsible {
		a.Responsible = p.Responsible
	}
	if p.HasStartDate {
		t, err := parseOptionalDate(p.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: activity %q has invalid start_date", ErrValidation, code)
		}
		a.StartDate = t
	}
	if p.HasEndDate {
		t, err := parseOptionalDate(p.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: activity %q has invalid end_date", ErrValidation, code)
		}
		a.EndDate = t
	}
	return a, nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	return domain.ParseDate(strings.TrimSpace(*s))
}

// deletionTargets collects the codes slated for removal, in a stable order:
// explicit remove_codes first, then the pre-existing codes the batch no
// longer mentions when delete_missing is set.
func deletionTargets(req contract.ReconcileRequest, existing []*domain.Activity) []string {
	targets := make([]string, 0, len(req.RemoveCodes))
	targets = append(targets, req.RemoveCodes...)

	if req.DeleteMissing {
		mentioned := make(map[string]bool, len(req.Activities))
		for _, p := range req.Activities {
			mentioned[strings.TrimSpace(p.Code)] = true
		}
		for _, a := range existing {
			if !mentioned[a.Code] {
				targets = append(targets, a.Code)
			}
		}
	}
	return targets
}
