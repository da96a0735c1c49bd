package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/offcon/crono/internal/domain"
)

var testPlanCounter atomic.Int64

// Plan options
type PlanOption func(*domain.Plan)

func WithClient(name string) PlanOption {
	return func(p *domain.Plan) {
		p.ClientName = name
	}
}

func WithDueAt(d time.Time) PlanOption {
	return func(p *domain.Plan) {
		p.DueAt = &d
	}
}

// NewTestPlan builds an unsaved plan with a unique service-order number.
func NewTestPlan(opts ...PlanOption) *domain.Plan {
	now := time.Now().UTC()
	n := testPlanCounter.Add(1)
	p := &domain.Plan{
		Number:     fmt.Sprintf("OS-%04d", n),
		ClientName: "Test Client",
		Status:     "open",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithParent(parentID int64) ActivityOption {
	return func(a *domain.Activity) {
		a.ParentID = &parentID
	}
}

func WithDates(start, end string) ActivityOption {
	return func(a *domain.Activity) {
		if start != "" {
			t, _ := time.Parse(domain.DateLayout, start)
			a.StartDate = &t
		}
		if end != "" {
			t, _ := time.Parse(domain.DateLayout, end)
			a.EndDate = &t
		}
	}
}

func WithStatus(s domain.Status) ActivityOption {
	return func(a *domain.Activity) {
		a.Status = s
	}
}

func WithKind(k domain.Kind) ActivityOption {
	return func(a *domain.Activity) {
		a.Kind = k
	}
}

func WithProgress(p int) ActivityOption {
	return func(a *domain.Activity) {
		a.Progress = p
	}
}

func WithOrder(i int) ActivityOption {
	return func(a *domain.Activity) {
		a.OrderIndex = i
	}
}

// NewTestActivity builds an unsaved activity for the given plan and code.
func NewTestActivity(planID int64, code string, opts ...ActivityOption) *domain.Activity {
	now := time.Now().UTC()
	a := &domain.Activity{
		PlanID:      planID,
		Code:        code,
		Description: "Activity " + code,
		Status:      domain.StatusPending,
		Kind:        domain.KindDelivery,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewTestFollowUp builds an unsaved follow-up for the given activity.
func NewTestFollowUp(activityID int64, date string) *domain.FollowUp {
	d, _ := time.Parse(domain.DateLayout, date)
	return &domain.FollowUp{
		ActivityID:  activityID,
		Date:        d,
		Description: "follow-up note",
		Status:      domain.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}

// NewTestLink builds an unsaved external link pointing at a purchase order.
func NewTestLink(activityID int64, poRef string) *domain.ExternalLink {
	return &domain.ExternalLink{
		ActivityID:       activityID,
		PurchaseOrderRef: &poRef,
		CreatedAt:        time.Now().UTC(),
	}
}
