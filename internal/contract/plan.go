package contract

import "github.com/offcon/crono/internal/domain"

// PlanView is the JSON rendering of a plan (service order).
type PlanView struct {
	ID         int64   `json:"id"`
	Number     string  `json:"number"`
	ClientName string  `json:"client_name"`
	Status     string  `json:"status"`
	IssuedAt   *string `json:"issued_at"`
	DueAt      *string `json:"due_at"`
}

// PlanInput carries the caller-settable plan fields.
type PlanInput struct {
	Number     string  `json:"number"`
	ClientName string  `json:"client_name"`
	Status     string  `json:"status"`
	IssuedAt   *string `json:"issued_at"`
	DueAt      *string `json:"due_at"`
}

// ViewPlan converts a domain plan to its wire shape.
func ViewPlan(p *domain.Plan) PlanView {
	return PlanView{
		ID:         p.ID,
		Number:     p.Number,
		ClientName: p.ClientName,
		Status:     p.Status,
		IssuedAt:   datePtr(p.IssuedAt),
		DueAt:      datePtr(p.DueAt),
	}
}

// ViewPlans converts a list of plans.
func ViewPlans(plans []*domain.Plan) []PlanView {
	out := make([]PlanView, 0, len(plans))
	for _, p := range plans {
		out = append(out, ViewPlan(p))
	}
	return out
}
