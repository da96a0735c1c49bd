package contract

import (
	"time"

	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/wbs"
)

// ActivityView is the JSON rendering of a single activity.
type ActivityView struct {
	ID          int64         `json:"id"`
	PlanID      int64         `json:"plan_id"`
	Code        string        `json:"code"`
	Description string        `json:"description"`
	Responsible *string       `json:"responsible"`
	StartDate   *string       `json:"start_date"`
	EndDate     *string       `json:"end_date"`
	Status      domain.Status `json:"status"`
	Progress    int           `json:"progress"`
	Kind        domain.Kind   `json:"kind"`
	OrderIndex  int           `json:"order_index"`
	ParentID    *int64        `json:"parent_id"`
}

// TreeNode is an ActivityView with children and aggregated external refs.
type TreeNode struct {
	ActivityView
	PurchaseOrderRefs []string    `json:"linked_purchase_orders"`
	ServiceOrderRefs  []string    `json:"linked_service_orders"`
	Children          []*TreeNode `json:"children"`
}

// ViewActivity converts a domain activity to its wire shape.
func ViewActivity(a *domain.Activity) ActivityView {
	return ActivityView{
		ID:          a.ID,
		PlanID:      a.PlanID,
		Code:        a.Code,
		Description: a.Description,
		Responsible: a.Responsible,
		StartDate:   datePtr(a.StartDate),
		EndDate:     datePtr(a.EndDate),
		Status:      a.Status,
		Progress:    a.Progress,
		Kind:        a.Kind,
		OrderIndex:  a.OrderIndex,
		ParentID:    a.ParentID,
	}
}

// ViewTree converts wbs nodes to their wire shape. Children are always
// rendered as an array, never null.
func ViewTree(roots []*wbs.Node) []*TreeNode {
	out := make([]*TreeNode, 0, len(roots))
	for _, n := range roots {
		out = append(out, viewNode(n))
	}
	return out
}

func viewNode(n *wbs.Node) *TreeNode {
	t := &TreeNode{
		ActivityView:      ViewActivity(&n.Activity),
		PurchaseOrderRefs: emptyIfNil(n.PurchaseOrderRefs),
		ServiceOrderRefs:  emptyIfNil(n.ServiceOrderRefs),
		Children:          make([]*TreeNode, 0, len(n.Children)),
	}
	for _, c := range n.Children {
		t.Children = append(t.Children, viewNode(c))
	}
	return t
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func datePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}
