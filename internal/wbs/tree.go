// Package wbs holds the pure computations over a plan's activity list:
// tree building, Gantt projection, date rollup, cycle detection and stats.
// Nothing in here touches storage; every derivation is recomputed from the
// flat activity slice handed in by the caller.
package wbs

import "github.com/offcon/crono/internal/domain"

// Node is an activity with its resolved children and aggregated external
// order references, as served to the tree view.
type Node struct {
	domain.Activity
	PurchaseOrderRefs []string
	ServiceOrderRefs  []string
	Children          []*Node
}

// BuildTree groups the flat activity list into a nested tree by parent_id.
// Input order is preserved within each sibling group, so callers should
// pass the store's display ordering. A node whose parent is not part of
// the list is treated as a root rather than dropped.
func BuildTree(activities []*domain.Activity, links []*domain.ExternalLink) []*Node {
	byID := make(map[int64]*Node, len(activities))
	nodes := make([]*Node, 0, len(activities))
	for _, a := range activities {
		n := &Node{Activity: *a}
		byID[a.ID] = n
		nodes = append(nodes, n)
	}

	attachLinks(byID, links)

	var roots []*Node
	for _, n := range nodes {
		if n.ParentID != nil {
			if parent, ok := byID[*n.ParentID]; ok {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}

func attachLinks(byID map[int64]*Node, links []*domain.ExternalLink) {
	for _, l := range links {
		n, ok := byID[l.ActivityID]
		if !ok {
			continue
		}
		if l.PurchaseOrderRef != nil && *l.PurchaseOrderRef != "" {
			n.PurchaseOrderRefs = append(n.PurchaseOrderRefs, *l.PurchaseOrderRef)
		}
		if l.ServiceOrderRef != nil && *l.ServiceOrderRef != "" {
			n.ServiceOrderRefs = append(n.ServiceOrderRefs, *l.ServiceOrderRef)
		}
	}
}

// Flatten walks the tree depth-first and returns the nodes in display
// order with their depth, for text rendering.
func Flatten(roots []*Node) []FlatNode {
	var out []FlatNode
	var walk func(n *Node, depth int, isLast bool)
	walk = func(n *Node, depth int, isLast bool) {
		out = append(out, FlatNode{Node: n, Depth: depth, IsLast: isLast})
		for i, c := range n.Children {
			walk(c, depth+1, i == len(n.Children)-1)
		}
	}
	for i, r := range roots {
		walk(r, 0, i == len(roots)-1)
	}
	return out
}

// FlatNode pairs a tree node with its rendering depth.
type FlatNode struct {
	Node   *Node
	Depth  int
	IsLast bool
}
