package wbs

// CreatesCycle reports whether re-parenting nodeID under newParentID would
// introduce a cycle, given the current parent pointers. Walks the ancestor
// chain of the proposed parent; hitting nodeID means the new parent sits
// inside the node's own subtree.
func CreatesCycle(parents map[int64]*int64, nodeID, newParentID int64) bool {
	if nodeID == newParentID {
		return true
	}
	seen := make(map[int64]bool)
	cur := newParentID
	for {
		if cur == nodeID {
			return true
		}
		if seen[cur] {
			// Pre-existing cycle above us; refuse to extend it.
			return true
		}
		seen[cur] = true
		p, ok := parents[cur]
		if !ok || p == nil {
			return false
		}
		cur = *p
	}
}
