package wbs

import (
	"testing"
	"time"

	"github.com/offcon/crono/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func datedAct(id int64, parentID *int64, start, end string) *domain.Activity {
	a := &domain.Activity{ID: id, ParentID: parentID}
	if start != "" {
		a.StartDate = date(start)
	}
	if end != "" {
		a.EndDate = date(end)
	}
	return a
}

func TestChildRange_MinMax(t *testing.T) {
	children := []*domain.Activity{
		datedAct(1, nil, "2024-01-05", "2024-01-20"),
		datedAct(2, nil, "2024-01-01", "2024-01-10"),
	}
	r, ok := ChildRange(children)
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", r.Start.Format(domain.DateLayout))
	assert.Equal(t, "2024-01-20", r.End.Format(domain.DateLayout))
}

func TestChildRange_NoDates(t *testing.T) {
	_, ok := ChildRange([]*domain.Activity{datedAct(1, nil, "", "")})
	assert.False(t, ok, "no dated children means leave the parent alone")
}

func TestChildRange_PartialDates(t *testing.T) {
	r, ok := ChildRange([]*domain.Activity{
		datedAct(1, nil, "", "2024-02-01"),
		datedAct(2, nil, "2024-01-15", ""),
	})
	require.True(t, ok)
	assert.Equal(t, "2024-01-15", r.Start.Format(domain.DateLayout))
	assert.Equal(t, "2024-02-01", r.End.Format(domain.DateLayout))
}

func TestRollup_Cascades(t *testing.T) {
	// 1 -> 1.1 -> {1.1.1, 1.1.2}; dates only on the leaves.
	activities := []*domain.Activity{
		datedAct(1, nil, "", ""),
		datedAct(2, ptr(int64(1)), "", ""),
		datedAct(3, ptr(int64(2)), "2024-01-01", "2024-01-10"),
		datedAct(4, ptr(int64(2)), "2024-01-05", "2024-01-20"),
	}

	changed := Rollup(activities)
	require.Contains(t, changed, int64(2))
	require.Contains(t, changed, int64(1), "grandparent must see aggregated child ranges")

	assert.Equal(t, "2024-01-01", changed[2].Start.Format(domain.DateLayout))
	assert.Equal(t, "2024-01-20", changed[2].End.Format(domain.DateLayout))
	assert.Equal(t, "2024-01-01", changed[1].Start.Format(domain.DateLayout))
	assert.Equal(t, "2024-01-20", changed[1].End.Format(domain.DateLayout))
}

func TestRollup_NoChangeForMatchingParent(t *testing.T) {
	activities := []*domain.Activity{
		datedAct(1, nil, "2024-01-01", "2024-01-20"),
		datedAct(2, ptr(int64(1)), "2024-01-01", "2024-01-20"),
	}
	changed := Rollup(activities)
	assert.Empty(t, changed, "parent already matches its children's range")
}

func TestRollup_UndatedChildrenLeaveParent(t *testing.T) {
	activities := []*domain.Activity{
		datedAct(1, nil, "2024-03-01", "2024-03-05"),
		datedAct(2, ptr(int64(1)), "", ""),
	}
	changed := Rollup(activities)
	assert.Empty(t, changed, "children without dates never clear a parent's range")
}

func TestCreatesCycle(t *testing.T) {
	// 1 -> 2 -> 3
	parents := map[int64]*int64{
		1: nil,
		2: ptr(int64(1)),
		3: ptr(int64(2)),
	}

	assert.True(t, CreatesCycle(parents, 1, 3), "attaching the root under its grandchild is a cycle")
	assert.True(t, CreatesCycle(parents, 2, 2), "self-parenting is a cycle")
	assert.False(t, CreatesCycle(parents, 3, 1), "re-attaching a leaf higher up is fine")
	assert.True(t, CreatesCycle(parents, 2, 3), "attaching a node under its own child is a cycle")
}
