package wbs

import (
	"time"

	"github.com/offcon/crono/internal/domain"
)

// DateRange is a nullable start/end pair.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ChildRange computes the min start and max end over the children's
// non-nil dates. Returns ok=false when no child carries any date, in
// which case the parent's stored range must be left alone.
func ChildRange(children []*domain.Activity) (DateRange, bool) {
	var r DateRange
	any := false
	for _, c := range children {
		if c.StartDate != nil {
			any = true
			if r.Start == nil || c.StartDate.Before(*r.Start) {
				r.Start = c.StartDate
			}
		}
		if c.EndDate != nil {
			any = true
			if r.End == nil || c.EndDate.After(*r.End) {
				r.End = c.EndDate
			}
		}
	}
	return r, any
}

// Rollup computes, for every activity that has children with dates, the
// aggregated date range, cascading bottom-up so that a grandparent sees
// its children's aggregated ranges rather than their stored ones. The
// result maps activity id to the proposed range for each node whose
// stored range differs.
func Rollup(activities []*domain.Activity) map[int64]DateRange {
	children := make(map[int64][]*domain.Activity)
	byID := make(map[int64]*domain.Activity, len(activities))
	for _, a := range activities {
		byID[a.ID] = a
		if a.ParentID != nil {
			children[*a.ParentID] = append(children[*a.ParentID], a)
		}
	}

	// effective holds the post-rollup range per node while recursing.
	effective := make(map[int64]DateRange, len(activities))
	visiting := make(map[int64]bool)

	var resolve func(a *domain.Activity) DateRange
	resolve = func(a *domain.Activity) DateRange {
		if r, ok := effective[a.ID]; ok {
			return r
		}
		if visiting[a.ID] {
			// Defensive: a stored cycle would recurse forever. Treat the
			// node's own dates as final.
			return DateRange{Start: a.StartDate, End: a.EndDate}
		}
		visiting[a.ID] = true
		defer delete(visiting, a.ID)

		kids := children[a.ID]
		r := DateRange{Start: a.StartDate, End: a.EndDate}
		if len(kids) > 0 {
			resolved := make([]*domain.Activity, 0, len(kids))
			for _, k := range kids {
				kr := resolve(k)
				clone := *k
				clone.StartDate = kr.Start
				clone.EndDate = kr.End
				resolved = append(resolved, &clone)
			}
			if agg, any := ChildRange(resolved); any {
				r = agg
			}
		}
		effective[a.ID] = r
		return r
	}

	changed := make(map[int64]DateRange)
	for _, a := range activities {
		if len(children[a.ID]) == 0 {
			continue
		}
		r := resolve(a)
		if !sameDate(a.StartDate, r.Start) || !sameDate(a.EndDate, r.End) {
			changed[a.ID] = r
		}
	}
	return changed
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
