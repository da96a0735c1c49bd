package wbs

import (
	"sort"
	"time"

	"github.com/offcon/crono/internal/domain"
)

// GanttRow is the flat chronological projection of an activity for
// timeline rendering.
type GanttRow struct {
	ID                int64         `json:"id"`
	Code              string        `json:"code"`
	Name              string        `json:"name"`
	Start             *string       `json:"start"`
	End               *string       `json:"end"`
	Progress          int           `json:"progress"`
	Status            domain.Status `json:"status"`
	Kind              domain.Kind   `json:"kind"`
	ParentID          *int64        `json:"parent_id"`
	PurchaseOrderRefs []string      `json:"linked_purchase_orders"`
	ServiceOrderRefs  []string      `json:"linked_service_orders"`
}

// GanttWindow optionally restricts the projection to activities whose
// range overlaps [From, To]. A nil bound is open.
type GanttWindow struct {
	From *time.Time
	To   *time.Time
}

// ProjectGantt derives the timeline rows: activities carrying at least one
// date, filtered to the window, sorted chronologically by start date with
// id as the tie-breaker.
func ProjectGantt(activities []*domain.Activity, links []*domain.ExternalLink, window GanttWindow) []GanttRow {
	byID := make(map[int64]*Node, len(activities))
	for _, a := range activities {
		byID[a.ID] = &Node{Activity: *a}
	}
	attachLinks(byID, links)

	var rows []GanttRow
	for _, a := range activities {
		if a.StartDate == nil && a.EndDate == nil {
			continue
		}
		if !inWindow(a, window) {
			continue
		}
		n := byID[a.ID]
		rows = append(rows, GanttRow{
			ID:                a.ID,
			Code:              a.Code,
			Name:              a.Description,
			Start:             dateStr(a.StartDate),
			End:               dateStr(a.EndDate),
			Progress:          a.Progress,
			Status:            a.Status,
			Kind:              a.Kind,
			ParentID:          a.ParentID,
			PurchaseOrderRefs: n.PurchaseOrderRefs,
			ServiceOrderRefs:  n.ServiceOrderRefs,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		si, sj := rows[i].Start, rows[j].Start
		switch {
		case si == nil && sj != nil:
			return false
		case si != nil && sj == nil:
			return true
		case si != nil && sj != nil && *si != *sj:
			return *si < *sj
		}
		return rows[i].ID < rows[j].ID
	})
	return rows
}

func inWindow(a *domain.Activity, w GanttWindow) bool {
	if w.From != nil {
		endOK := a.EndDate != nil && !a.EndDate.Before(*w.From)
		startOK := a.StartDate != nil && !a.StartDate.Before(*w.From)
		if !endOK && !startOK {
			return false
		}
	}
	if w.To != nil {
		startOK := a.StartDate != nil && !a.StartDate.After(*w.To)
		endOK := a.EndDate != nil && !a.EndDate.After(*w.To)
		if !startOK && !endOK {
			return false
		}
	}
	return true
}

func dateStr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}
