package wbs

import (
	"time"

	"github.com/offcon/crono/internal/domain"
)

// PlanStats summarizes a plan's activities for the dashboard.
type PlanStats struct {
	Total          int                   `json:"total"`
	ByStatus       map[domain.Status]int `json:"by_status"`
	Overdue        int                   `json:"overdue"`
	ActiveThisWeek int                   `json:"active_this_week"`
}

// ComputeStats derives the per-plan summary. An activity is overdue when
// its end date is in the past and it is not done; active-this-week when
// its range intersects [today, today+7d].
func ComputeStats(activities []*domain.Activity, today time.Time) PlanStats {
	stats := PlanStats{
		ByStatus: make(map[domain.Status]int),
	}
	weekEnd := today.AddDate(0, 0, 7)
	for _, a := range activities {
		stats.Total++
		stats.ByStatus[a.Status]++
		if a.EndDate != nil && a.EndDate.Before(today) && a.Status != domain.StatusDone {
			stats.Overdue++
		}
		startsByWeekEnd := a.StartDate != nil && !a.StartDate.After(weekEnd)
		endsAfterToday := a.EndDate != nil && !a.EndDate.Before(today)
		if startsByWeekEnd && endsAfterToday {
			stats.ActiveThisWeek++
		}
	}
	return stats
}
