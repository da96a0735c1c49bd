package wbs

import (
	"testing"
	"time"

	"github.com/offcon/crono/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	today, _ := time.Parse(domain.DateLayout, "2024-06-10")

	overdue := datedAct(1, nil, "2024-05-01", "2024-06-01")
	overdue.Status = domain.StatusInProgress
	doneLate := datedAct(2, nil, "2024-05-01", "2024-06-01")
	doneLate.Status = domain.StatusDone
	thisWeek := datedAct(3, nil, "2024-06-12", "2024-06-14")
	thisWeek.Status = domain.StatusPending
	future := datedAct(4, nil, "2024-09-01", "2024-09-10")
	future.Status = domain.StatusPending

	stats := ComputeStats([]*domain.Activity{overdue, doneLate, thisWeek, future}, today)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Overdue, "done activities past their end date are not overdue")
	assert.Equal(t, 1, stats.ActiveThisWeek)
	assert.Equal(t, 2, stats.ByStatus[domain.StatusPending])
	assert.Equal(t, 1, stats.ByStatus[domain.StatusDone])
	assert.Equal(t, 1, stats.ByStatus[domain.StatusInProgress])
}
