package wbs

import (
	"testing"

	"github.com/offcon/crono/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectGantt_SkipsUndatedAndSortsChronologically(t *testing.T) {
	activities := []*domain.Activity{
		datedAct(1, nil, "2024-02-01", "2024-02-10"),
		datedAct(2, nil, "", ""), // no dates, excluded
		datedAct(3, nil, "2024-01-15", "2024-01-20"),
	}
	rows := ProjectGantt(activities, nil, GanttWindow{})
	require.Len(t, rows, 2)
	assert.Equal(t, int64(3), rows[0].ID)
	assert.Equal(t, int64(1), rows[1].ID)
}

func TestProjectGantt_Window(t *testing.T) {
	activities := []*domain.Activity{
		datedAct(1, nil, "2024-01-01", "2024-01-05"),
		datedAct(2, nil, "2024-02-01", "2024-02-10"),
		datedAct(3, nil, "2024-03-01", "2024-03-10"),
	}

	rows := ProjectGantt(activities, nil, GanttWindow{From: date("2024-01-20"), To: date("2024-02-20")})
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].ID)
}

func TestProjectGantt_CarriesLinkedRefs(t *testing.T) {
	activities := []*domain.Activity{datedAct(1, nil, "2024-01-01", "2024-01-02")}
	links := []*domain.ExternalLink{{ID: 1, ActivityID: 1, PurchaseOrderRef: ptr("OC-9")}}

	rows := ProjectGantt(activities, links, GanttWindow{})
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"OC-9"}, rows[0].PurchaseOrderRefs)
}
