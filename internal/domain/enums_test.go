package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus_Valid(t *testing.T) {
	assert.Equal(t, StatusDone, NormalizeStatus("done", StatusPending))
	assert.Equal(t, StatusInProgress, NormalizeStatus("IN_PROGRESS", StatusPending))
	assert.Equal(t, StatusCancelled, NormalizeStatus(" cancelled ", StatusPending))
}

func TestNormalizeStatus_InvalidFallsBack(t *testing.T) {
	assert.Equal(t, StatusPending, NormalizeStatus("bogus", StatusPending))
	assert.Equal(t, StatusInProgress, NormalizeStatus("", StatusInProgress))
}

func TestNormalizeKind_Valid(t *testing.T) {
	assert.Equal(t, KindMilestone, NormalizeKind("Milestone", KindDelivery))
	assert.Equal(t, KindSummary, NormalizeKind("summary", KindDelivery))
}

func TestNormalizeKind_InvalidFallsBack(t *testing.T) {
	assert.Equal(t, KindDelivery, NormalizeKind("task", KindDelivery))
	assert.Equal(t, KindSummary, NormalizeKind("", KindSummary))
}

func TestClampProgress(t *testing.T) {
	assert.Equal(t, 0, ClampProgress(-5))
	assert.Equal(t, 0, ClampProgress(0))
	assert.Equal(t, 55, ClampProgress(55))
	assert.Equal(t, 100, ClampProgress(100))
	assert.Equal(t, 100, ClampProgress(150))
}
