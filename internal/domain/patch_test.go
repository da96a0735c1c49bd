package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityPatch_Unmarshal_AbsentKeys(t *testing.T) {
	var p ActivityPatch
	require.NoError(t, json.Unmarshal([]byte(`{"code":"1.1"}`), &p))

	assert.Equal(t, "1.1", p.Code)
	assert.False(t, p.HasParentCode, "absent parent_code must not count as set")
	assert.False(t, p.HasStartDate)
	assert.False(t, p.HasEndDate)
	assert.False(t, p.HasResponsible)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.Progress)
}

func TestActivityPatch_Unmarshal_NullParentCodeMeansDetach(t *testing.T) {
	var p ActivityPatch
	require.NoError(t, json.Unmarshal([]byte(`{"code":"1.1","parent_code":null}`), &p))

	assert.True(t, p.HasParentCode, "explicit null parent_code must count as set")
	assert.Nil(t, p.ParentCode)
}

func TestActivityPatch_Unmarshal_NullDateClears(t *testing.T) {
	var p ActivityPatch
	require.NoError(t, json.Unmarshal([]byte(`{"code":"2","start_date":null,"end_date":"2024-03-01"}`), &p))

	assert.True(t, p.HasStartDate)
	assert.Nil(t, p.StartDate)
	assert.True(t, p.HasEndDate)
	require.NotNil(t, p.EndDate)
	assert.Equal(t, "2024-03-01", *p.EndDate)
}

func TestActivityPatch_Unmarshal_FullRecord(t *testing.T) {
	payload := `{
		"code": "3.2",
		"description": "Weld subassembly",
		"parent_code": "3",
		"start_date": "2024-01-05",
		"end_date": "2024-01-20",
		"status": "in_progress",
		"progress": 40,
		"responsible": "Ana",
		"kind": "delivery",
		"order_index": 7
	}`
	var p ActivityPatch
	require.NoError(t, json.Unmarshal([]byte(payload), &p))

	assert.Equal(t, "3.2", p.Code)
	require.NotNil(t, p.ParentCode)
	assert.Equal(t, "3", *p.ParentCode)
	assert.True(t, p.HasParentCode)
	require.NotNil(t, p.Progress)
	assert.Equal(t, 40, *p.Progress)
	require.NotNil(t, p.Responsible)
	assert.Equal(t, "Ana", *p.Responsible)
	require.NotNil(t, p.OrderIndex)
	assert.Equal(t, 7, *p.OrderIndex)
}

func TestActivityPatch_MarshalRoundTrip(t *testing.T) {
	parent := "1"
	progress := 150
	orig := ActivityPatch{
		Code:          "1.1",
		ParentCode:    &parent,
		HasParentCode: true,
		Progress:      &progress,
		HasStartDate:  true, // explicit null start_date
	}

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back ActivityPatch
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, orig.Code, back.Code)
	assert.True(t, back.HasParentCode)
	require.NotNil(t, back.ParentCode)
	assert.Equal(t, "1", *back.ParentCode)
	assert.True(t, back.HasStartDate)
	assert.Nil(t, back.StartDate)
	assert.False(t, back.HasEndDate)
}
