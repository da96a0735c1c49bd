package domain

import "encoding/json"

// ActivityPatch is a partially-specified activity record addressed by code.
// Every field except Code is optional: a nil pointer means "leave unchanged
// on an existing record, use the type default on a new one".
//
// Four fields distinguish absence from an explicit JSON null, because null
// carries meaning for them: parent_code null means "detach, become a root";
// start_date/end_date/responsible null mean "clear the value". The Has*
// flags record whether the key appeared in the payload at all.
type ActivityPatch struct {
	Code        string
	Description *string
	ParentCode  *string
	StartDate   *string
	EndDate     *string
	Status      *string
	Progress    *int
	Responsible *string
	Kind        *string
	OrderIndex  *int

	HasParentCode  bool
	HasStartDate   bool
	HasEndDate     bool
	HasResponsible bool
}

type activityPatchJSON struct {
	Code        string  `json:"code"`
	Description *string `json:"description"`
	ParentCode  *string `json:"parent_code"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      *string `json:"status"`
	Progress    *int    `json:"progress"`
	Responsible *string `json:"responsible"`
	Kind        *string `json:"kind"`
	OrderIndex  *int    `json:"order_index"`
}

func (p *ActivityPatch) UnmarshalJSON(data []byte) error {
	var raw activityPatchJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Code = raw.Code
	p.Description = raw.Description
	p.ParentCode = raw.ParentCode
	p.StartDate = raw.StartDate
	p.EndDate = raw.EndDate
	p.Status = raw.Status
	p.Progress = raw.Progress
	p.Responsible = raw.Responsible
	p.Kind = raw.Kind
	p.OrderIndex = raw.OrderIndex

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	_, p.HasParentCode = keys["parent_code"]
	_, p.HasStartDate = keys["start_date"]
	_, p.HasEndDate = keys["end_date"]
	_, p.HasResponsible = keys["responsible"]

	return nil
}

func (p ActivityPatch) MarshalJSON() ([]byte, error) {
	// Key-presence flags do not round-trip through omitempty for the four
	// presence-sensitive fields, so build the object by hand.
	obj := map[string]any{"code": p.Code}
	if p.Description != nil {
		obj["description"] = p.Description
	}
	if p.HasParentCode {
		obj["parent_code"] = p.ParentCode
	}
	if p.HasStartDate {
		obj["start_date"] = p.StartDate
	}
	if p.HasEndDate {
		obj["end_date"] = p.EndDate
	}
	if p.Status != nil {
		obj["status"] = p.Status
	}
	if p.Progress != nil {
		obj["progress"] = p.Progress
	}
	if p.HasResponsible {
		obj["responsible"] = p.Responsible
	}
	if p.Kind != nil {
		obj["kind"] = p.Kind
	}
	if p.OrderIndex != nil {
		obj["order_index"] = p.OrderIndex
	}
	return json.Marshal(obj)
}
