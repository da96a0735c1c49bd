package contract

// ActivityInput carries the fields for direct single-activity create or
// edit, addressed by surrogate id rather than code.
type ActivityInput struct {
	PlanID      int64   `json:"plan_id"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Responsible *string `json:"responsible"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      string  `json:"status"`
	Progress    int     `json:"progress"`
	Kind        string  `json:"kind"`
	OrderIndex  int     `json:"order_index"`
	ParentID    *int64  `json:"parent_id"`
}

// ScheduleInput is the timeline drag update: dates and progress only.
type ScheduleInput struct {
	Start    *string `json:"start"`
	End      *string `json:"end"`
	Progress *int    `json:"progress"`
}

// FollowUpInput carries the caller-settable follow-up fields.
type FollowUpInput struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Responsible *string `json:"responsible"`
	Status      string  `json:"status"`
}

// LinkInput attaches an external purchase or service order to an activity.
type LinkInput struct {
	PurchaseOrderRef *string `json:"purchase_order_ref"`
	ServiceOrderRef  *string `json:"service_order_ref"`
}
