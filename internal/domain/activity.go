package domain

import "time"

// Activity is a node in a plan's WBS tree. Codes are human-assigned and
// unique within a plan; the surrogate ID is assigned by the store and
// never reused. A child's lifetime is bound to its parent's subtree only
// for deletion; re-parenting moves a node without destroying it.
type Activity struct {
	ID          int64
	PlanID      int64
	Code        string
	Description string
	Responsible *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      Status
	Progress    int
	Kind        Kind
	OrderIndex  int
	ParentID    *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DateLayout is the calendar-date wire format used throughout the API.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a *time.Time.
func ParseDate(s string) (*time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a nullable date in the wire format, or "" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
