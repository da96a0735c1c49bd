package domain

import "strings"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

type Kind string

const (
	KindDelivery  Kind = "delivery"
	KindMilestone Kind = "milestone"
	KindSummary   Kind = "summary"
)

// ValidStatuses is the canonical set of accepted activity statuses.
var ValidStatuses = map[Status]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusDone:       true,
	StatusCancelled:  true,
}

// ValidKinds is the canonical set of accepted activity kinds.
var ValidKinds = map[Kind]bool{
	KindDelivery:  true,
	KindMilestone: true,
	KindSummary:   true,
}

// NormalizeStatus lowercases raw and returns it if it is a valid status,
// otherwise the fallback. Callers supplying untrusted input (bulk batches,
// generated payloads) never get an error from a bad status, only the fallback.
func NormalizeStatus(raw string, fallback Status) Status {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if ValidStatuses[s] {
		return s
	}
	return fallback
}

// NormalizeKind lowercases raw and returns it if it is a valid kind,
// otherwise the fallback.
func NormalizeKind(raw string, fallback Kind) Kind {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if ValidKinds[k] {
		return k
	}
	return fallback
}

// ClampProgress clamps a progress value to the [0,100] range.
// Out-of-range values are clamped, never rejected.
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
