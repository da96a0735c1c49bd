// Package contract defines the wire-level request and response shapes
// shared by the HTTP API, the CLI and the importer.
package contract

import "github.com/offcon/crono/internal/domain"

// ReconcileRequest is a batch of partial activity descriptors plus
// deletion directives, merged idempotently into a plan's WBS tree.
type ReconcileRequest struct {
	PlanID        int64                  `json:"plan_id"`
	Activities    []domain.ActivityPatch `json:"activities"`
	RemoveCodes   []string               `json:"remove_codes"`
	DeleteMissing bool                   `json:"delete_missing"`
}

// ReconcileStats counts the effects of one reconciliation run.
type ReconcileStats struct {
	Created      int `json:"created"`
	Updated      int `json:"updated"`
	Deleted      int `json:"deleted"`
	ParentLinked int `json:"parentLinked"`
}

// ReconcileReceived echoes the batch dimensions back to the caller.
type ReconcileReceived struct {
	Activities    int  `json:"activities"`
	RemoveCodes   int  `json:"remove_codes"`
	DeleteMissing bool `json:"delete_missing"`
}

// ReconcileResponse is the success envelope for a reconciliation call.
type ReconcileResponse struct {
	Success  bool              `json:"success"`
	PlanID   int64             `json:"plan_id"`
	Stats    ReconcileStats    `json:"stats"`
	Received ReconcileReceived `json:"received"`
}

// NewReconcileResponse assembles the envelope from a request and its stats.
func NewReconcileResponse(req ReconcileRequest, stats ReconcileStats) ReconcileResponse {
	return ReconcileResponse{
		Success: true,
		PlanID:  req.PlanID,
		Stats:   stats,
		Received: ReconcileReceived{
			Activities:    len(req.Activities),
			RemoveCodes:   len(req.RemoveCodes),
			DeleteMissing: req.DeleteMissing,
		},
	}
}
