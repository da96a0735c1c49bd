package importer

import (
	"github.com/offcon/crono/internal/contract"
)

// Convert builds the engine request from a validated batch file. The plan
// id must already be resolved; files addressing a plan by number go through
// the caller's plan lookup first.
func Convert(schema *ImportSchema, planID int64) contract.ReconcileRequest {
	return contract.ReconcileRequest{
		PlanID:        planID,
		Activities:    schema.Activities,
		RemoveCodes:   schema.RemoveCodes,
		DeleteMissing: schema.DeleteMissing,
	}
}
