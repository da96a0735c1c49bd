// Package importer loads schedule batch files from disk and turns them
// into reconciliation requests. The file format mirrors the HTTP bulk
// endpoint so the same payload can be replayed from either surface.
package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/offcon/crono/internal/domain"
)

// ImportSchema is the top-level JSON structure for a schedule batch file.
type ImportSchema struct {
	Plan          PlanImport             `json:"plan"`
	Activities    []domain.ActivityPatch `json:"activities"`
	RemoveCodes   []string               `json:"remove_codes,omitempty"`
	DeleteMissing bool                   `json:"delete_missing,omitempty"`
}

// PlanImport addresses the target plan. ID wins when both are set; Number
// lets a file reference a plan by its service-order number instead.
type PlanImport struct {
	ID     int64  `json:"id,omitempty"`
	Number string `json:"number,omitempty"`
}

// LoadImportSchema reads and decodes a schedule batch file.
func LoadImportSchema(filePath string) (*ImportSchema, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
