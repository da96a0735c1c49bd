package importer

import (
	"fmt"
	"strings"

	"github.com/offcon/crono/internal/domain"
)

// ValidateImportSchema checks the structural rules a batch file must obey
// before it is handed to the engine. Returns every violation, not just the
// first, so a bad file can be fixed in one pass.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.Plan.ID == 0 && strings.TrimSpace(schema.Plan.Number) == "" {
		errs = append(errs, fmt.Errorf("plan: id or number is required"))
	}
	if len(schema.Activities) == 0 && len(schema.RemoveCodes) == 0 && !schema.DeleteMissing {
		errs = append(errs, fmt.Errorf("file has no activities and no deletions"))
	}

	seen := make(map[string]bool, len(schema.Activities))
	for i, a := range schema.Activities {
		code := strings.TrimSpace(a.Code)
		if code == "" {
			errs = append(errs, fmt.Errorf("activities[%d]: code is required", i))
			continue
		}
		if seen[code] {
			errs = append(errs, fmt.Errorf("activities[%d]: duplicate code %q", i, code))
		}
		seen[code] = true

		if a.StartDate != nil {
			if _, err := domain.ParseDate(*a.StartDate); err != nil {
				errs = append(errs, fmt.Errorf("activities[%d]: invalid start_date %q", i, *a.StartDate))
			}
		}
		if a.EndDate != nil {
			if _, err := domain.ParseDate(*a.EndDate); err != nil {
				errs = append(errs, fmt.Errorf("activities[%d]: invalid end_date %q", i, *a.EndDate))
			}
		}
	}

	for i, code := range schema.RemoveCodes {
		if strings.TrimSpace(code) == "" {
			errs = append(errs, fmt.Errorf("remove_codes[%d]: code is empty", i))
		}
	}
	return errs
}
