package doctor

import (
	"context"
	"fmt"

	"github.com/leeovery/gloss/internal/glossary"
)

// DuplicateRecordCheck counts valid records that exactly repeat an earlier
// record. Reorganize drops them.
type DuplicateRecordCheck struct{}

const duplicateCheckName = "Duplicate records"

// Run executes the duplicate record check.
func (c *DuplicateRecordCheck) Run(ctx context.Context, path string) []CheckResult {
	scan, err := getScan(ctx, path)
	if err != nil {
		return unreadableResult(duplicateCheckName, err)
	}

	valid, _ := scan.Classified()
	dupes := len(valid) - len(glossary.Dedupe(valid))
	if dupes == 0 {
		return passed(duplicateCheckName)
	}

	return []CheckResult{{
		Name:       duplicateCheckName,
		Passed:     false,
		Severity:   SeverityWarning,
		Details:    fmt.Sprintf("%d of %d records repeat an earlier record", dupes, len(valid)),
		Suggestion: "Reorganize removes them automatically",
	}}
}
