package doctor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/leeovery/gloss/internal/glossary"
)

// ConflictingTargetCheck reports sources that appear with more than one
// distinct target. Reorganize merges those targets into a single entry.
type ConflictingTargetCheck struct{}

const conflictCheckName = "Conflicting targets"

// Run executes the conflicting target check.
func (c *ConflictingTargetCheck) Run(ctx context.Context, path string) []CheckResult {
	scan, err := getScan(ctx, path)
	if err != nil {
		return unreadableResult(conflictCheckName, err)
	}

	valid, _ := scan.Classified()
	targets := make(map[string]int)
	var order []string
	for _, rec := range glossary.Dedupe(valid) {
		if _, seen := targets[rec.Source]; !seen {
			order = append(order, rec.Source)
		}
		targets[rec.Source]++
	}

	var conflicts []string
	for _, source := range order {
		if targets[source] > 1 {
			conflicts = append(conflicts, strconv.Quote(source))
		}
	}

	if len(conflicts) == 0 {
		return passed(conflictCheckName)
	}

	details := fmt.Sprintf("%d sources have more than one target: %s", len(conflicts), listed(conflicts))
	if len(conflicts) == 1 {
		details = "1 source has more than one target: " + conflicts[0]
	}
	return []CheckResult{{
		Name:       conflictCheckName,
		Passed:     false,
		Severity:   SeverityWarning,
		Details:    details,
		Suggestion: "Targets will be merged and joined with \"" + glossary.TargetSeparator + "\"",
	}}
}
