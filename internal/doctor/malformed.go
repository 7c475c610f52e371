package doctor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/leeovery/gloss/internal/glossary"
)

// MalformedLineCheck lists the lines that do not split into exactly one
// source and one target. Those lines end up in the discarded output.
type MalformedLineCheck struct{}

const malformedCheckName = "Malformed lines"

// Run executes the malformed line check.
func (c *MalformedLineCheck) Run(ctx context.Context, path string) []CheckResult {
	scan, err := getScan(ctx, path)
	if err != nil {
		return unreadableResult(malformedCheckName, err)
	}

	var lineNums []string
	for i, line := range scan.Lines {
		if _, _, ok := glossary.ParseLine(line); !ok {
			lineNums = append(lineNums, strconv.Itoa(i+1))
		}
	}

	if len(lineNums) == 0 {
		return passed(malformedCheckName)
	}

	noun := "lines"
	if len(lineNums) == 1 {
		noun = "line"
	}
	return []CheckResult{{
		Name:       malformedCheckName,
		Passed:     false,
		Severity:   SeverityWarning,
		Details:    fmt.Sprintf("%d %s will be discarded (line %s)", len(lineNums), noun, listed(lineNums)),
		Suggestion: "Each line needs exactly one tab between source and target",
	}}
}
