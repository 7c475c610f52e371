package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/leeovery/gloss/internal/storage"
)

// EncodingCheck verifies the file is valid UTF-8. Reorganize refuses any
// other content, so a failure here is an error.
type EncodingCheck struct{}

const encodingCheckName = "Encoding"

// Run executes the encoding check.
func (c *EncodingCheck) Run(ctx context.Context, path string) []CheckResult {
	scan, err := getScan(ctx, path)
	if err != nil {
		return unreadableResult(encodingCheckName, err)
	}

	_, err = storage.ParseLines(scan.Path, scan.Data)
	var de *storage.DecodingError
	if errors.As(err, &de) {
		return []CheckResult{{
			Name:       encodingCheckName,
			Passed:     false,
			Severity:   SeverityError,
			Details:    fmt.Sprintf("Line %d: invalid UTF-8 at byte offset %d", de.Line, de.Offset),
			Suggestion: "Re-save the file as UTF-8",
		}}
	}

	return passed(encodingCheckName)
}
