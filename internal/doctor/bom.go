package doctor

import (
	"bytes"
	"context"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ByteOrderMarkCheck warns when the file starts with a UTF-8 byte-order
// mark. The mark is not stripped, so it becomes part of the first source.
type ByteOrderMarkCheck struct{}

const bomCheckName = "Byte-order mark"

// Run executes the byte-order mark check.
func (c *ByteOrderMarkCheck) Run(ctx context.Context, path string) []CheckResult {
	scan, err := getScan(ctx, path)
	if err != nil {
		return unreadableResult(bomCheckName, err)
	}

	if bytes.HasPrefix(scan.Data, utf8BOM) {
		return []CheckResult{{
			Name:       bomCheckName,
			Passed:     false,
			Severity:   SeverityWarning,
			Details:    "File starts with a UTF-8 byte-order mark; it will be kept in the first source",
			Suggestion: "Re-save the file as UTF-8 without BOM",
		}}
	}

	return passed(bomCheckName)
}
