package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/leeovery/gloss/internal/glossary"
	"github.com/leeovery/gloss/internal/storage"
)

// Scan is a glossary file read once and shared by every check.
type Scan struct {
	// Path is the file that was read.
	Path string
	// Data is the raw file content.
	Data []byte
	// Lines holds the content split on line terminators. Line i is line
	// number i+1.
	Lines []string
}

// ScanGlossary reads the file at path. It returns an error only when the
// file cannot be read; encoding problems are left for the checks to report.
func ScanGlossary(path string) (*Scan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &storage.FileAccessError{Op: "read", Path: path, Err: err}
	}
	return &Scan{Path: path, Data: data, Lines: storage.SplitLines(data)}, nil
}

// Classified returns the scanned lines split into valid and discarded
// records, exactly as the reorganize pipeline would.
func (s *Scan) Classified() ([]glossary.Record, []glossary.DiscardedRecord) {
	return glossary.Classify(s.Lines)
}

type scanKeyType struct{}

// ScanKey is the context key used to pass a pre-read Scan to checks.
var ScanKey = scanKeyType{}

// getScan returns the Scan from the context when present and for the same
// path, otherwise it reads the file.
func getScan(ctx context.Context, path string) (*Scan, error) {
	if s, ok := ctx.Value(ScanKey).(*Scan); ok && s.Path == path {
		return s, nil
	}
	return ScanGlossary(path)
}

// unreadableResult is the standard failure for a file the checks cannot read.
func unreadableResult(checkName string, err error) []CheckResult {
	return []CheckResult{{
		Name:       checkName,
		Passed:     false,
		Severity:   SeverityError,
		Details:    err.Error(),
		Suggestion: "Verify the glossary path",
	}}
}

func passed(checkName string) []CheckResult {
	return []CheckResult{{Name: checkName, Passed: true}}
}

// maxListed caps how many line numbers or sources a result spells out.
const maxListed = 10

// listed formats up to maxListed items, noting how many were left out.
func listed(items []string) string {
	if len(items) <= maxListed {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(items[:maxListed], ", "), len(items)-maxListed)
}
