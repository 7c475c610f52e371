// Package doctor runs read-only diagnostics over a glossary file before it is
// reorganized. It defines the check interface, result types, and a runner
// that executes all registered checks without short-circuiting.
package doctor

import "context"

// Severity indicates whether a check failure is an error or a warning.
// Errors affect exit code; warnings do not.
type Severity string

const (
	// SeverityError marks input the pipeline will refuse to process.
	SeverityError Severity = "error"
	// SeverityWarning marks input that is processed but probably not as intended.
	SeverityWarning Severity = "warning"
)

// CheckResult holds the outcome of a single diagnostic check evaluation.
// A passing check has Passed true with empty Details and Suggestion.
type CheckResult struct {
	// Name is the check's display label (e.g. "Encoding", "Malformed lines").
	Name string
	// Passed indicates whether this check evaluation passed.
	Passed bool
	// Severity indicates whether this result is an error or warning.
	Severity Severity
	// Details is a human-readable description of what is wrong. Empty when passed.
	Details string
	// Suggestion is actionable fix text. Empty when passed or when no suggestion applies.
	Suggestion string
}

// Check is the interface that all diagnostic checks implement.
// Run inspects the glossary at path and returns one or more results.
type Check interface {
	Run(ctx context.Context, path string) []CheckResult
}

// DiagnosticReport collects all check results from a diagnostic run.
type DiagnosticReport struct {
	// Results contains all CheckResult entries in registration order.
	Results []CheckResult
}

// HasErrors returns true if any result has Passed false with SeverityError.
func (r *DiagnosticReport) HasErrors() bool {
	return r.ErrorCount() > 0
}

// ErrorCount returns the number of results with Passed false and SeverityError.
func (r *DiagnosticReport) ErrorCount() int {
	return r.count(SeverityError)
}

// WarningCount returns the number of results with Passed false and SeverityWarning.
func (r *DiagnosticReport) WarningCount() int {
	return r.count(SeverityWarning)
}

func (r *DiagnosticReport) count(sev Severity) int {
	count := 0
	for _, result := range r.Results {
		if !result.Passed && result.Severity == sev {
			count++
		}
	}
	return count
}

// DiagnosticRunner holds an ordered slice of Check implementations
// and executes all of them, collecting results into a DiagnosticReport.
type DiagnosticRunner struct {
	checks []Check
}

// NewDiagnosticRunner creates a DiagnosticRunner with no registered checks.
func NewDiagnosticRunner() *DiagnosticRunner {
	return &DiagnosticRunner{}
}

// NewGlossaryRunner returns a runner with every glossary check registered
// in display order.
func NewGlossaryRunner() *DiagnosticRunner {
	d := NewDiagnosticRunner()
	d.Register(&EncodingCheck{})
	d.Register(&ByteOrderMarkCheck{})
	d.Register(&MalformedLineCheck{})
	d.Register(&DuplicateRecordCheck{})
	d.Register(&ConflictingTargetCheck{})
	return d
}

// Register appends a check to the runner's ordered slice.
func (d *DiagnosticRunner) Register(check Check) {
	d.checks = append(d.checks, check)
}

// RunAll executes every registered check against path and collects all
// results into a DiagnosticReport. All checks run regardless of prior
// failures. With zero registered checks, it returns an empty report.
func (d *DiagnosticRunner) RunAll(ctx context.Context, path string) DiagnosticReport {
	var results []CheckResult
	for _, check := range d.checks {
		results = append(results, check.Run(ctx, path)...)
	}
	return DiagnosticReport{Results: results}
}
