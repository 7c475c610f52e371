package doctor

import (
	"fmt"
	"io"
)

// FormatReport writes the report as one ✓ or ✗ line per result, suggestions
// indented under failures, then a summary line splitting the issue count into
// errors and warnings.
func FormatReport(w io.Writer, report DiagnosticReport) {
	for _, r := range report.Results {
		if r.Passed {
			fmt.Fprintf(w, "✓ %s: OK\n", r.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s: %s\n", r.Name, r.Details)
		if r.Suggestion != "" {
			fmt.Fprintf(w, "  → %s\n", r.Suggestion)
		}
	}

	if len(report.Results) > 0 {
		fmt.Fprint(w, "\n")
	}

	errs, warns := report.ErrorCount(), report.WarningCount()
	switch issues := errs + warns; issues {
	case 0:
		fmt.Fprint(w, "No issues found.\n")
	case 1:
		fmt.Fprintf(w, "1 issue found (%s).\n", breakdown(errs, warns))
	default:
		fmt.Fprintf(w, "%d issues found (%s).\n", issues, breakdown(errs, warns))
	}
}

func breakdown(errs, warns int) string {
	return plural(errs, "error") + ", " + plural(warns, "warning")
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// ExitCode returns 1 when the report has any error-severity failure and 0
// otherwise. Warnings never fail a check run.
func ExitCode(report DiagnosticReport) int {
	if report.HasErrors() {
		return 1
	}
	return 0
}
