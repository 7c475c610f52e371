package cli

import (
	"context"

	"github.com/leeovery/gloss/internal/doctor"
)

// handleCheck runs the glossary diagnostics. Like a linter it always prints
// the human-readable report and ignores the output format flags.
func (a *App) handleCheck(ctx context.Context, args []string) int {
	input, err := singleInput("check", args)
	if err != nil {
		return a.fail(err)
	}
	path := a.resolve(input)

	scan, err := doctor.ScanGlossary(path)
	if err != nil {
		return a.fail(err)
	}
	ctx = context.WithValue(ctx, doctor.ScanKey, scan)

	report := doctor.NewGlossaryRunner().RunAll(ctx, path)
	if !a.fc.Quiet || report.HasErrors() {
		doctor.FormatReport(a.Stdout, report)
	}
	return doctor.ExitCode(report)
}
