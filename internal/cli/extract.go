package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/leeovery/gloss/internal/extract"
)

func (a *App) handleExtract(ctx context.Context, args []string) int {
	configPath, err := parseExtractArgs(args)
	if err != nil {
		return a.fail(err)
	}

	cfg, log, err := a.loadConfig(configPath)
	if err != nil {
		return a.fail(err)
	}

	ec := cfg.Extract
	for _, p := range []*string{&ec.SourceDB, &ec.BackupDB, &ec.BackupLog, &ec.GlossaryDir, &ec.TranslationDir, &ec.ErrorLog} {
		*p = a.resolve(*p)
	}
	if err := ec.Validate(); err != nil {
		return a.fail(fmt.Errorf("config: validate: %w", err))
	}

	report, err := extract.Run(ctx, ec, a.now(), log)
	if err != nil {
		return a.fail(err)
	}

	if !a.fc.Quiet {
		if err := a.writeExtract(report, ec.SourceDB); err != nil {
			return a.fail(err)
		}
	}

	if n := len(report.Errors); n > 0 {
		return a.fail(fmt.Errorf("extract finished with %d error(s); see %s", n, ec.ErrorLog))
	}
	return 0
}

// writeExtract renders the report, or a short message when the archive held
// no groups and nothing failed.
func (a *App) writeExtract(report extract.Report, db string) error {
	f := a.fc.Formatter()
	if len(report.Files()) == 0 && len(report.Errors) == 0 {
		return f.FormatMessage(a.Stdout, fmt.Sprintf("No glossaries or translations found in %s.", db))
	}
	return f.FormatExtract(a.Stdout, report)
}

// parseExtractArgs accepts "--config <path>" or "--config=<path>".
func parseExtractArgs(args []string) (string, error) {
	var path string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--config":
			if i+1 >= len(args) {
				return "", fmt.Errorf("--config requires a path")
			}
			i++
			path = args[i]
		case strings.HasPrefix(arg, "--config="):
			path = strings.TrimPrefix(arg, "--config=")
		default:
			return "", fmt.Errorf("Unknown argument '%s' for extract. Run 'gloss help extract' for usage.", arg)
		}
	}
	return path, nil
}
