package cli

import (
	"context"
	"log/slog"

	"github.com/leeovery/gloss/internal/engine"
)

func (a *App) handleReorganize(ctx context.Context, args []string) int {
	input, err := singleInput("reorganize", args)
	if err != nil {
		return a.fail(err)
	}
	return a.runPipeline(input, func(r *engine.Runner, path string) (engine.Summary, error) {
		return r.Reorganize(ctx, path)
	})
}

func (a *App) handleDedupe(ctx context.Context, args []string) int {
	input, err := singleInput("dedupe", args)
	if err != nil {
		return a.fail(err)
	}
	return a.runPipeline(input, func(r *engine.Runner, path string) (engine.Summary, error) {
		return r.DedupeLines(ctx, path)
	})
}

// runPipeline runs one engine operation on input and prints its summary.
func (a *App) runPipeline(input string, run func(*engine.Runner, string) (engine.Summary, error)) int {
	log := a.pipelineLogger()
	summary, err := run(engine.NewRunner(engine.WithLogger(log)), a.resolve(input))
	if err != nil {
		log.Debug("run failed", slog.String("input", input), slog.Any("error", err))
		return a.fail(err)
	}

	if a.fc.Quiet {
		return 0
	}
	if err := a.fc.Formatter().FormatSummary(a.Stdout, summary); err != nil {
		return a.fail(err)
	}
	return 0
}
