// Package cli implements the gloss command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leeovery/gloss/internal/config"
	"github.com/leeovery/gloss/internal/logger"
)

// App is the gloss CLI application.
type App struct {
	Stdout io.Writer
	Stderr io.Writer
	// Dir is the working directory relative paths are resolved against.
	Dir string
	// Now returns the run time stamped into extract logs. Defaults to time.Now.
	Now func() time.Time

	opts GlobalOpts
	fc   FormatConfig
}

// GlobalOpts holds parsed global flags.
type GlobalOpts struct {
	Quiet   bool
	Verbose bool
	Toon    bool
	Pretty  bool
	JSON    bool
}

// NewApp creates a new CLI application with the given output writers.
func NewApp(stdout, stderr io.Writer) *App {
	return &App{Stdout: stdout, Stderr: stderr}
}

// Run parses arguments and dispatches to the appropriate subcommand.
// args[0] is the program name. Returns the process exit code.
func (a *App) Run(args []string) int {
	subcmd, cmdArgs := a.parseGlobalFlags(args[1:])

	if subcmd == "" || subcmd == "help" {
		return a.handleHelp(cmdArgs)
	}

	fc, err := NewFormatConfig(a.opts.Toon, a.opts.Pretty, a.opts.JSON, a.opts.Quiet, a.opts.Verbose, a.Stdout)
	if err != nil {
		return a.fail(err)
	}
	a.fc = fc

	ctx := context.Background()
	switch subcmd {
	case "reorganize":
		return a.handleReorganize(ctx, cmdArgs)
	case "dedupe":
		return a.handleDedupe(ctx, cmdArgs)
	case "check":
		return a.handleCheck(ctx, cmdArgs)
	case "extract":
		return a.handleExtract(ctx, cmdArgs)
	default:
		if strings.HasPrefix(subcmd, "-") {
			return a.fail(fmt.Errorf("Unknown flag '%s'. Run 'gloss help' for usage.", subcmd))
		}
		// A bare path is shorthand for reorganize.
		return a.handleReorganize(ctx, append([]string{subcmd}, cmdArgs...))
	}
}

// parseGlobalFlags consumes global flags until the first non-flag argument,
// which names the subcommand. Global flags after the subcommand are still
// honored; anything else is passed through.
func (a *App) parseGlobalFlags(args []string) (subcmd string, remaining []string) {
	for _, arg := range args {
		switch arg {
		case "--quiet", "-q":
			a.opts.Quiet = true
		case "--verbose", "-v":
			a.opts.Verbose = true
		case "--toon":
			a.opts.Toon = true
		case "--pretty":
			a.opts.Pretty = true
		case "--json":
			a.opts.JSON = true
		case "--help", "-h":
			if subcmd == "" {
				subcmd = "help"
			} else {
				remaining = append([]string{subcmd}, remaining...)
				subcmd = "help"
			}
		default:
			if subcmd == "" {
				subcmd = arg
			} else {
				remaining = append(remaining, arg)
			}
		}
	}
	return subcmd, remaining
}

// fail prints err in the standard format and returns exit code 1.
func (a *App) fail(err error) int {
	fmt.Fprintf(a.Stderr, "Error: %s\n", err)
	return 1
}

// resolve makes path absolute relative to the app's working directory.
func (a *App) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || a.Dir == "" {
		return path
	}
	return filepath.Join(a.Dir, path)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// loadConfig reads configuration from path (or the default locations) and
// builds the logger that writes to stderr. The default config file is looked
// up in the app's working directory.
func (a *App) loadConfig(path string) (*config.Config, *slog.Logger, error) {
	path = a.resolve(path)
	if path == "" && os.Getenv("GLOSS_CONFIG") == "" {
		if def := a.resolve(config.DefaultPath); fileExists(def) {
			path = def
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cfg.Log, a.Stderr, a.opts.Verbose), nil
}

// pipelineLogger builds the logger for commands that only need logging
// settings. A config that fails to load is reported and replaced by the
// default log settings.
func (a *App) pipelineLogger() *slog.Logger {
	_, log, err := a.loadConfig("")
	if err == nil {
		return log
	}
	log = logger.New(config.LogConfig{Level: "info", Format: "text"}, a.Stderr, a.opts.Verbose)
	log.Warn("ignoring config", slog.Any("error", err))
	return log
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// singleInput returns the one positional argument a command takes.
func singleInput(cmd string, args []string) (string, error) {
	var positional []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && arg != "-" {
			return "", fmt.Errorf("Unknown flag '%s' for %s. Run 'gloss help %s' for usage.", arg, cmd, cmd)
		}
		positional = append(positional, arg)
	}
	if len(positional) != 1 {
		return "", fmt.Errorf("%s requires exactly one input file. Usage: %s", cmd, findCommand(cmd).Usage)
	}
	return positional[0], nil
}
