package cli

import (
	"errors"
	"io"
	"os"

	"github.com/leeovery/gloss/internal/engine"
	"github.com/leeovery/gloss/internal/extract"
)

// Format represents the output format type.
type Format string

// Format constants for output selection.
const (
	FormatToon   Format = "toon"
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
)

// FormatConfig holds output configuration passed to handlers.
type FormatConfig struct {
	Format  Format
	Quiet   bool
	Verbose bool
}

// Formatter renders command results. Every command that produces a result
// writes it through a Formatter.
type Formatter interface {
	// FormatSummary renders the counts and output paths of a reorganize or
	// dedupe run.
	FormatSummary(w io.Writer, s engine.Summary) error

	// FormatExtract renders the result of an extract run.
	FormatExtract(w io.Writer, r extract.Report) error

	// FormatMessage renders a simple message.
	FormatMessage(w io.Writer, msg string) error
}

// DetectTTY checks if the given writer is a terminal (TTY).
// Returns false if writer is not an *os.File, if Stat() fails,
// or if the file is not a character device.
func DetectTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}

// ResolveFormat determines the output format from flags and TTY status.
// Returns error if more than one format flag is set.
// If no flags set, returns Pretty for TTY, Toon for non-TTY.
func ResolveFormat(toonFlag, prettyFlag, jsonFlag, isTTY bool) (Format, error) {
	count := 0
	for _, set := range []bool{toonFlag, prettyFlag, jsonFlag} {
		if set {
			count++
		}
	}
	if count > 1 {
		return "", errors.New("cannot specify multiple format flags (--toon, --pretty, --json)")
	}

	switch {
	case toonFlag:
		return FormatToon, nil
	case prettyFlag:
		return FormatPretty, nil
	case jsonFlag:
		return FormatJSON, nil
	case isTTY:
		return FormatPretty, nil
	default:
		return FormatToon, nil
	}
}

// NewFormatConfig creates a FormatConfig from flags and TTY detection.
// Returns error if conflicting format flags are set.
func NewFormatConfig(toonFlag, prettyFlag, jsonFlag, quiet, verbose bool, stdout io.Writer) (FormatConfig, error) {
	format, err := ResolveFormat(toonFlag, prettyFlag, jsonFlag, DetectTTY(stdout))
	if err != nil {
		return FormatConfig{}, err
	}

	return FormatConfig{
		Format:  format,
		Quiet:   quiet,
		Verbose: verbose,
	}, nil
}

// Formatter returns the appropriate Formatter for the configured format.
func (c FormatConfig) Formatter() Formatter {
	switch c.Format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatPretty:
		return &PrettyFormatter{}
	default:
		return &ToonFormatter{}
	}
}
