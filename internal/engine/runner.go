// Package engine runs the glossary normalization pipeline end to end: read,
// normalize, and commit the outputs, holding a per-input file lock so two runs
// never write the same outputs at once.
package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/leeovery/gloss/internal/glossary"
	"github.com/leeovery/gloss/internal/logger"
	"github.com/leeovery/gloss/internal/storage"
)

const defaultLockTimeout = 5 * time.Second

// Mode names the kind of run that produced a Summary.
type Mode string

const (
	ModeReorganize Mode = "reorganize"
	ModeDedupe     Mode = "dedupe"
)

// Summary reports the counts of one run and the files it wrote.
type Summary struct {
	Mode       Mode
	Input      string
	Lines      int
	Valid      int
	Discarded  int
	Unique     int
	Duplicates int
	Entries    int
	Outputs    []string
}

// Runner executes pipeline runs.
type Runner struct {
	lockDir     string
	lockTimeout time.Duration
	log         *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLockTimeout sets how long a run waits for the input lock. The default
// is 5 seconds.
func WithLockTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.lockTimeout = d
	}
}

// WithLockDir sets the directory holding lock files. The default is the OS
// temp dir, so nothing but outputs is created next to the input.
func WithLockDir(dir string) Option {
	return func(r *Runner) {
		r.lockDir = dir
	}
}

// WithLogger sets the logger used for stage diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.log = l
	}
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		lockDir:     os.TempDir(),
		lockTimeout: defaultLockTimeout,
		log:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reorganize reads the glossary at input, classifies, dedupes, sorts and
// merges its records, then writes the reorganized and discarded-entries files
// next to it. Either both outputs are written or neither is.
func (r *Runner) Reorganize(ctx context.Context, input string) (Summary, error) {
	unlock, err := r.acquire(ctx, input)
	if err != nil {
		return Summary{}, err
	}
	defer unlock()

	lines, err := storage.ReadLines(input)
	if err != nil {
		return Summary{}, fmt.Errorf("reading glossary: %w", err)
	}
	r.log.Debug("read glossary", "path", input, "lines", len(lines))

	res := glossary.Reorganize(lines)
	r.log.Debug("classified lines", "valid", len(res.Valid), "discarded", len(res.Discarded))
	r.log.Debug("removed duplicates", "unique", len(res.Unique), "duplicates", res.Duplicates())
	r.log.Debug("merged entries", "entries", res.Combined.Len())

	out := storage.OutputPaths(input)
	err = storage.WriteFiles(
		storage.File{Path: out.Reorganized, Data: storage.EncodeReorganized(res.Combined)},
		storage.File{Path: out.Discarded, Data: storage.EncodeDiscarded(res.Discarded)},
	)
	if err != nil {
		return Summary{}, fmt.Errorf("writing outputs: %w", err)
	}
	r.log.Debug("wrote outputs", "reorganized", out.Reorganized, "discarded", out.Discarded)

	return Summary{
		Mode:       ModeReorganize,
		Input:      input,
		Lines:      res.Lines,
		Valid:      len(res.Valid),
		Discarded:  len(res.Discarded),
		Unique:     len(res.Unique),
		Duplicates: res.Duplicates(),
		Entries:    res.Combined.Len(),
		Outputs:    []string{out.Reorganized, out.Discarded},
	}, nil
}

// DedupeLines reads the file at input, drops repeated whole lines keeping the
// first occurrence, and writes the duplicates-removed file next to it.
func (r *Runner) DedupeLines(ctx context.Context, input string) (Summary, error) {
	unlock, err := r.acquire(ctx, input)
	if err != nil {
		return Summary{}, err
	}
	defer unlock()

	lines, err := storage.ReadLines(input)
	if err != nil {
		return Summary{}, fmt.Errorf("reading glossary: %w", err)
	}
	r.log.Debug("read glossary", "path", input, "lines", len(lines))

	unique := glossary.DedupeLines(lines)
	r.log.Debug("removed duplicate lines", "unique", len(unique), "duplicates", len(lines)-len(unique))

	out := storage.OutputPaths(input)
	if err := storage.WriteFiles(storage.File{Path: out.Deduplicated, Data: storage.EncodeLines(unique)}); err != nil {
		return Summary{}, fmt.Errorf("writing outputs: %w", err)
	}
	r.log.Debug("wrote outputs", "deduplicated", out.Deduplicated)

	return Summary{
		Mode:       ModeDedupe,
		Input:      input,
		Lines:      len(lines),
		Unique:     len(unique),
		Duplicates: len(lines) - len(unique),
		Outputs:    []string{out.Deduplicated},
	}, nil
}

// LockPath returns the lock file guarding runs over input.
func (r *Runner) LockPath(input string) string {
	abs, err := filepath.Abs(input)
	if err != nil {
		abs = input
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(r.lockDir, "gloss-"+hex.EncodeToString(sum[:8])+".lock")
}

// acquire takes the exclusive lock for input within the configured timeout.
// It returns an unlock function that must be deferred by the caller.
func (r *Runner) acquire(ctx context.Context, input string) (unlock func(), err error) {
	fl := flock.New(r.LockPath(input))
	ctx, cancel := context.WithTimeout(ctx, r.lockTimeout)

	r.log.Debug("acquiring lock", "path", fl.Path())
	locked, err := fl.TryLockContext(ctx, 50*time.Millisecond)
	if !locked || err != nil {
		cancel()
		return nil, fmt.Errorf("could not acquire lock for %s - another gloss run may be using it", input)
	}
	r.log.Debug("lock acquired", "path", fl.Path())

	return func() {
		_ = fl.Unlock()
		cancel()
		r.log.Debug("lock released", "path", fl.Path())
	}, nil
}
