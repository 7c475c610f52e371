package engine

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"github.com/leeovery/gloss/internal/config"
	"github.com/leeovery/gloss/internal/logger"
	"github.com/leeovery/gloss/internal/storage"
)

const scenario = "cat\tneko\ndog\tinu\ncat\tneko\ncat\tbyou\nno-tab-here\n"

func setupInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glossary.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}
	return path
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func newTestRunner(t *testing.T, opts ...Option) *Runner {
	t.Helper()
	return NewRunner(append([]Option{WithLockDir(t.TempDir())}, opts...)...)
}

func TestReorganize(t *testing.T) {
	t.Run("it writes reorganized and discarded files for the reference scenario", func(t *testing.T) {
		input := setupInput(t, scenario)
		r := newTestRunner(t)

		sum, err := r.Reorganize(context.Background(), input)
		if err != nil {
			t.Fatalf("Reorganize() error: %v", err)
		}

		out := storage.OutputPaths(input)
		if got := readOutput(t, out.Reorganized); got != "cat\tneko, byou\ndog\tinu\n" {
			t.Errorf("reorganized = %q, want %q", got, "cat\tneko, byou\ndog\tinu\n")
		}
		if got := readOutput(t, out.Discarded); got != "no-tab-here\t\n" {
			t.Errorf("discarded = %q, want %q", got, "no-tab-here\t\n")
		}

		want := Summary{
			Mode:       ModeReorganize,
			Input:      input,
			Lines:      5,
			Valid:      4,
			Discarded:  1,
			Unique:     3,
			Duplicates: 1,
			Entries:    2,
		}
		if sum.Mode != want.Mode || sum.Lines != want.Lines || sum.Valid != want.Valid ||
			sum.Discarded != want.Discarded || sum.Unique != want.Unique ||
			sum.Duplicates != want.Duplicates || sum.Entries != want.Entries {
			t.Errorf("Summary = %+v, want %+v", sum, want)
		}
		if len(sum.Outputs) != 2 || sum.Outputs[0] != out.Reorganized || sum.Outputs[1] != out.Discarded {
			t.Errorf("Outputs = %v, want [%s %s]", sum.Outputs, out.Reorganized, out.Discarded)
		}
	})

	t.Run("it produces a reorganized file that reorganizes to itself", func(t *testing.T) {
		input := setupInput(t, scenario)
		r := newTestRunner(t)
		if _, err := r.Reorganize(context.Background(), input); err != nil {
			t.Fatalf("Reorganize() error: %v", err)
		}
		first := storage.OutputPaths(input).Reorganized

		second := setupInput(t, readOutput(t, first))
		sum, err := r.Reorganize(context.Background(), second)
		if err != nil {
			t.Fatalf("second Reorganize() error: %v", err)
		}

		if sum.Discarded != 0 {
			t.Errorf("Discarded = %d, want 0", sum.Discarded)
		}
		if got, want := readOutput(t, storage.OutputPaths(second).Reorganized), readOutput(t, first); got != want {
			t.Errorf("second pass = %q, want %q", got, want)
		}
	})

	t.Run("it writes empty outputs for an empty input", func(t *testing.T) {
		input := setupInput(t, "")
		r := newTestRunner(t)

		sum, err := r.Reorganize(context.Background(), input)
		if err != nil {
			t.Fatalf("Reorganize() error: %v", err)
		}

		if sum.Lines != 0 || sum.Entries != 0 {
			t.Errorf("Summary = %+v, want zero counts", sum)
		}
		if got := readOutput(t, storage.OutputPaths(input).Reorganized); got != "" {
			t.Errorf("reorganized = %q, want empty", got)
		}
	})

	t.Run("it reports a missing input as a read failure without writing outputs", func(t *testing.T) {
		input := filepath.Join(t.TempDir(), "missing.txt")
		r := newTestRunner(t)

		_, err := r.Reorganize(context.Background(), input)

		var fae *storage.FileAccessError
		if !errors.As(err, &fae) {
			t.Fatalf("Reorganize() error = %v, want *storage.FileAccessError", err)
		}
		if !strings.HasPrefix(err.Error(), "reading glossary: ") {
			t.Errorf("error = %q, want stage prefix", err)
		}
		if _, statErr := os.Stat(storage.OutputPaths(input).Reorganized); !errors.Is(statErr, os.ErrNotExist) {
			t.Error("reorganized output exists after read failure")
		}
	})

	t.Run("it reports invalid UTF-8 as a decoding failure", func(t *testing.T) {
		input := setupInput(t, "ok\tfine\n\xfe\xff\n")
		r := newTestRunner(t)

		_, err := r.Reorganize(context.Background(), input)

		var de *storage.DecodingError
		if !errors.As(err, &de) {
			t.Fatalf("Reorganize() error = %v, want *storage.DecodingError", err)
		}
	})

	t.Run("it fails when another run holds the lock", func(t *testing.T) {
		input := setupInput(t, scenario)
		r := newTestRunner(t, WithLockTimeout(100*time.Millisecond))

		fl := flock.New(r.LockPath(input))
		if err := fl.Lock(); err != nil {
			t.Fatalf("acquiring external lock: %v", err)
		}
		defer func() { _ = fl.Unlock() }()

		_, err := r.Reorganize(context.Background(), input)
		if err == nil {
			t.Fatal("expected lock timeout error, got nil")
		}
		if !strings.Contains(err.Error(), "could not acquire lock") {
			t.Errorf("error = %q, want lock message", err)
		}
		if _, statErr := os.Stat(storage.OutputPaths(input).Reorganized); !errors.Is(statErr, os.ErrNotExist) {
			t.Error("reorganized output exists after lock failure")
		}
	})

	t.Run("it releases the lock after a run", func(t *testing.T) {
		input := setupInput(t, scenario)
		r := newTestRunner(t)

		if _, err := r.Reorganize(context.Background(), input); err != nil {
			t.Fatalf("Reorganize() error: %v", err)
		}

		fl := flock.New(r.LockPath(input))
		locked, err := fl.TryLock()
		if err != nil || !locked {
			t.Fatalf("lock still held after run: locked=%v err=%v", locked, err)
		}
		_ = fl.Unlock()
	})

	t.Run("it logs each stage at debug level", func(t *testing.T) {
		input := setupInput(t, scenario)
		var stderr bytes.Buffer
		r := newTestRunner(t, WithLogger(logger.New(config.LogConfig{Level: "debug"}, &stderr, false)))

		if _, err := r.Reorganize(context.Background(), input); err != nil {
			t.Fatalf("Reorganize() error: %v", err)
		}

		for _, phrase := range []string{"lock acquired", "read glossary", "classified lines", "merged entries", "wrote outputs", "lock released"} {
			if !strings.Contains(stderr.String(), phrase) {
				t.Errorf("log output missing %q:\n%s", phrase, stderr.String())
			}
		}
	})
}

func TestDedupeLines(t *testing.T) {
	t.Run("it removes repeated lines keeping first occurrence order", func(t *testing.T) {
		input := setupInput(t, "a\nb\na\nc\n")
		r := newTestRunner(t)

		sum, err := r.DedupeLines(context.Background(), input)
		if err != nil {
			t.Fatalf("DedupeLines() error: %v", err)
		}

		out := storage.OutputPaths(input).Deduplicated
		if got := readOutput(t, out); got != "a\nb\nc\n" {
			t.Errorf("deduplicated = %q, want %q", got, "a\nb\nc\n")
		}
		if sum.Mode != ModeDedupe || sum.Lines != 4 || sum.Unique != 3 || sum.Duplicates != 1 {
			t.Errorf("Summary = %+v, want 4 lines, 3 unique, 1 duplicate", sum)
		}
	})

	t.Run("it keeps tab-delimited lines intact", func(t *testing.T) {
		input := setupInput(t, "a\tb\tc\na\tb\tc\nsolo\n")
		r := newTestRunner(t)

		if _, err := r.DedupeLines(context.Background(), input); err != nil {
			t.Fatalf("DedupeLines() error: %v", err)
		}

		if got := readOutput(t, storage.OutputPaths(input).Deduplicated); got != "a\tb\tc\nsolo\n" {
			t.Errorf("deduplicated = %q, want %q", got, "a\tb\tc\nsolo\n")
		}
	})

	t.Run("it does not write the reorganize outputs", func(t *testing.T) {
		input := setupInput(t, scenario)
		r := newTestRunner(t)

		if _, err := r.DedupeLines(context.Background(), input); err != nil {
			t.Fatalf("DedupeLines() error: %v", err)
		}

		if _, err := os.Stat(storage.OutputPaths(input).Reorganized); !errors.Is(err, os.ErrNotExist) {
			t.Error("reorganized output written by dedupe run")
		}
	})
}

func TestLockPath(t *testing.T) {
	t.Run("it is stable for the same input and distinct across inputs", func(t *testing.T) {
		r := NewRunner(WithLockDir("/locks"))

		a1 := r.LockPath("/data/a.txt")
		a2 := r.LockPath("/data/a.txt")
		b := r.LockPath("/data/b.txt")

		if a1 != a2 {
			t.Errorf("LockPath not stable: %q vs %q", a1, a2)
		}
		if a1 == b {
			t.Errorf("LockPath collides for different inputs: %q", a1)
		}
		if filepath.Dir(a1) != "/locks" {
			t.Errorf("LockPath dir = %q, want /locks", filepath.Dir(a1))
		}
	})
}
