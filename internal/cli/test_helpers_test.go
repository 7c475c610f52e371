package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// runApp runs the CLI in dir with the given arguments (without the program
// name) and returns stdout, stderr and the exit code.
func runApp(t *testing.T, dir string, args ...string) (stdout string, stderr string, exitCode int) {
	t.Helper()
	t.Setenv("GLOSS_CONFIG", "")

	var outBuf, errBuf bytes.Buffer
	app := NewApp(&outBuf, &errBuf)
	app.Dir = dir
	app.Now = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC) }

	code := app.Run(append([]string{"gloss"}, args...))
	return outBuf.String(), errBuf.String(), code
}

// writeFile creates name inside dir with the given content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
