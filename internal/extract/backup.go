package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// CopyDatabase copies the database file at src to dst through a temp file in
// the destination directory, so an interrupted copy never replaces a good
// backup. It returns the number of bytes copied.
func CopyDatabase(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("opening source database: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, fmt.Errorf("creating backup directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp*")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	n, err := io.Copy(tmp, in)
	if err != nil {
		return 0, fmt.Errorf("copying database: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return 0, fmt.Errorf("syncing backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing backup: %w", err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		return 0, fmt.Errorf("renaming backup: %w", err)
	}

	success = true
	return n, nil
}

// AppendBackupLog appends a backup record with the run time and database size
// to the log at path, creating it if needed.
func AppendBackupLog(path string, now time.Time, size int64) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening backup log: %w", err)
	}
	_, err = fmt.Fprintf(f, "Backup date/time: %s\nBacked up DB size (bytes): %d\n\n", formatTime(now), size)
	if err != nil {
		f.Close()
		return fmt.Errorf("writing backup log: %w", err)
	}
	return f.Close()
}
