package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const filePerm = 0o644

// File is one output to be written by WriteFiles.
type File struct {
	Path string
	Data []byte
}

// staged tracks a file between writing its temp copy and committing it.
type staged struct {
	dest     string
	tmp      string
	backup   string
	replaced bool
}

// WriteFiles writes every file or none of them. Each file is first written to
// a temp file next to its destination and fsynced. Only when all temp files
// are complete are they renamed into place; an existing destination is moved
// aside first and restored if a later rename fails. On any error every temp
// file is removed and a *FileAccessError is returned.
func WriteFiles(files ...File) error {
	stages := make([]*staged, 0, len(files))
	cleanup := func() {
		for _, st := range stages {
			os.Remove(st.tmp)
		}
	}

	for _, f := range files {
		tmp, err := writeTemp(f)
		if err != nil {
			cleanup()
			return &FileAccessError{Op: "write", Path: f.Path, Err: err}
		}
		stages = append(stages, &staged{dest: f.Path, tmp: tmp, backup: tmp + ".orig"})
	}

	for i, st := range stages {
		if err := commit(st); err != nil {
			rollback(stages[:i+1])
			cleanup()
			return &FileAccessError{Op: "replace", Path: st.dest, Err: err}
		}
	}

	for _, st := range stages {
		if st.replaced {
			os.Remove(st.backup)
		}
		_ = syncDir(filepath.Dir(st.dest))
	}
	return nil
}

// writeTemp writes f.Data to a temp file in the destination directory using
// the write, fsync, close sequence and returns the temp path.
func writeTemp(f File) (string, error) {
	dir := filepath.Dir(f.Path)
	base := filepath.Base(f.Path)

	tmpFile, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	writer := bufio.NewWriter(tmpFile)
	if _, err := writer.Write(f.Data); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush writer: %w", err)
	}
	if err := tmpFile.Chmod(filePerm); err != nil {
		return "", fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return "", fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	success = true
	return tmpPath, nil
}

// commit moves any existing destination aside and renames the temp file over
// the destination.
func commit(st *staged) error {
	if info, err := os.Lstat(st.dest); err == nil {
		if info.IsDir() {
			return fmt.Errorf("destination is a directory")
		}
		if err := os.Rename(st.dest, st.backup); err != nil {
			return fmt.Errorf("failed to move existing file aside: %w", err)
		}
		st.replaced = true
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.Rename(st.tmp, st.dest); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// rollback undoes committed stages in reverse order, restoring any file that
// was moved aside and removing newly created destinations.
func rollback(stages []*staged) {
	for i := len(stages) - 1; i >= 0; i-- {
		st := stages[i]
		if _, err := os.Lstat(st.tmp); errors.Is(err, os.ErrNotExist) {
			os.Remove(st.dest)
		}
		if st.replaced {
			os.Rename(st.backup, st.dest)
		}
	}
}

// syncDir fsyncs a directory so renames within it are durable.
func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
