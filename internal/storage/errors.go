package storage

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is the cause wrapped by every DecodingError.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// FileAccessError reports a path that could not be opened, read or written.
// Op names the failing stage ("read", "write", "replace").
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// DecodingError reports input that is not valid UTF-8. Line is 1-based and
// Offset is the byte offset of the first invalid sequence in the file.
type DecodingError struct {
	Path   string
	Line   int
	Offset int
	Err    error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("cannot decode %s: %v on line %d (byte offset %d)", e.Path, e.Err, e.Line, e.Offset)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}
