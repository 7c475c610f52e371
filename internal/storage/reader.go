// Package storage reads glossary files into raw lines and writes the
// normalized outputs using an all-or-nothing temp file + rename commit.
package storage

import (
	"bytes"
	"os"
	"strings"
	"unicode/utf8"
)

// ReadLines reads the file at path and returns its lines with line
// terminators removed. Nothing else about a line is changed. A missing or
// unreadable file yields a *FileAccessError; content that is not valid UTF-8
// yields a *DecodingError. No lines are returned on failure.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Op: "read", Path: path, Err: err}
	}
	return ParseLines(path, data)
}

// ParseLines splits raw file content into lines. path is only used for error
// reporting. "\n" and "\r\n" both terminate a line; a final terminator does
// not start an extra empty line, and empty content has no lines.
func ParseLines(path string, data []byte) ([]string, error) {
	if !utf8.Valid(data) {
		return nil, decodingError(path, data)
	}
	return SplitLines(data), nil
}

// SplitLines splits content on line terminators without validating its
// encoding.
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return []string{}
	}

	text := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// decodingError locates the first invalid UTF-8 sequence in data.
func decodingError(path string, data []byte) *DecodingError {
	offset := 0
	for offset < len(data) {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		offset += size
	}
	return &DecodingError{
		Path:   path,
		Line:   bytes.Count(data[:offset], []byte("\n")) + 1,
		Offset: offset,
		Err:    ErrInvalidUTF8,
	}
}
