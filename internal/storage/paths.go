package storage

import (
	"path/filepath"
	"strings"
)

// Output file suffixes appended to the input path with its extension removed.
const (
	SuffixReorganized  = "-reorganized"
	SuffixDiscarded    = "-discarded-entries"
	SuffixDeduplicated = "-duplicates-removed"

	outputExt = ".txt"
)

// Outputs holds the derived output paths for one input file. All of them sit
// next to the input.
type Outputs struct {
	Reorganized  string
	Discarded    string
	Deduplicated string
}

// OutputPaths derives the output paths for input by stripping its extension
// and appending each suffix plus ".txt".
func OutputPaths(input string) Outputs {
	base := trimExt(input)
	return Outputs{
		Reorganized:  base + SuffixReorganized + outputExt,
		Discarded:    base + SuffixDiscarded + outputExt,
		Deduplicated: base + SuffixDeduplicated + outputExt,
	}
}

// trimExt removes the final extension of path. Leading dots of the file name
// do not count as an extension, so ".glossary" is kept whole.
func trimExt(path string) string {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	if ext == "" || strings.TrimLeft(name, ".") == strings.TrimLeft(ext, ".") {
		return path
	}
	return strings.TrimSuffix(path, ext)
}
