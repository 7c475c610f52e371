package glossary

// Result carries every intermediate set produced by Reorganize so callers can
// write outputs and report counts.
type Result struct {
	Lines     int
	Valid     []Record
	Discarded []DiscardedRecord
	Unique    []Record
	Sorted    []Record
	Combined  *Combined
}

// Duplicates returns how many valid records were dropped as exact repeats.
func (r Result) Duplicates() int {
	return len(r.Valid) - len(r.Unique)
}

// Reorganize runs classify, dedupe, sort and merge over raw lines.
func Reorganize(lines []string) Result {
	valid, discarded := Classify(lines)
	unique := Dedupe(valid)
	sorted := SortBySource(unique)

	return Result{
		Lines:     len(lines),
		Valid:     valid,
		Discarded: discarded,
		Unique:    unique,
		Sorted:    sorted,
		Combined:  Merge(sorted),
	}
}
