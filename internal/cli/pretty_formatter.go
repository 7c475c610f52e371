package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/leeovery/gloss/internal/engine"
	"github.com/leeovery/gloss/internal/extract"
)

// PrettyFormatter renders results for a terminal: aligned labels with
// right-aligned numbers, no colors.
type PrettyFormatter struct{}

// FormatSummary renders the counts of a run and the files it wrote.
func (f *PrettyFormatter) FormatSummary(w io.Writer, s engine.Summary) error {
	fmt.Fprintf(w, "%s %s\n\n", modeTitle(s.Mode), s.Input)

	type stat struct {
		label string
		n     int
	}
	var stats []stat
	switch s.Mode {
	case engine.ModeDedupe:
		stats = []stat{
			{"Lines:", s.Lines},
			{"Unique:", s.Unique},
			{"Duplicates:", s.Duplicates},
		}
	default:
		stats = []stat{
			{"Lines:", s.Lines},
			{"Valid:", s.Valid},
			{"Discarded:", s.Discarded},
			{"Unique:", s.Unique},
			{"Duplicates:", s.Duplicates},
			{"Entries:", s.Entries},
		}
	}

	nums := make([]int, len(stats))
	for i, st := range stats {
		nums[i] = st.n
	}
	line := fmt.Sprintf("%%-%ds%%%dd\n", labelWidth, numWidth(nums))
	for _, st := range stats {
		fmt.Fprintf(w, line, st.label, st.n)
	}

	writeList(w, "Wrote:", s.Outputs)
	return nil
}

// FormatExtract renders an extract report.
func (f *PrettyFormatter) FormatExtract(w io.Writer, r extract.Report) error {
	if r.Backup != "" {
		fmt.Fprintf(w, "Backup: %s (%s bytes)\n\n", r.Backup, strconv.FormatInt(r.BackupBytes, 10))
	}

	nums := []int{len(r.Glossaries), len(r.Translations), r.Rows, len(r.Errors)}
	line := fmt.Sprintf("%%-%ds%%%dd\n", labelWidth, numWidth(nums))
	fmt.Fprintf(w, line, "Glossaries:", len(r.Glossaries))
	fmt.Fprintf(w, line, "Translations:", len(r.Translations))
	fmt.Fprintf(w, line, "Rows:", r.Rows)
	fmt.Fprintf(w, line, "Errors:", len(r.Errors))

	writeList(w, "Failures:", r.Errors)
	return nil
}

// FormatMessage writes the message followed by a newline.
func (f *PrettyFormatter) FormatMessage(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

// labelWidth fits the widest label, "Translations:".
const labelWidth = 14

func modeTitle(m engine.Mode) string {
	if m == engine.ModeDedupe {
		return "Deduplicated"
	}
	return "Reorganized"
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	for _, it := range items {
		fmt.Fprintf(w, "  %s\n", it)
	}
}

// numWidth returns the width needed to display the widest number in the slice.
// Returns at least 3 to ensure consistent spacing with right-aligned numbers.
func numWidth(nums []int) int {
	w := 3
	for _, n := range nums {
		if l := len(strconv.Itoa(n)); l > w {
			w = l
		}
	}
	return w
}
