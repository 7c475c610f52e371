package glossary

import (
	"reflect"
	"strings"
	"testing"
)

func TestReorganize(t *testing.T) {
	t.Run("it runs the full pipeline over the reference scenario", func(t *testing.T) {
		res := Reorganize(scenarioLines())

		if res.Lines != 5 {
			t.Errorf("Lines = %d, want 5", res.Lines)
		}
		if len(res.Valid) != 4 || len(res.Discarded) != 1 {
			t.Errorf("valid/discarded = %d/%d, want 4/1", len(res.Valid), len(res.Discarded))
		}
		if res.Duplicates() != 1 {
			t.Errorf("Duplicates() = %d, want 1", res.Duplicates())
		}

		wantSorted := []Record{
			{Source: "cat", Target: "neko"},
			{Source: "cat", Target: "byou"},
			{Source: "dog", Target: "inu"},
		}
		if !reflect.DeepEqual(res.Sorted, wantSorted) {
			t.Errorf("Sorted = %v, want %v", res.Sorted, wantSorted)
		}

		wantEntries := []Entry{
			{Source: "cat", Target: "neko, byou"},
			{Source: "dog", Target: "inu"},
		}
		if !reflect.DeepEqual(res.Combined.Entries(), wantEntries) {
			t.Errorf("Combined = %v, want %v", res.Combined.Entries(), wantEntries)
		}
	})

	t.Run("it emits entries that classify back as valid two-field lines", func(t *testing.T) {
		res := Reorganize([]string{"b\t1", "a\t2", "b\t3", "a\t2", "c\td\te"})

		var lines []string
		for _, e := range res.Combined.Entries() {
			lines = append(lines, Record{Source: e.Source, Target: e.Target}.Line())
		}
		valid, discarded := Classify(lines)

		if len(discarded) != 0 {
			t.Errorf("reorganized lines produced discarded records: %q", discarded)
		}
		if len(valid) != res.Combined.Len() {
			t.Errorf("len(valid) = %d, want %d", len(valid), res.Combined.Len())
		}
	})

	t.Run("it has one combined key per distinct source", func(t *testing.T) {
		res := Reorganize(strings.Split("x\t1\ny\t2\nx\t3\nz\t4\ny\t2", "\n"))

		want := []string{"x", "y", "z"}
		if !reflect.DeepEqual(res.Combined.Keys(), want) {
			t.Errorf("Keys() = %q, want %q", res.Combined.Keys(), want)
		}
	})
}
