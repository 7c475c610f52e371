package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	toon "github.com/toon-format/toon-go"

	"github.com/leeovery/gloss/internal/engine"
	"github.com/leeovery/gloss/internal/extract"
)

// ToonFormatter renders results in TOON (Token-Oriented Object Notation),
// the default when stdout is not a terminal.
type ToonFormatter struct{}

// FormatSummary renders a run summary as a single-row summary section
// followed by the outputs written.
func (f *ToonFormatter) FormatSummary(w io.Writer, s engine.Summary) error {
	header := "summary{mode,input,lines,valid,discarded,unique,duplicates,entries}:"
	row := strings.Join([]string{
		toonEscapeValue(string(s.Mode)),
		toonEscapeValue(s.Input),
		strconv.Itoa(s.Lines),
		strconv.Itoa(s.Valid),
		strconv.Itoa(s.Discarded),
		strconv.Itoa(s.Unique),
		strconv.Itoa(s.Duplicates),
		strconv.Itoa(s.Entries),
	}, ",")

	sections := []string{
		header + "\n  " + row + "\n",
		buildListSection("outputs", "path", s.Outputs),
	}
	_, err := fmt.Fprint(w, strings.Join(sections, "\n"))
	return err
}

// FormatExtract renders an extract report: totals, the files written, and
// any collected errors.
func (f *ToonFormatter) FormatExtract(w io.Writer, r extract.Report) error {
	header := "extract{backup,backup_bytes,glossaries,translations,rows,errors}:"
	row := strings.Join([]string{
		toonEscapeValue(r.Backup),
		strconv.FormatInt(r.BackupBytes, 10),
		strconv.Itoa(len(r.Glossaries)),
		strconv.Itoa(len(r.Translations)),
		strconv.Itoa(r.Rows),
		strconv.Itoa(len(r.Errors)),
	}, ",")

	sections := []string{
		header + "\n  " + row + "\n",
		buildListSection("files", "path", r.Files()),
		buildListSection("errors", "message", r.Errors),
	}
	_, err := fmt.Fprint(w, strings.Join(sections, "\n"))
	return err
}

// FormatMessage renders a simple message as plain text.
func (f *ToonFormatter) FormatMessage(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

// buildListSection renders values as a one-column tabular array. Empty
// lists keep their schema header.
func buildListSection(name, field string, values []string) string {
	header := fmt.Sprintf("%s[%d]{%s}:", name, len(values), field)
	if len(values) == 0 {
		return header + "\n"
	}
	rows := make([]string, len(values))
	for i, v := range values {
		rows[i] = "  " + toonEscapeValue(v)
	}
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}

// toonEscapeValue uses toon-go to escape a string for a comma-delimited
// tabular row.
func toonEscapeValue(s string) string {
	doc := toon.NewObject(
		toon.Field{Key: "a", Value: []toon.Object{
			toon.NewObject(toon.Field{Key: "v", Value: s}),
		}},
	)
	result, err := toon.MarshalString(doc)
	if err != nil {
		return s
	}
	// Result is "a[1]{v}:\n  <value>".
	lines := strings.SplitN(result, "\n", 2)
	if len(lines) == 2 {
		return strings.TrimSpace(lines[1])
	}
	return s
}
