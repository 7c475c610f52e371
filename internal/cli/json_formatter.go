package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/leeovery/gloss/internal/engine"
	"github.com/leeovery/gloss/internal/extract"
)

// JSONFormatter renders results as 2-space indented JSON with snake_case
// keys. Lists are always arrays, never null.
type JSONFormatter struct{}

type jsonSummary struct {
	Mode       string   `json:"mode"`
	Input      string   `json:"input"`
	Lines      int      `json:"lines"`
	Valid      int      `json:"valid"`
	Discarded  int      `json:"discarded"`
	Unique     int      `json:"unique"`
	Duplicates int      `json:"duplicates"`
	Entries    int      `json:"entries"`
	Outputs    []string `json:"outputs"`
}

type jsonExtract struct {
	Backup       string   `json:"backup,omitempty"`
	BackupBytes  int64    `json:"backup_bytes"`
	Glossaries   []string `json:"glossaries"`
	Translations []string `json:"translations"`
	Rows         int      `json:"rows"`
	Errors       []string `json:"errors"`
}

type jsonMessage struct {
	Message string `json:"message"`
}

// FormatSummary renders a run summary.
func (f *JSONFormatter) FormatSummary(w io.Writer, s engine.Summary) error {
	return writeJSON(w, jsonSummary{
		Mode:       string(s.Mode),
		Input:      s.Input,
		Lines:      s.Lines,
		Valid:      s.Valid,
		Discarded:  s.Discarded,
		Unique:     s.Unique,
		Duplicates: s.Duplicates,
		Entries:    s.Entries,
		Outputs:    nonNil(s.Outputs),
	})
}

// FormatExtract renders an extract report.
func (f *JSONFormatter) FormatExtract(w io.Writer, r extract.Report) error {
	return writeJSON(w, jsonExtract{
		Backup:       r.Backup,
		BackupBytes:  r.BackupBytes,
		Glossaries:   nonNil(r.Glossaries),
		Translations: nonNil(r.Translations),
		Rows:         r.Rows,
		Errors:       nonNil(r.Errors),
	})
}

// FormatMessage renders {"message": msg}.
func (f *JSONFormatter) FormatMessage(w io.Writer, msg string) error {
	return writeJSON(w, jsonMessage{Message: msg})
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
