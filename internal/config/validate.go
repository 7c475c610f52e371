package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Validate checks settings shared by every command.
func (c *Config) Validate() error {
	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if !slices.Contains(logLevels, level) {
		return fmt.Errorf("log.level must be one of %s (got %q)", strings.Join(logLevels, ", "), c.Log.Level)
	}
	format := strings.ToLower(strings.TrimSpace(c.Log.Format))
	if !slices.Contains(logFormats, format) {
		return fmt.Errorf("log.format must be one of %s (got %q)", strings.Join(logFormats, ", "), c.Log.Format)
	}
	return nil
}

// Validate checks the settings the extract command needs. It is not part of
// Config.Validate because the glossary commands never touch the database.
func (e *ExtractConfig) Validate() error {
	if strings.TrimSpace(e.SourceDB) == "" {
		return fmt.Errorf("extract.source_db is required")
	}
	if e.BackupDB != "" && e.BackupDB == e.SourceDB {
		return fmt.Errorf("extract.backup_db must differ from extract.source_db")
	}
	if e.GlossaryDir == "" || e.TranslationDir == "" {
		return fmt.Errorf("extract.glossary_dir and extract.translation_dir are required")
	}
	if e.Timeout <= 0 {
		return fmt.Errorf("extract.timeout must be > 0 (got %s)", e.Timeout)
	}
	return nil
}
