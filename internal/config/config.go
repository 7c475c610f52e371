// Package config loads gloss settings from an optional YAML file and
// environment variables.
package config

import "time"

// Config is the root configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Extract ExtractConfig `yaml:"extract"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"GLOSS_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"GLOSS_LOG_FORMAT" env-default:"text"`
}

// ExtractConfig holds the glossary database backup and dump settings.
type ExtractConfig struct {
	SourceDB       string        `yaml:"source_db"       env:"GLOSS_SOURCE_DB"`
	BackupDB       string        `yaml:"backup_db"       env:"GLOSS_BACKUP_DB"`
	BackupLog      string        `yaml:"backup_log"      env:"GLOSS_BACKUP_LOG"`
	GlossaryDir    string        `yaml:"glossary_dir"    env:"GLOSS_GLOSSARY_DIR"    env-default:"extracted_glossary_files"`
	TranslationDir string        `yaml:"translation_dir" env:"GLOSS_TRANSLATION_DIR" env-default:"extracted_translation_files"`
	ErrorLog       string        `yaml:"error_log"       env:"GLOSS_ERROR_LOG"       env-default:"backup-error.txt"`
	IncludeNotes   bool          `yaml:"include_notes"   env:"GLOSS_INCLUDE_NOTES"`
	Timeout        time.Duration `yaml:"timeout"         env:"GLOSS_EXTRACT_TIMEOUT" env-default:"5m"`
}
