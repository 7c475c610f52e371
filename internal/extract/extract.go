package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/leeovery/gloss/internal/config"
	"github.com/leeovery/gloss/internal/logger"
)

// Report summarizes one extract run.
type Report struct {
	Backup       string
	BackupBytes  int64
	Glossaries   []string
	Translations []string
	Rows         int
	Errors       []string
}

// Files returns every dump file written, glossaries first.
func (r Report) Files() []string {
	out := make([]string, 0, len(r.Glossaries)+len(r.Translations))
	out = append(out, r.Glossaries...)
	return append(out, r.Translations...)
}

// Run backs up the source database and dumps its glossaries and translations.
// Step failures are collected rather than aborting the run; when any occur
// they are appended to the configured error log and listed in the report.
// The returned error is reserved for failures to write the error log itself.
func Run(ctx context.Context, cfg config.ExtractConfig, now time.Time, log *slog.Logger) (Report, error) {
	if log == nil {
		log = logger.Discard()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	var errs Collector
	report := Report{}

	if cfg.BackupDB != "" {
		log.Debug("copying database", "source", cfg.SourceDB, "backup", cfg.BackupDB)
		n, err := CopyDatabase(cfg.SourceDB, cfg.BackupDB)
		if err != nil {
			errs.Add("backup", err)
		} else {
			report.Backup = cfg.BackupDB
			report.BackupBytes = n
			if cfg.BackupLog != "" {
				errs.Add("backup log", AppendBackupLog(cfg.BackupLog, now, n))
			}
		}
	}

	archive, err := OpenArchive(ctx, cfg.SourceDB)
	if err != nil {
		errs.Add("connect", err)
	} else {
		defer archive.Close()
		exportAll(ctx, archive, cfg, &report, &errs, log)
	}

	report.Errors = errs.Errors()
	if errs.Len() > 0 {
		log.Warn("extract finished with errors", "errors", errs.Len(), "log", cfg.ErrorLog)
		if err := errs.Flush(cfg.ErrorLog, now); err != nil {
			return report, err
		}
	}
	return report, nil
}

func exportAll(ctx context.Context, archive *Archive, cfg config.ExtractConfig, report *Report, errs *Collector, log *slog.Logger) {
	if err := os.MkdirAll(cfg.GlossaryDir, 0o755); err != nil {
		errs.Add("export glossary", fmt.Errorf("creating %s: %w", cfg.GlossaryDir, err))
	} else {
		files, rows, err := archive.ExportGlossaries(ctx, cfg.GlossaryDir, cfg.IncludeNotes, errs)
		errs.Add("export glossary", err)
		report.Glossaries = files
		report.Rows += rows
		log.Debug("exported glossaries", "files", len(files), "rows", rows)
	}

	if err := os.MkdirAll(cfg.TranslationDir, 0o755); err != nil {
		errs.Add("export translation", fmt.Errorf("creating %s: %w", cfg.TranslationDir, err))
		return
	}
	files, rows, err := archive.ExportTranslations(ctx, cfg.TranslationDir, errs)
	errs.Add("export translation", err)
	report.Translations = files
	report.Rows += rows
	log.Debug("exported translations", "files", len(files), "rows", rows)
}
