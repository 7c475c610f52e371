// Package extract backs up the SQLite glossary archive and dumps its
// glossaries and translations as tab-delimited text files.
package extract

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

// Archive wraps a read-only connection to the glossary archive database.
type Archive struct {
	db *sql.DB
}

// OpenArchive opens the database at path read-only and verifies the
// connection. A missing file is an error rather than a new empty database.
func OpenArchive(ctx context.Context, path string) (*Archive, error) {
	dsn := "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=ro"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to archive database: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the underlying database connection.
func (a *Archive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// ExportGlossaries writes one file per glossary into dir, named after the
// glossary title. Rows are source and target, plus notes when includeNotes
// is set.
func (a *Archive) ExportGlossaries(ctx context.Context, dir string, includeNotes bool, errs *Collector) (files []string, rows int, err error) {
	res, err := dumpTable(ctx, a.db, glossaryTable(includeNotes), dir, errs)
	return res.files, res.rows, err
}

// ExportTranslations writes one file per translation job into dir, named
// after the job number.
func (a *Archive) ExportTranslations(ctx context.Context, dir string, errs *Collector) (files []string, rows int, err error) {
	res, err := dumpTable(ctx, a.db, translationTable(), dir, errs)
	return res.files, res.rows, err
}
