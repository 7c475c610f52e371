package extract

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/leeovery/gloss/internal/glossary"
	"github.com/leeovery/gloss/internal/storage"
)

const untitled = "Untitled"

// fieldReplacer flattens embedded line breaks so each database row stays on
// one output line.
var fieldReplacer = strings.NewReplacer("\r\n", "/", "\n", "/", "\r", "/")

// table describes one grouped dump: a names query mapping group IDs to file
// names and a rows query returning the group ID followed by the fields.
type table struct {
	kind       string
	namesQuery string
	rowsQuery  string
}

func glossaryTable(includeNotes bool) table {
	cols := "source, target"
	if includeNotes {
		cols += ", notes"
	}
	return table{
		kind:       "glossary",
		namesQuery: "SELECT id, title FROM archive_glossary ORDER BY id",
		rowsQuery:  "SELECT glossary_id, " + cols + " FROM archive_entry ORDER BY glossary_id, id",
	}
}

func translationTable() table {
	return table{
		kind:       "translation",
		namesQuery: "SELECT id, job_number FROM archive_translation ORDER BY id",
		rowsQuery:  "SELECT translation_id, source, target FROM archive_segment ORDER BY translation_id, id",
	}
}

// group is the rows of one glossary or translation.
type group struct {
	id   sql.NullInt64
	rows [][]string
}

// dumpResult reports the files one dump wrote.
type dumpResult struct {
	files []string
	rows  int
}

// dumpTable writes one tab-delimited file per group into dir. A query failure
// aborts the dump and is returned; a failure writing one file is recorded in
// errs and the remaining groups are still written.
func dumpTable(ctx context.Context, db *sql.DB, t table, dir string, errs *Collector) (dumpResult, error) {
	names, err := queryNames(ctx, db, t.namesQuery)
	if err != nil {
		return dumpResult{}, fmt.Errorf("querying %s names: %w", t.kind, err)
	}

	groups, err := queryGroups(ctx, db, t.rowsQuery)
	if err != nil {
		return dumpResult{}, fmt.Errorf("querying %s rows: %w", t.kind, err)
	}

	var res dumpResult
	used := make(map[string]bool)
	for _, g := range groups {
		name := fileName(names, g.id, used)
		path := filepath.Join(dir, name+".txt")
		if err := storage.WriteFiles(storage.File{Path: path, Data: encodeRows(g.rows)}); err != nil {
			errs.Add("export "+t.kind, err)
			continue
		}
		res.files = append(res.files, path)
		res.rows += len(g.rows)
	}
	return res, nil
}

func queryNames(ctx context.Context, db *sql.DB, query string) (map[int64]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name sql.NullString
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name.String
	}
	return names, rows.Err()
}

// queryGroups reads every row and groups consecutive rows sharing the first
// column. The query must order by that column.
func queryGroups(ctx context.Context, db *sql.DB, query string) ([]group, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var groups []group
	for rows.Next() {
		var id sql.NullInt64
		fields := make([]sql.NullString, len(cols)-1)
		dest := make([]any, len(cols))
		dest[0] = &id
		for i := range fields {
			dest[i+1] = &fields[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = fieldReplacer.Replace(f.String)
		}

		if n := len(groups); n == 0 || groups[n-1].id != id {
			groups = append(groups, group{id: id})
		}
		last := &groups[len(groups)-1]
		last.rows = append(last.rows, row)
	}
	return groups, rows.Err()
}

// fileName picks the output file name for a group: its title, or Untitled
// when missing. A name already used in this dump, compared case-insensitively,
// gets the group ID appended and then a counter until it is unique.
func fileName(names map[int64]string, id sql.NullInt64, used map[string]bool) string {
	name := ""
	if id.Valid {
		name = sanitizeName(names[id.Int64])
	}
	if name == "" {
		name = untitled
	}

	base := name
	if used[strings.ToLower(name)] && id.Valid {
		base = fmt.Sprintf("%s-%d", name, id.Int64)
		name = base
	}
	for n := 2; used[strings.ToLower(name)]; n++ {
		name = fmt.Sprintf("%s-%d", base, n)
	}
	used[strings.ToLower(name)] = true
	return name
}

// sanitizeName makes a title safe to use as a single path element.
func sanitizeName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("/", "-", "\\", "-", "\x00", "").Replace(s)
	if s == "." || s == ".." {
		return ""
	}
	return s
}

// encodeRows renders rows as tab-joined lines.
func encodeRows(rows [][]string) []byte {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, glossary.Delimiter))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
