package storage

import (
	"bytes"

	"github.com/leeovery/gloss/internal/glossary"
)

// EncodeReorganized renders merged entries as "source\ttarget\n" lines in the
// mapping's iteration order.
func EncodeReorganized(c *glossary.Combined) []byte {
	var buf bytes.Buffer
	for _, e := range c.Entries() {
		buf.WriteString(glossary.Record{Source: e.Source, Target: e.Target}.Line())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// EncodeDiscarded renders each discarded record on its own line with every
// field followed by a tab, so single-field records end in "\t\n".
func EncodeDiscarded(records []glossary.DiscardedRecord) []byte {
	var buf bytes.Buffer
	for _, rec := range records {
		for _, field := range rec {
			buf.WriteString(field)
			buf.WriteString(glossary.Delimiter)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// EncodeLines renders raw lines one per line.
func EncodeLines(lines []string) []byte {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
