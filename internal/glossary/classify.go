package glossary

import "strings"

// ParseLine splits line on the tab delimiter. ok is true only when the line
// has exactly two fields.
func ParseLine(line string) (rec Record, fields []string, ok bool) {
	fields = strings.Split(line, Delimiter)
	if len(fields) != 2 {
		return Record{}, fields, false
	}
	return Record{Source: fields[0], Target: fields[1]}, fields, true
}

// Classify splits every line on the tab delimiter and routes it to one of two
// tracks. Lines with exactly two fields become Records; all other lines,
// including lines without any tab, become DiscardedRecords. Both tracks keep
// input order and together account for every line.
func Classify(lines []string) (valid []Record, discarded []DiscardedRecord) {
	for _, line := range lines {
		rec, fields, ok := ParseLine(line)
		if ok {
			valid = append(valid, rec)
			continue
		}
		discarded = append(discarded, DiscardedRecord(fields))
	}
	return valid, discarded
}
