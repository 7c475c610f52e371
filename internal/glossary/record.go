// Package glossary defines the glossary record model and the normalization
// steps applied to it: classification, deduplication, sorting and merging.
package glossary

// Delimiter separates the source and target fields of a glossary line.
const Delimiter = "\t"

// TargetSeparator joins the targets of records that share a source.
const TargetSeparator = ", "

// Record is a well-formed glossary line: exactly one source and one target.
type Record struct {
	Source string
	Target string
}

// Line renders the record back into its tab-delimited form.
func (r Record) Line() string {
	return r.Source + Delimiter + r.Target
}

// DiscardedRecord holds the fields of a line that did not split into exactly
// two fields. Field order matches the original line.
type DiscardedRecord []string
