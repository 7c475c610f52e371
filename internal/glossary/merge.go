package glossary

// Entry is one row of a merged glossary.
type Entry struct {
	Source string
	Target string
}

// Combined maps source text to a merged target string. Iteration order is the
// order in which each source was first inserted, never Go map order.
type Combined struct {
	index map[string]int
	rows  []Entry
}

// NewCombined creates an empty Combined mapping.
func NewCombined() *Combined {
	return &Combined{index: make(map[string]int)}
}

// Add inserts source with target, or appends target to the existing value
// with TargetSeparator when source is already present.
func (c *Combined) Add(source, target string) {
	if i, ok := c.index[source]; ok {
		c.rows[i].Target += TargetSeparator + target
		return
	}
	c.index[source] = len(c.rows)
	c.rows = append(c.rows, Entry{Source: source, Target: target})
}

// Get returns the merged target for source.
func (c *Combined) Get(source string) (string, bool) {
	i, ok := c.index[source]
	if !ok {
		return "", false
	}
	return c.rows[i].Target, true
}

// Len returns the number of distinct sources.
func (c *Combined) Len() int {
	return len(c.rows)
}

// Keys returns the sources in insertion order.
func (c *Combined) Keys() []string {
	keys := make([]string, len(c.rows))
	for i, e := range c.rows {
		keys[i] = e.Source
	}
	return keys
}

// Entries returns a copy of the merged rows in insertion order.
func (c *Combined) Entries() []Entry {
	out := make([]Entry, len(c.rows))
	copy(out, c.rows)
	return out
}

// Merge folds records into a Combined mapping in a single pass. Lookup does
// not rely on equal sources being adjacent; when records come from
// SortBySource the resulting order also matches sort order.
func Merge(records []Record) *Combined {
	c := NewCombined()
	for _, r := range records {
		c.Add(r.Source, r.Target)
	}
	return c
}
