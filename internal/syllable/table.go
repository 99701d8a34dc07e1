package syllable

// Table is a fixed, ordered list of syllables valid in one position of a
// word. Tables are never empty and never modified after package init.
type Table struct {
	name    string
	entries []string
}

func newTable(name string, entries ...string) Table {
	return Table{name: name, entries: entries}
}

// Name identifies the table in diagnostics.
func (t Table) Name() string { return t.name }

// Len returns the number of syllables in the table.
func (t Table) Len() int { return len(t.entries) }

// At returns the syllable at index i. It panics when i is out of range.
func (t Table) At(i int) string { return t.entries[i] }

// Contains reports whether s is one of the table's syllables.
func (t Table) Contains(s string) bool {
	for _, e := range t.entries {
		if e == s {
			return true
		}
	}
	return false
}

// Entries returns a copy of the table contents.
func (t Table) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}
