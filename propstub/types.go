package propstub

// Tag represents the inferred type of a property.
type Tag uint8

const (
	TagAny Tag = iota
	TagBoolean
	TagNumber
)

// String returns the tag name as it appears in declaration output.
func (t Tag) String() string {
	switch t {
	case TagBoolean:
		return "boolean"
	case TagNumber:
		return "number"
	default:
		return "any"
	}
}

// Entry represents a single property: its name and the documentation
// line that describes it.
type Entry struct {
	Name string
	Doc  string
}

// Table is an ordered collection of property entries. Entries keep
// their first-insertion position; setting an existing name replaces
// its documentation in place.
type Table struct {
	entries []Entry
}

// Set inserts or overwrites the documentation for a property name.
func (t *Table) Set(name, doc string) {
	for i := range t.entries {
		if t.entries[i].Name == name {
			t.entries[i].Doc = doc
			return
		}
	}
	t.entries = append(t.entries, Entry{Name: name, Doc: doc})
}

// Get returns the documentation for a property name.
func (t *Table) Get(name string) (string, bool) {
	for _, e := range t.entries {
		if e.Name == name {
			return e.Doc, true
		}
	}
	return "", false
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the entries in insertion order.
func (t *Table) Entries() []Entry {
	return t.entries
}
