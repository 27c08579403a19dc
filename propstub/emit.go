package propstub

import "strings"

// Emit renders a property table as annotated declaration stubs. Each
// entry becomes a doc-comment line followed by a declaration line:
//
//	/** Boolean flag indicating enabled state */
//	isEnabled: boolean
//
// Blocks are joined by a blank line, in table order. The returned
// string has no trailing newline; Emit never fails.
func Emit(t *Table) string {
	e := &emitter{}
	for i, entry := range t.Entries() {
		if i > 0 {
			e.sb.WriteString("\n\n")
		}
		e.emitEntry(entry)
	}
	return e.sb.String()
}

type emitter struct {
	sb strings.Builder
}

func (e *emitter) emitEntry(entry Entry) {
	e.sb.WriteString("/** ")
	e.sb.WriteString(entry.Doc)
	e.sb.WriteString(" */\n")
	e.sb.WriteString(entry.Name)
	e.sb.WriteString(": ")
	e.sb.WriteString(Classify(entry.Doc).String())
}
