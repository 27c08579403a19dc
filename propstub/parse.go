package propstub

import (
	"fmt"
	"strings"
)

// UnexpectedEOFError reports a property name line with no following
// documentation line.
type UnexpectedEOFError struct {
	Name string // the orphaned property name
	Line int    // 1-based line number of the name within the trimmed input
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of input: property %q at line %d has no documentation line", e.Name, e.Line)
}

// Parse converts raw input text into an ordered property table.
//
// The whole input is trimmed and split into lines. Each trimmed line
// that contains a space is skipped. Any other line is a property
// name, and the line immediately after it is consumed as that
// property's documentation (trimmed before storing). Duplicate names
// overwrite earlier documentation while keeping their original
// position.
//
// Parse fails with *UnexpectedEOFError when a name line is the last
// line of the input.
func Parse(input string) (*Table, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")

	table := &Table{}
	for i := 0; i < len(lines); i++ {
		name := strings.TrimSpace(lines[i])
		if strings.Contains(name, " ") {
			// Stray or continuation line: dropped, not paired.
			continue
		}
		i++
		if i >= len(lines) {
			return nil, &UnexpectedEOFError{Name: name, Line: i}
		}
		table.Set(name, strings.TrimSpace(lines[i]))
	}
	return table, nil
}
