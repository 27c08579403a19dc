package propstub

import "strings"

// Classify infers a type tag from keyword substrings in a
// documentation line. Checks run in precedence order: a boolean
// keyword always wins, and integer keywords are checked before
// number keywords (both yield TagNumber). Everything else is TagAny.
func Classify(doc string) Tag {
	switch {
	case strings.Contains(doc, "boolean") || strings.Contains(doc, "Boolean"):
		return TagBoolean
	case strings.Contains(doc, "integer") || strings.Contains(doc, "Integer"):
		return TagNumber
	case strings.Contains(doc, "number") || strings.Contains(doc, "Number"):
		return TagNumber
	default:
		return TagAny
	}
}
