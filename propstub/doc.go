// Package propstub converts line-paired property descriptions into
// annotated type-declaration stubs.
//
// Input is alternating lines: a property name (a line containing no
// space character) followed by one documentation line. The pipeline
// has two stages:
//   - Parse: build an ordered name → documentation table
//   - Emit: classify each entry and render a documented declaration
//
// # Classification
//
// The type tag is inferred from keyword substrings in the
// documentation text, checked in precedence order:
//
//	boolean / Boolean  ->  boolean
//	integer / Integer  ->  number
//	number  / Number   ->  number
//	(anything else)    ->  any
//
// # Example
//
// Input:
//
//	isEnabled
//	Boolean flag indicating enabled state
//
// Output:
//
//	/** Boolean flag indicating enabled state */
//	isEnabled: boolean
//
// # Parsing Quirks
//
// A line containing a space is skipped outright: it is never consumed
// as a name and never consumed as documentation. A skipped line can
// therefore desynchronize subsequent name/documentation pairing. This
// permissive behavior is intentional and preserved; the only hard
// failure is a name line with no following line to document it.
package propstub
