// propstub - annotated property stub generator
//
// Reads alternating property name / documentation lines from stdin
// and writes documented declaration stubs to stdout:
//
//	echo 'isEnabled
//	Boolean flag indicating enabled state' | propstub
//	# Output:
//	# /** Boolean flag indicating enabled state */
//	# isEnabled: boolean
//
// Takes no flags or arguments. Exits non-zero when a property name
// has no documentation line to pair with.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Neumenon/propstub/propstub"
)

func main() {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read input: %v", err)
	}

	table, err := propstub.Parse(string(data))
	if err != nil {
		fatal("%v", err)
	}

	fmt.Println(propstub.Emit(table))
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "propstub: "+format+"\n", args...)
	os.Exit(1)
}
