// Command deletefiles cleans up files and directories with
// the safe operations, so that a locked or protected entry
// never aborts the whole cleanup.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp(newFS()).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
