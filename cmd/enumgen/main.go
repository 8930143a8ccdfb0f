// Command enumgen generates enum declarations from YAML manifests or typed Go
// constants, prints accessor docblocks and lists constant tables.
package main

import (
	"fmt"
	"os"
)

var exitFunc = os.Exit

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		//nolint:forbidigo // CLI reports failures on stderr.
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
