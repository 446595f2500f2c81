// Command decl runs, previews, converts and inspects widget description
// files.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/decl/cmd/decl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
