// The dirtar command archives each immediate subdirectory of a source
// directory into its own uncompressed tar file.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dirtar/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
