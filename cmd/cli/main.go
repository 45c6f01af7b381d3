// Linestamp - Line Timestamp Annotator
//
// Linestamp reads lines from standard input and writes them to standard
// output with a timestamp prepended, an existing timestamp rewritten, or
// an elapsed-time delta prepended.
package main

import (
	"os"

	"github.com/ccollicutt/linestamp/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
