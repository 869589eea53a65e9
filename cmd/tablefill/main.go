// Command tablefill expands the marked row of a DOCX table into one row per record.
package main

import (
	"os"
)

// Build-time variables set via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
