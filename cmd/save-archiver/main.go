// Command save-archiver backs up and restores game save folders.
package main

import (
	"os"

	"github.com/raoulx24/save-archiver/internal/ux"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		ux.New(cmd.ErrOrStderr()).Error(err)
		os.Exit(1)
	}
}
