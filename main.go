package main

import (
	"os"
	"path/filepath"

	"github.com/hashdot/hashdot/cmd"
	"github.com/hashdot/hashdot/internal/constants"
)

func main() {
	// A symlinked alias owns its whole argv; only the canonical name gets
	// the command tree.
	if filepath.Base(os.Args[0]) != constants.CanonicalName {
		cmd.RunAlias()
		return
	}

	if err := cmd.Execute(); err != nil {
		cmd.ExitOnError(err)
	}
}
