// Package main provides the ptdb command, which checks and browses FDB row
// stores through the generated CDClient bindings.
package main

import (
	"os"

	"github.com/LUDevNet/paradox-typed-db/internal/cli"

	// Register the sources selectable with source.type.
	_ "github.com/LUDevNet/paradox-typed-db/internal/source/duckdb"
	_ "github.com/LUDevNet/paradox-typed-db/internal/source/postgres"
	_ "github.com/LUDevNet/paradox-typed-db/internal/source/sqlite"
)

// Set with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = ""
	commit  = ""
)

func main() {
	if version != "" {
		cli.Version = version
	}
	if commit != "" {
		cli.GitCommit = commit
	}
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
