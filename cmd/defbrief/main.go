package main

import (
	"os"

	"github.com/shanehull/defbrief/internal/cli"
)

// Version information (set by build script)
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cli.SetVersionInfo(Version, Commit)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
