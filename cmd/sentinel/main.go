// Command sentinel runs the 财界哨兵 tax-risk demo from the terminal.
package main

import (
	"os"

	"github.com/custodia-labs/sentinel-cli/internal/adapters/driving/cli"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
