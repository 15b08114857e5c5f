// Command arbor is the hybrid document search engine CLI.
package main

import (
	"os"

	"github.com/clerktree/arbor/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
