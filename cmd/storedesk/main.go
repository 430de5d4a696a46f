// Command storedesk browses a store's order list from the terminal.
package main

import (
	"os"

	"github.com/mesh-intelligence/storedesk/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
