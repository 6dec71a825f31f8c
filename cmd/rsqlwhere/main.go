// Command rsqlwhere translates RSQL filter queries into nested where filters.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/rsqlwhere/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
