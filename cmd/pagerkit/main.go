// Command pagerkit computes pagination views and runs the terminal pagination widgets.
package main

import (
	"os"

	"github.com/rshade/pagerkit/internal/cli"
	"github.com/rshade/pagerkit/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	return cli.Execute(version.GetVersion())
}
