// File: cmd/vringcheck/main.go
// Author: momentics <momentics@gmail.com>
//
// vringcheck verifies mirrored ring buffer support on the current host.

package main

import (
	"os"

	"github.com/momentics/vring/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
