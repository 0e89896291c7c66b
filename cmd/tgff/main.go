// tgff is a console utility checking and dumping TGFF files.
package main

import (
	"os"

	"github.com/ava12/tgff/cmd/tgff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
