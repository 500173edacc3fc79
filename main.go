// Package main is the entry point for the simratemon application.
package main

import (
	"os"

	"github.com/fsimtools/simratemon/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
