// Package main is the entry point for the gloss CLI.
package main

import (
	"os"

	"github.com/leeovery/gloss/internal/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)

	if wd, err := os.Getwd(); err == nil {
		app.Dir = wd
	}

	os.Exit(app.Run(os.Args))
}
