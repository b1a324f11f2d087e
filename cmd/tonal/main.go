// tonal - tonal swatch generator
//
// tonal turns a single primary colour into a ten-step swatch and renders
// it for stylesheets, tailwind themes and structured config files.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
