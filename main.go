/*
SpeccyTools - Utilities for inspecting ZX Spectrum .z80 snapshots and
checking SpeccyBoot build artifacts.

Copyright © 2026 SpeccyBoot contributors
*/
package main

import (
	"fmt"
	"os"

	"github.com/speccyboot/speccytools/cmd"
)

// Version information (injected at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Check for version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("SpeccyTools %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)
		os.Exit(0)
	}

	cmd.Execute()
}
