// Package cmd provides command-line interface functionality for SpeccyTools.
// SpeccyTools is a collection of utilities for inspecting ZX Spectrum .z80
// snapshot files and checking SpeccyBoot build artifacts.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// It provides the main entry point for the SpeccyTools application.
var rootCmd = &cobra.Command{
	Use:   "speccytools",
	Short: "Tools for ZX Spectrum .z80 snapshots and SpeccyBoot builds",
	Long: `SpeccyTools - Utilities for inspecting ZX Spectrum .z80 snapshot
files and checking SpeccyBoot build artifacts.

Currently supports:
  - Z80 snapshot files (decode header, hardware profile and memory pages)
  - Symbol listings (check code/data segments against size budgets)

Examples:
  speccytools z80 info game.z80
  speccytools z80 info -v game.z80
  speccytools z80 info --yaml game.yaml game.z80
  speccytools sym check speccyboot.sym

Use 'speccytools [command] --help' for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main() and serves as the entry point for command execution.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
