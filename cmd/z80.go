// Package cmd provides command-line interface for Z80 snapshot processing.
// This file contains commands for inspecting .z80 snapshot files captured
// from ZX Spectrum machines.
package cmd

import (
	"fmt"

	"github.com/speccyboot/speccytools/pkg"
	"github.com/speccyboot/speccytools/pkg/common"
	"github.com/spf13/cobra"
)

// z80Cmd represents the parent command for all Z80 snapshot operations.
// It provides access to the info subcommand for inspecting snapshot files
// captured from ZX Spectrum machines.
var z80Cmd = &cobra.Command{
	Use:   "z80",
	Short: "Process .z80 snapshot files from ZX Spectrum machines",
	Long: `Process .z80 snapshot files from ZX Spectrum machines.

Commands:
  info      Decode a snapshot and print its contents

Examples:
  speccytools z80 info game.z80`,
}

// z80InfoCmd decodes a .z80 snapshot file and prints a report.
// It parses the snapshot header, classifies the hardware the snapshot was
// captured from, decodes the memory section and prints registers, hardware
// details and compatibility warnings. When verbose mode is enabled (-v),
// decoded memory contents are dumped as hex+ASCII.
var z80InfoCmd = &cobra.Command{
	Use:   "info [snapshot_file]",
	Short: "Decode a .z80 snapshot and print its contents",
	Long: `Decode a .z80 snapshot file and print a report of its contents.

This command reads a ZX Spectrum .z80 snapshot (format version 1, 2 or 3)
and prints:
  - Snapshot format version
  - Hardware description (48k, 128k, SamRam, ...)
  - 128k paging state (for 128k-class hardware)
  - Compatibility warnings, if any
  - Processor registers
  - Memory section layout (single 48k block or 16k pages)

When verbose mode is enabled (-v), the decoded contents of each memory
block are dumped 16 bytes per line with a parallel ASCII column.

Example:
  speccytools z80 info game.z80
  speccytools z80 info -v game.z80
  speccytools z80 info --yaml game.yaml game.z80`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		// Enable verbose mode if requested
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return fmt.Errorf("error getting verbose flag: %w", err)
		}
		common.SetVerboseMode(verbose)

		// Check if user wants the decoded metadata exported as YAML
		yamlFile, err := cmd.Flags().GetString("yaml")
		if err != nil {
			return fmt.Errorf("error getting yaml flag: %w", err)
		}

		// Create Z80 processor for handling snapshot inspection
		processor := pkg.NewZ80Processor()
		processor.DumpMemory = verbose
		processor.YAMLOutput = yamlFile

		if err := processor.Info(inputFile); err != nil {
			return fmt.Errorf("failed to process Z80 snapshot: %w", err)
		}

		return nil
	},
}

// init initializes the Z80 command with its subcommands and flags.
func init() {
	// Add the Z80 command to the root command
	rootCmd.AddCommand(z80Cmd)

	// Add the info subcommand to the Z80 command
	z80Cmd.AddCommand(z80InfoCmd)

	// Add flags to the info command
	z80InfoCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output with hex+ASCII memory dump")
	z80InfoCmd.Flags().String("yaml", "", "Export decoded snapshot metadata to a YAML file")
}
