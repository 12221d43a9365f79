// Package cmd provides command-line interface for symbol listing checks.
// This file contains commands for checking SpeccyBoot symbol listings
// against the size budgets of the target hardware.
package cmd

import (
	"fmt"
	"os"

	"github.com/speccyboot/speccytools/pkg"
	"github.com/spf13/cobra"
)

// symCmd represents the parent command for all symbol listing operations.
// It provides access to the check subcommand for validating segment sizes
// from assembler symbol listings.
var symCmd = &cobra.Command{
	Use:   "sym",
	Short: "Process symbol listings from SpeccyBoot builds",
	Long: `Process symbol listings produced by SpeccyBoot builds.

Commands:
  check     Check code and data segment sizes against their budgets

Examples:
  speccytools sym check speccyboot.sym`,
}

// symCheckCmd checks segment end symbols against fixed size budgets.
// Each budgeted symbol found in the listing is reported with the number of
// bytes left; a symbol past its budget fails the check.
var symCheckCmd = &cobra.Command{
	Use:   "check [symbol_file]",
	Short: "Check segment sizes in a symbol listing",
	Long: `Check code and data segment sizes in an assembler symbol listing.

This command scans a symbol listing (.sym) for the segment end markers
end_of_code and end_of_data, and compares their addresses against the
size budgets of the SpeccyBoot hardware (0x2000 for code, 0x6000 for
read/write data). Lines starting with ';' are comments and are skipped.

Exit status is 1 when any budgeted symbol is out of range.

Example:
  speccytools sym check speccyboot.sym`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		// Create symbol processor for handling the size check
		processor := pkg.NewSymProcessor()

		if err := processor.CheckFile(inputFile, os.Stdout); err != nil {
			return fmt.Errorf("symbol size check failed: %w", err)
		}

		return nil
	},
}

// init initializes the sym command with its subcommands.
func init() {
	// Add the sym command to the root command
	rootCmd.AddCommand(symCmd)

	// Add the check subcommand to the sym command
	symCmd.AddCommand(symCheckCmd)
}
