// Package pkg provides functionality for checking SpeccyBoot build
// artifacts. This file contains the symbol listing size check.
package pkg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/speccyboot/speccytools/pkg/common"
)

// DefaultSymbolLimits holds the maximal addresses for the end of the code
// and read/write data segments on the SpeccyBoot hardware.
var DefaultSymbolLimits = map[string]uint16{
	"end_of_code": 0x2000,
	"end_of_data": 0x6000,
}

// SymProcessor checks assembler symbol listings against segment size
// budgets. Listing lines carry a 4-digit hex address in columns 3-6 and
// the symbol name from column 8 on; lines starting with ';' are comments.
type SymProcessor struct {
	Limits map[string]uint16
}

// NewSymProcessor creates a symbol processor with the default budgets
func NewSymProcessor() *SymProcessor {
	return &SymProcessor{Limits: DefaultSymbolLimits}
}

// CheckFile runs the size check over a symbol listing file
func (p *SymProcessor) CheckFile(inputFile string, writer io.Writer) error {
	file, err := os.Open(inputFile)
	if err != nil {
		return common.FormatError(common.ErrFailedToOpenSymbolListing, err)
	}
	defer file.Close()

	return p.Check(file, writer)
}

// Check scans listing lines for budgeted symbols. Every budgeted symbol
// found in range is reported with the bytes left; the first symbol past
// its budget fails the check.
func (p *SymProcessor) Check(reader io.Reader, writer io.Writer) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 9 || strings.HasPrefix(line, ";") {
			continue
		}

		symbol := strings.TrimSpace(line[8:])
		limit, budgeted := p.Limits[symbol]
		if !budgeted {
			continue
		}

		value, err := strconv.ParseUint(line[3:7], 16, 64)
		if err != nil {
			return common.FormatError(common.ErrInvalidSymbolAddress,
				fmt.Errorf("line %q: %w", line, err))
		}
		addr, err := common.SafeUint64ToUint16(value)
		if err != nil {
			return common.FormatError(common.ErrInvalidSymbolAddress, err)
		}

		common.LogDebug(common.DebugSymbolChecked, symbol, addr, limit)

		if addr > limit {
			fmt.Fprintf(writer, "symbol %s out of range: 0x%x\n", symbol, addr)
			return fmt.Errorf("%s: %s at 0x%x exceeds 0x%x",
				common.ErrSymbolOutOfRange, symbol, addr, limit)
		}

		fmt.Fprintf(writer, "%s OK, %d bytes left\n",
			strings.TrimPrefix(symbol, "end_of_"), limit-addr)
	}

	if err := scanner.Err(); err != nil {
		return common.FormatError(common.ErrFailedToReadSymbolListing, err)
	}

	common.LogDebug(common.InfoAllSymbolsOK)
	return nil
}
