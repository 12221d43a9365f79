// Package pkg provides functionality for inspecting ZX Spectrum .z80
// snapshot files. This file contains the processor tying together the
// snapshot decoder and the report exporters.
package pkg

import (
	"os"

	"github.com/speccyboot/speccytools/pkg/common"
)

// Z80Processor handles .z80 snapshot inspection
type Z80Processor struct {
	// DumpMemory enables the verbose hex+ASCII memory dump
	DumpMemory bool
	// YAMLOutput, when non-empty, is the path of a YAML metadata export
	YAMLOutput string
}

// NewZ80Processor creates a new Z80 processor instance
func NewZ80Processor() *Z80Processor {
	return &Z80Processor{}
}

// Info decodes a snapshot file and prints its report to stdout. The input
// file is held open only for the single decoding pass and closed whether
// decoding succeeds or fails.
func (p *Z80Processor) Info(inputFile string) error {
	file, err := os.Open(inputFile)
	if err != nil {
		return common.FormatError(common.ErrFailedToOpenSnapshot, err)
	}
	defer file.Close()

	decoder := NewZ80Decoder()
	snap, err := decoder.Decode(file)
	if err != nil {
		return err
	}
	common.LogDebug(common.InfoSnapshotDecoded, inputFile)

	exporter := NewZ80Exporter()
	exporter.DumpMemory = p.DumpMemory

	if err := exporter.WriteReport(snap, os.Stdout); err != nil {
		return err
	}

	if p.YAMLOutput != "" {
		out, err := os.Create(p.YAMLOutput)
		if err != nil {
			return common.FormatError(common.ErrFailedToCreateYAMLFile, err)
		}
		defer out.Close()

		if err := exporter.ExportYAML(snap, out); err != nil {
			return err
		}
		common.LogInfo(common.InfoYAMLExported, p.YAMLOutput)
	}

	return nil
}
