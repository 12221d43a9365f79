package pkg

import (
	"fmt"
	"io"

	"github.com/speccyboot/speccytools/pkg/common"
	"gopkg.in/yaml.v3"
)

// registerValue pairs a register name with its value for ordered rendering
type registerValue struct {
	name  string
	value uint16
}

// Z80ReportExporter implements the Z80Exporter interface. It is a pure
// formatting stage over an already decoded snapshot.
type Z80ReportExporter struct {
	// DumpMemory enables the hex+ASCII dump of decoded memory blocks
	DumpMemory bool
}

// NewZ80Exporter creates a new Z80 report exporter instance
func NewZ80Exporter() *Z80ReportExporter {
	return &Z80ReportExporter{}
}

// WriteReport renders the snapshot report: format version, hardware
// description, 128k paging state, compatibility warnings, registers and
// the memory section layout. With DumpMemory set, each memory block is
// followed by a hex+ASCII dump of its decoded contents.
func (e *Z80ReportExporter) WriteReport(snap *Snapshot, writer io.Writer) error {
	fmt.Fprintf(writer, "snapshot format version %d\n", snap.Hardware.Version)
	fmt.Fprintf(writer, " hardware: %s\n", snap.Hardware.Description)

	if state := snap.PagingState(); state != nil {
		lock := "unlocked"
		if state.Locked {
			lock = "locked"
		}
		fmt.Fprintf(writer, " 128k paging state: 0x%02x (page %d at 0xc000, display page %d, ROM%d, %s)\n",
			state.Raw, state.Page, state.DisplayPage, state.ROM, lock)
	}

	for _, warning := range snap.Warnings() {
		fmt.Fprintln(writer, warning)
	}

	e.writeRegisters(snap, writer)

	return e.writeMemorySection(snap, writer)
}

// writeRegisters renders the register block: byte registers first, then
// word registers, fixed-width hex.
func (e *Z80ReportExporter) writeRegisters(snap *Snapshot, writer io.Writer) {
	h := &snap.Header

	byteRegs := []registerValue{
		{"a", uint16(h.A)}, {"f", uint16(h.F)},
		{"i", uint16(h.I)}, {"r", uint16(h.R)},
		{"a'", uint16(h.AAlt)}, {"f'", uint16(h.FAlt)},
	}
	wordRegs := []registerValue{
		{"pc", h.PC}, {"sp", h.SP},
		{"bc", h.BC}, {"de", h.DE}, {"hl", h.HL},
		{"ix", h.IX}, {"iy", h.IY},
		{"bc'", h.BCAlt}, {"de'", h.DEAlt}, {"hl'", h.HLAlt},
	}

	fmt.Fprintln(writer, "registers:")
	for _, reg := range byteRegs {
		fmt.Fprintf(writer, " %-2s  = 0x%02x\n", reg.name, reg.value)
	}
	for _, reg := range wordRegs {
		fmt.Fprintf(writer, " %-3s = 0x%04x\n", reg.name, reg.value)
	}
}

// writeMemorySection renders the memory section description and, in dump
// mode, the decoded contents of each block.
func (e *Z80ReportExporter) writeMemorySection(snap *Snapshot, writer io.Writer) error {
	fmt.Fprintln(writer, "memory snapshot format:")

	if snap.Hardware.Version == 1 {
		block := snap.Blocks[0]
		if block.Compressed {
			fmt.Fprintln(writer, " single 48k compressed block")
		} else {
			fmt.Fprintln(writer, " single 48k uncompressed block")
		}
		return e.dumpBlock(block, writer)
	}

	fmt.Fprintf(writer, " %d x 16k pages:\n", snap.Hardware.PageCount)
	for _, block := range snap.Blocks {
		if block.Compressed {
			fmt.Fprintf(writer, "  page %d, compressed (%d bytes)\n", block.PageID, block.DeclaredLength)
		} else {
			fmt.Fprintf(writer, "  page %d, uncompressed\n", block.PageID)
		}
		if err := e.dumpBlock(block, writer); err != nil {
			return err
		}
	}
	return nil
}

// dumpBlock emits the hex+ASCII dump of one decoded block when enabled.
// A fresh dumper per block restarts the offset column at zero.
func (e *Z80ReportExporter) dumpBlock(block MemoryBlock, writer io.Writer) error {
	if !e.DumpMemory {
		return nil
	}
	dumper := common.NewHexDumper(writer)
	if _, err := dumper.Write(block.Data); err != nil {
		return err
	}
	return dumper.Flush()
}

// RegistersYAML holds the register values for YAML export, as fixed-width
// hex strings.
type RegistersYAML struct {
	A     string `yaml:"a"`
	F     string `yaml:"f"`
	I     string `yaml:"i"`
	R     string `yaml:"r"`
	AAlt  string `yaml:"a_alt"`
	FAlt  string `yaml:"f_alt"`
	PC    string `yaml:"pc"`
	SP    string `yaml:"sp"`
	BC    string `yaml:"bc"`
	DE    string `yaml:"de"`
	HL    string `yaml:"hl"`
	IX    string `yaml:"ix"`
	IY    string `yaml:"iy"`
	BCAlt string `yaml:"bc_alt"`
	DEAlt string `yaml:"de_alt"`
	HLAlt string `yaml:"hl_alt"`
}

// PagingStateYAML holds the decoded 128k paging state for YAML export
type PagingStateYAML struct {
	Page        int  `yaml:"page_at_c000"`
	DisplayPage int  `yaml:"display_page"`
	ROM         int  `yaml:"rom"`
	Locked      bool `yaml:"locked"`
}

// BlockYAML summarizes one decoded memory block for YAML export
type BlockYAML struct {
	Page           int  `yaml:"page"`
	Compressed     bool `yaml:"compressed"`
	CompressedSize int  `yaml:"compressed_size,omitempty"`
	DecodedSize    int  `yaml:"decoded_size"`
}

// SnapshotYAML represents the complete snapshot metadata for YAML export
type SnapshotYAML struct {
	Version           int              `yaml:"version"`
	Hardware          string           `yaml:"hardware"`
	PagingState       *PagingStateYAML `yaml:"paging_state,omitempty"`
	Warnings          []string         `yaml:"warnings,omitempty"`
	BorderColour      int              `yaml:"border_colour"`
	InterruptsEnabled bool             `yaml:"interrupts_enabled"`
	InterruptMode     int              `yaml:"interrupt_mode"`
	Registers         RegistersYAML    `yaml:"registers"`
	Blocks            []BlockYAML      `yaml:"memory_blocks"`
}

// ExportYAML writes the decoded snapshot metadata as a YAML document.
// Memory contents are summarized by size only, never embedded.
func (e *Z80ReportExporter) ExportYAML(snap *Snapshot, writer io.Writer) error {
	h := &snap.Header

	doc := SnapshotYAML{
		Version:           snap.Hardware.Version,
		Hardware:          snap.Hardware.Description,
		Warnings:          snap.Warnings(),
		BorderColour:      h.BorderColour(),
		InterruptsEnabled: h.IFF1 != 0,
		InterruptMode:     int(h.InterruptMode & 0x03),
		Registers: RegistersYAML{
			A:     fmt.Sprintf("0x%02x", h.A),
			F:     fmt.Sprintf("0x%02x", h.F),
			I:     fmt.Sprintf("0x%02x", h.I),
			R:     fmt.Sprintf("0x%02x", h.R),
			AAlt:  fmt.Sprintf("0x%02x", h.AAlt),
			FAlt:  fmt.Sprintf("0x%02x", h.FAlt),
			PC:    fmt.Sprintf("0x%04x", h.PC),
			SP:    fmt.Sprintf("0x%04x", h.SP),
			BC:    fmt.Sprintf("0x%04x", h.BC),
			DE:    fmt.Sprintf("0x%04x", h.DE),
			HL:    fmt.Sprintf("0x%04x", h.HL),
			IX:    fmt.Sprintf("0x%04x", h.IX),
			IY:    fmt.Sprintf("0x%04x", h.IY),
			BCAlt: fmt.Sprintf("0x%04x", h.BCAlt),
			DEAlt: fmt.Sprintf("0x%04x", h.DEAlt),
			HLAlt: fmt.Sprintf("0x%04x", h.HLAlt),
		},
	}

	if state := snap.PagingState(); state != nil {
		doc.PagingState = &PagingStateYAML{
			Page:        state.Page,
			DisplayPage: state.DisplayPage,
			ROM:         state.ROM,
			Locked:      state.Locked,
		}
	}

	for _, block := range snap.Blocks {
		entry := BlockYAML{
			Page:        block.PageID,
			Compressed:  block.Compressed,
			DecodedSize: len(block.Data),
		}
		if block.Compressed {
			entry.CompressedSize = block.DeclaredLength
		}
		doc.Blocks = append(doc.Blocks, entry)
	}

	encoder := yaml.NewEncoder(writer)
	defer encoder.Close()
	if err := encoder.Encode(&doc); err != nil {
		return common.FormatError(common.ErrFailedToEncodeYAML, err)
	}
	return nil
}
