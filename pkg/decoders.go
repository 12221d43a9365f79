package pkg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/speccyboot/speccytools/pkg/common"
)

// Decode errors. Both abort the run: a snapshot is a single atomic
// artifact, partial decoding is meaningless.
var (
	ErrTruncatedInput      = errors.New("truncated input")
	ErrUnknownHardwareType = errors.New("unknown hardware type")
)

// Hardware classification tables, indexed by the extended header's
// hardware-type code. Table choice depends on the format version.
var (
	hardwareTableV2 = []HardwareKind{
		{"48k", 3},
		{"48k + IF1", 3},
		{"SamRam", 5},
		{"128k", 8},
		{"128k + IF1", 8},
	}

	hardwareTableV3 = []HardwareKind{
		{"48k", 3},
		{"48k + IF1", 3},
		{"SamRam", 5},
		{"48k + MGT", 3},
		{"128k", 8},
		{"128k + IF1", 8},
		{"128k + MGT", 8},
	}
)

// ClassifyHardware maps a hardware-type code to a HardwareProfile using the
// table for the given format version. Bit 7 of hwFlags modifies the result:
// a 48k machine becomes 16k, a plain 128k becomes a 128k +2. A code outside
// the table is a decode error, not a silent default.
func ClassifyHardware(version int, hwType byte, hwFlags byte) (HardwareProfile, error) {
	table := hardwareTableV3
	if version == 2 {
		table = hardwareTableV2
	}

	if int(hwType) >= len(table) {
		return HardwareProfile{}, fmt.Errorf("%w: code %d for version %d", ErrUnknownHardwareType, hwType, version)
	}

	kind := table[hwType]
	profile := HardwareProfile{
		Version:     version,
		Description: kind.Description,
		PageCount:   kind.PageCount,
	}

	if hwFlags&0x80 != 0 {
		switch profile.Description {
		case "48k":
			profile.Description = "16k"
		case "128k":
			profile.Description = "128k +2"
		}
	}

	return profile, nil
}

// CompatibilityWarnings returns advisory warnings for consumers that only
// handle the base 48k/16k model. Warnings never abort decoding.
func (p HardwareProfile) CompatibilityWarnings(hwState byte) []string {
	var warnings []string
	switch {
	case p.Description == "128k":
		if hwState&0x08 != 0 {
			warnings = append(warnings, "incompatible snapshot: screen at page 7")
		}
	case p.Description != "48k" && p.Description != "16k":
		warnings = append(warnings,
			fmt.Sprintf("incompatible snapshot: unsupported configuration: %s", p.Description))
	}
	return warnings
}

// Z80FileDecoder implements the Z80Decoder interface
type Z80FileDecoder struct{}

// NewZ80Decoder creates a new Z80 snapshot decoder instance
func NewZ80Decoder() *Z80FileDecoder {
	return &Z80FileDecoder{}
}

// Decode reads and decodes a complete .z80 snapshot: primary header,
// extended header if signalled, hardware classification and all memory
// blocks. The reader must be positioned at offset 0.
func (d *Z80FileDecoder) Decode(reader io.Reader) (*Snapshot, error) {
	snap := &Snapshot{}

	header, err := d.DecodeHeader(reader)
	if err != nil {
		return nil, err
	}
	snap.Header = *header
	common.LogDebug(common.DebugHeaderDecoded, header.PC, header.SP, header.Flags)

	if header.PC == 0 {
		// PC of zero is a sentinel: a version 2 or 3 sub-header follows
		// and carries the real program counter.
		ext, err := d.DecodeExtendedHeader(reader)
		if err != nil {
			return nil, err
		}
		snap.Extended = ext
		snap.Header.PC = ext.PC
		common.LogDebug(common.DebugExtHeaderDecoded, ext.Length, ext.PC, ext.HardwareType, ext.HardwareFlags)

		version := 3
		if ext.Length == ExtHeaderV2Length {
			version = 2
		}

		profile, err := ClassifyHardware(version, ext.HardwareType, ext.HardwareFlags)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", common.ErrFailedToClassifyHardware, err)
		}
		snap.Hardware = profile
	} else {
		snap.Hardware = HardwareProfile{Version: 1, Description: "48k", PageCount: 3}
	}
	common.LogDebug(common.DebugHardwareProfile,
		snap.Hardware.Version, snap.Hardware.Description, snap.Hardware.PageCount)

	if err := d.DecodeMemory(reader, snap); err != nil {
		return nil, err
	}

	return snap, nil
}

// DecodeHeader reads the fixed 30-byte primary header
func (d *Z80FileDecoder) DecodeHeader(reader io.Reader) (*Header, error) {
	header := &Header{}
	if err := binary.Read(reader, binary.LittleEndian, header); err != nil {
		return nil, truncated(common.ErrFailedToReadHeader, err)
	}
	return header, nil
}

// DecodeExtendedHeader reads the version 2/3 sub-header: a 2-byte length,
// 6 bytes of fields and length-6 bytes of ignored padding.
func (d *Z80FileDecoder) DecodeExtendedHeader(reader io.Reader) (*ExtendedHeader, error) {
	ext := &ExtendedHeader{}

	length, err := common.ReadUint16LE(reader)
	if err != nil {
		return nil, truncated(common.ErrFailedToReadExtHeader, err)
	}
	if length < 6 {
		return nil, fmt.Errorf("%s: invalid length %d", common.ErrFailedToReadExtHeader, length)
	}
	ext.Length = length

	if ext.PC, err = common.ReadUint16LE(reader); err != nil {
		return nil, truncated(common.ErrFailedToReadExtHeader, err)
	}
	if ext.HardwareType, err = common.ReadUint8(reader); err != nil {
		return nil, truncated(common.ErrFailedToReadExtHeader, err)
	}
	if ext.HardwareState, err = common.ReadUint8(reader); err != nil {
		return nil, truncated(common.ErrFailedToReadExtHeader, err)
	}
	if ext.Interface1, err = common.ReadUint8(reader); err != nil {
		return nil, truncated(common.ErrFailedToReadExtHeader, err)
	}
	if ext.HardwareFlags, err = common.ReadUint8(reader); err != nil {
		return nil, truncated(common.ErrFailedToReadExtHeader, err)
	}

	// Skip the remainder of the sub-header (sound registers, timing
	// details and other fields this tool does not report).
	if err := common.SkipBytes(reader, int(length)-6); err != nil {
		return nil, truncated(common.ErrFailedToReadExtHeader, err)
	}

	return ext, nil
}

// DecodeMemory reads the memory section of the snapshot into snap.Blocks.
// Version 1 carries a single 48k block, raw or compressed to end of input;
// versions 2/3 carry one record per memory page.
func (d *Z80FileDecoder) DecodeMemory(reader io.Reader, snap *Snapshot) error {
	if snap.Hardware.Version == 1 {
		return d.decode48kBlock(reader, snap)
	}
	return d.DecodePages(reader, snap)
}

// decode48kBlock reads the version-1 memory image: exactly 48k of raw
// bytes, or a compressed stream read to end of input.
func (d *Z80FileDecoder) decode48kBlock(reader io.Reader, snap *Snapshot) error {
	block := MemoryBlock{PageID: -1, Compressed: snap.Header.CompressedBlock()}

	if block.Compressed {
		raw, err := io.ReadAll(reader)
		if err != nil {
			return common.FormatError(common.ErrFailedToReadMemoryBlock, err)
		}
		block.DeclaredLength = len(raw)
		data, err := d.Decompress(raw)
		if err != nil {
			return common.FormatError(common.ErrFailedToDecompressBlock, err)
		}
		block.Data = data
	} else {
		data, err := common.ReadBytes(reader, Block48kSize)
		if err != nil {
			return truncated(common.ErrFailedToReadMemoryBlock, err)
		}
		block.DeclaredLength = Block48kSize
		block.Data = data
	}

	common.LogDebug(common.DebugBlockDecoded, len(block.Data))
	snap.Blocks = append(snap.Blocks, block)
	return nil
}

// DecodePages reads one page record per hardware page: a 2-byte length and
// a 1-byte page id, followed by 16k of raw bytes (length sentinel 0xffff)
// or length bytes of compressed data. Page ids are hardware bank numbers;
// duplicates or gaps are passed through, not corrected.
func (d *Z80FileDecoder) DecodePages(reader io.Reader, snap *Snapshot) error {
	for i := 0; i < snap.Hardware.PageCount; i++ {
		length, err := common.ReadUint16LE(reader)
		if err != nil {
			return truncated(common.ErrFailedToReadPageRecord, err)
		}
		pageID, err := common.ReadUint8(reader)
		if err != nil {
			return truncated(common.ErrFailedToReadPageRecord, err)
		}

		block := MemoryBlock{PageID: int(pageID), DeclaredLength: int(length)}

		if length == UncompressedPage {
			data, err := common.ReadBytes(reader, PageSize)
			if err != nil {
				return truncated(common.ErrFailedToReadMemoryBlock, err)
			}
			block.Data = data
		} else {
			raw, err := common.ReadBytes(reader, int(length))
			if err != nil {
				return truncated(common.ErrFailedToReadMemoryBlock, err)
			}
			block.Compressed = true
			block.Data, err = d.Decompress(raw)
			if err != nil {
				return common.FormatError(common.ErrFailedToDecompressBlock, err)
			}
		}

		common.LogDebug(common.DebugPageDecoded, block.PageID, length, len(block.Data))
		snap.Blocks = append(snap.Blocks, block)
	}
	return nil
}

// Decompress expands a run-length encoded byte stream. A doubled 0xed
// marker is followed by a repeat count and a value byte; any other byte is
// copied through. Decoding runs until the input is exhausted; a run-length
// escape cut off by end of input is a truncation error. Output size is not
// bounded here, callers validate against the expected block size.
func (d *Z80FileDecoder) Decompress(data []byte) ([]byte, error) {
	out := make([]byte, 0, PageSize)

	for i := 0; i < len(data); {
		if data[i] != CompressionMarker || i+1 >= len(data) || data[i+1] != CompressionMarker {
			out = append(out, data[i])
			i++
			continue
		}

		if i+2 >= len(data) {
			return nil, fmt.Errorf("%w: run-length escape at offset %d", ErrTruncatedInput, i)
		}
		count := int(data[i+2])
		if count > 0 {
			if i+3 >= len(data) {
				return nil, fmt.Errorf("%w: run-length escape at offset %d", ErrTruncatedInput, i)
			}
			out = append(out, bytes.Repeat(data[i+3:i+4], count)...)
		}
		i += 4
	}

	return out, nil
}

// truncated wraps read errors, mapping end-of-input conditions to
// ErrTruncatedInput.
func truncated(message string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%s: %w", message, ErrTruncatedInput)
	}
	return fmt.Errorf("%s: %w", message, err)
}
