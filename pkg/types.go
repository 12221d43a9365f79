package pkg

import "io"

// Sizes and sentinels of the .z80 snapshot format
const (
	HeaderSize        = 30     // fixed primary header size
	PageSize          = 0x4000 // size of one decoded 16k memory page
	Block48kSize      = 0xC000 // size of the version-1 48k memory block
	UncompressedPage  = 0xFFFF // page length sentinel: raw 16k follows
	CompressionMarker = 0xED   // doubled marker starts a run-length escape
	ExtHeaderV2Length = 23     // extended header length of format version 2
)

// Header represents the fixed 30-byte primary header of a .z80 snapshot.
// Fields are declared in on-disk order; all multi-byte fields are
// little-endian. When PC is zero an extended header follows and carries
// the real program counter.
type Header struct {
	A, F           byte
	BC, HL, PC, SP uint16
	I, R           byte
	Flags          byte // bit 1-3: border colour, bit 5: block compressed
	DE             uint16
	BCAlt, DEAlt   uint16
	HLAlt          uint16
	AAlt, FAlt     byte
	IX, IY         uint16
	IFF1, IFF2     byte
	InterruptMode  byte
}

// CompressedBlock reports whether the version-1 memory block is run-length
// compressed. A flags byte of 0xff (uninitialized in very old snapshots)
// means uncompressed.
func (h *Header) CompressedBlock() bool {
	return h.Flags != 0xFF && h.Flags&0x20 != 0
}

// BorderColour returns the border colour from the flags byte (bits 1-3)
func (h *Header) BorderColour() int {
	return int(h.Flags>>1) & 0x07
}

// ExtendedHeader represents the version 2/3 sub-header that follows the
// primary header when its PC field is zero. Length counts the bytes after
// the length field itself; everything past the first 6 is ignored.
type ExtendedHeader struct {
	Length        uint16
	PC            uint16
	HardwareType  byte
	HardwareState byte // 128k paging state bitfield
	Interface1    byte
	HardwareFlags byte // bit 7: 16k/+2 modifier
}

// HardwareKind is one entry of a hardware classification table: a machine
// description paired with the number of memory pages its snapshots carry.
type HardwareKind struct {
	Description string
	PageCount   int
}

// HardwareProfile describes the machine a snapshot was captured from
type HardwareProfile struct {
	Version     int // snapshot format version (1, 2 or 3)
	Description string
	PageCount   int
}

// PagingState describes the 128k bank-switching state, decoded from the
// extended header's hardware-state byte.
type PagingState struct {
	Raw         byte
	Page        int  // RAM page currently at 0xc000 (bits 0-2)
	DisplayPage int  // 7 when bit 3 is set, else 5
	ROM         int  // 1 when bit 4 is set, else 0
	Locked      bool // bit 5: paging locked
}

// NewPagingState decodes a hardware-state byte into a PagingState
func NewPagingState(hwState byte) PagingState {
	state := PagingState{
		Raw:         hwState,
		Page:        int(hwState & 0x07),
		DisplayPage: 5,
		Locked:      hwState&0x20 != 0,
	}
	if hwState&0x08 != 0 {
		state.DisplayPage = 7
	}
	if hwState&0x10 != 0 {
		state.ROM = 1
	}
	return state
}

// MemoryBlock is one decoded memory section: the single 48k block of a
// version-1 snapshot, or one 16k page of a version 2/3 snapshot.
type MemoryBlock struct {
	PageID         int // hardware bank number, -1 for the version-1 block
	Compressed     bool
	DeclaredLength int // compressed byte count as declared on disk
	Data           []byte
}

// Snapshot represents a fully decoded .z80 snapshot
type Snapshot struct {
	Header   Header
	Extended *ExtendedHeader // nil for version 1
	Hardware HardwareProfile
	Blocks   []MemoryBlock
}

// PagingState returns the decoded 128k paging state, or nil when the
// hardware profile has no switchable pages.
func (s *Snapshot) PagingState() *PagingState {
	if s.Extended == nil || s.Hardware.PageCount != 8 {
		return nil
	}
	state := NewPagingState(s.Extended.HardwareState)
	return &state
}

// Warnings returns the advisory compatibility warnings for this snapshot
func (s *Snapshot) Warnings() []string {
	var hwState byte
	if s.Extended != nil {
		hwState = s.Extended.HardwareState
	}
	return s.Hardware.CompatibilityWarnings(hwState)
}

// Z80Decoder interface defines methods for decoding .z80 snapshot files
type Z80Decoder interface {
	Decode(reader io.Reader) (*Snapshot, error)
	DecodeHeader(reader io.Reader) (*Header, error)
	DecodeExtendedHeader(reader io.Reader) (*ExtendedHeader, error)
	DecodeMemory(reader io.Reader, snap *Snapshot) error
	Decompress(data []byte) ([]byte, error)
}

// Z80Exporter interface defines methods for rendering decoded snapshots
type Z80Exporter interface {
	WriteReport(snap *Snapshot, writer io.Writer) error
	ExportYAML(snap *Snapshot, writer io.Writer) error
}
