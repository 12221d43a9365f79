package common

import (
	"fmt"
	"io"
)

// BytesPerDumpLine is the number of bytes shown on each hex dump line
const BytesPerDumpLine = 16

// HexDumper renders a byte stream as a hex+ASCII dump, 16 bytes per line.
// Each line shows the offset of its first byte (4 hex digits), the bytes as
// 2-digit hex values and a parallel ASCII column where printable bytes
// (32..126) render literally and everything else renders as '.'.
//
// A dumper carries its own offset and line buffers, so one instance is
// created per dump and discarded afterwards. Call Flush after the last
// Write to emit a partial final line.
type HexDumper struct {
	writer     io.Writer
	offset     int
	lineOffset int
	hexLine    []byte
	asciiLine  []byte
}

// NewHexDumper creates a hex dumper writing its output lines to writer
func NewHexDumper(writer io.Writer) *HexDumper {
	return &HexDumper{
		writer:    writer,
		hexLine:   make([]byte, 0, BytesPerDumpLine*3),
		asciiLine: make([]byte, 0, BytesPerDumpLine),
	}
}

// Write feeds bytes into the dumper, emitting a line for every 16 bytes.
// It implements io.Writer and never returns a short count unless the
// underlying writer fails.
func (d *HexDumper) Write(data []byte) (int, error) {
	for i, b := range data {
		d.hexLine = append(d.hexLine, []byte(fmt.Sprintf(" %02x", b))...)
		if b >= 32 && b <= 126 {
			d.asciiLine = append(d.asciiLine, b)
		} else {
			d.asciiLine = append(d.asciiLine, '.')
		}
		d.offset++
		if d.offset%BytesPerDumpLine == 0 {
			if err := d.flushLine(); err != nil {
				return i, err
			}
		}
	}
	return len(data), nil
}

// Flush emits a final partial line, if any bytes are buffered
func (d *HexDumper) Flush() error {
	if len(d.hexLine) == 0 {
		return nil
	}
	return d.flushLine()
}

// flushLine writes the buffered line and resets the buffers. The hex column
// is padded so the ASCII column stays aligned on partial lines.
func (d *HexDumper) flushLine() error {
	_, err := fmt.Fprintf(d.writer, "   %04x:%-*s   %s\n",
		d.lineOffset, BytesPerDumpLine*3, d.hexLine, d.asciiLine)
	if err != nil {
		return err
	}
	d.hexLine = d.hexLine[:0]
	d.asciiLine = d.asciiLine[:0]
	d.lineOffset = d.offset
	return nil
}
