// Package common provides tests for the binary read helpers
package common

import (
	"bytes"
	"testing"
)

func TestReadUint16LE(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  uint16
	}{
		{"zero", []byte{0x00, 0x00}, 0x0000},
		{"byte order", []byte{0x34, 0x12}, 0x1234},
		{"max", []byte{0xFF, 0xFF}, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadUint16LE(bytes.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadUint16LE() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadUint16LE() = 0x%04x, want 0x%04x", got, tt.want)
			}
		})
	}
}

func TestReadUint16LE_Truncated(t *testing.T) {
	if _, err := ReadUint16LE(bytes.NewReader([]byte{0x34})); err == nil {
		t.Error("ReadUint16LE() should fail on a single byte")
	}
}

func TestReadUint8(t *testing.T) {
	got, err := ReadUint8(bytes.NewReader([]byte{0xAB}))
	if err != nil {
		t.Fatalf("ReadUint8() failed: %v", err)
	}
	if got != 0xAB {
		t.Errorf("ReadUint8() = 0x%02x, want 0xab", got)
	}

	if _, err := ReadUint8(bytes.NewReader(nil)); err == nil {
		t.Error("ReadUint8() should fail on empty input")
	}
}

func TestReadBytes(t *testing.T) {
	input := []byte{0x01, 0x02, 0x03, 0x04}

	got, err := ReadBytes(bytes.NewReader(input), 3)
	if err != nil {
		t.Fatalf("ReadBytes() failed: %v", err)
	}
	if !bytes.Equal(got, input[:3]) {
		t.Errorf("ReadBytes() = % x, want % x", got, input[:3])
	}
}

func TestReadBytes_Truncated(t *testing.T) {
	if _, err := ReadBytes(bytes.NewReader([]byte{0x01}), 4); err == nil {
		t.Error("ReadBytes() should fail when fewer bytes are available")
	}
}

func TestSkipBytes(t *testing.T) {
	reader := bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04})

	if err := SkipBytes(reader, 3); err != nil {
		t.Fatalf("SkipBytes() failed: %v", err)
	}

	rest, err := ReadUint8(reader)
	if err != nil {
		t.Fatalf("ReadUint8() after skip failed: %v", err)
	}
	if rest != 0x04 {
		t.Errorf("byte after skip = 0x%02x, want 0x04", rest)
	}
}

func TestSkipBytes_Truncated(t *testing.T) {
	if err := SkipBytes(bytes.NewReader([]byte{0x01}), 4); err == nil {
		t.Error("SkipBytes() should fail when fewer bytes are available")
	}
}
