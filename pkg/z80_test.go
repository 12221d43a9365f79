// Package pkg provides tests for the Z80 snapshot processor
package pkg

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// writeSnapshotFile writes a minimal version-1 snapshot to a temp file
func writeSnapshotFile(t *testing.T, dir string) string {
	t.Helper()

	var buffer bytes.Buffer
	header := &Header{PC: 0x8000, SP: 0xFFFE, Flags: 0x00}
	if err := binary.Write(&buffer, binary.LittleEndian, header); err != nil {
		t.Fatalf("Failed to write header: %v", err)
	}
	buffer.Write(make([]byte, Block48kSize))

	path := filepath.Join(dir, "test.z80")
	if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write snapshot file: %v", err)
	}
	return path
}

func TestNewZ80Processor(t *testing.T) {
	processor := NewZ80Processor()
	if processor == nil {
		t.Error("NewZ80Processor() returned nil")
	}
}

func TestZ80Processor_Info(t *testing.T) {
	processor := NewZ80Processor()

	path := writeSnapshotFile(t, t.TempDir())
	if err := processor.Info(path); err != nil {
		t.Fatalf("Info() failed: %v", err)
	}
}

func TestZ80Processor_Info_MissingFile(t *testing.T) {
	processor := NewZ80Processor()

	err := processor.Info(filepath.Join(t.TempDir(), "missing.z80"))
	if err == nil {
		t.Error("Info() should fail for a missing file")
	}
}

func TestZ80Processor_Info_YAMLExport(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "test.yaml")

	processor := NewZ80Processor()
	processor.YAMLOutput = yamlPath

	if err := processor.Info(writeSnapshotFile(t, dir)); err != nil {
		t.Fatalf("Info() failed: %v", err)
	}

	data, err := os.ReadFile(yamlPath)
	if err != nil {
		t.Fatalf("YAML export not written: %v", err)
	}

	var doc SnapshotYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("YAML export does not parse: %v", err)
	}
	if doc.Version != 1 || doc.Hardware != "48k" {
		t.Errorf("version/hardware = %d/%q, want 1/\"48k\"", doc.Version, doc.Hardware)
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].DecodedSize != Block48kSize {
		t.Errorf("blocks = %+v, want one 48k block", doc.Blocks)
	}
}

func TestZ80Processor_Info_TruncatedSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.z80")
	if err := os.WriteFile(path, make([]byte, 12), 0644); err != nil {
		t.Fatalf("Failed to write snapshot file: %v", err)
	}

	processor := NewZ80Processor()
	if err := processor.Info(path); err == nil {
		t.Error("Info() should fail for a truncated snapshot")
	}
}
