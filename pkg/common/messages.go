package common

import (
	"fmt"
	"log"
)

// Global variable to control debug output
var VerboseMode bool = false

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
}

// Error messages
const (
	ErrFailedToOpenSnapshot      = "failed to open snapshot file"
	ErrFailedToReadHeader        = "failed to read snapshot header"
	ErrFailedToReadExtHeader     = "failed to read extended header"
	ErrFailedToReadMemoryBlock   = "failed to read memory block"
	ErrFailedToReadPageRecord    = "failed to read page record"
	ErrFailedToDecompressBlock   = "failed to decompress memory block"
	ErrFailedToClassifyHardware  = "failed to classify hardware"
	ErrFailedToCreateYAMLFile    = "failed to create YAML file"
	ErrFailedToEncodeYAML        = "failed to encode YAML"
	ErrFailedToOpenSymbolListing = "failed to open symbol listing"
	ErrFailedToReadSymbolListing = "failed to read symbol listing"
	ErrInvalidSymbolAddress      = "invalid symbol address"
	ErrSymbolOutOfRange          = "symbol out of range"
)

// Info messages
const (
	InfoSnapshotDecoded = "Snapshot decoded successfully: %s"
	InfoYAMLExported    = "Exported snapshot metadata to YAML: %s"
	InfoAllSymbolsOK    = "All budgeted symbols within range"
)

// Debug messages
const (
	DebugHeaderDecoded    = "Header: pc=0x%04x sp=0x%04x flags=0x%02x"
	DebugExtHeaderDecoded = "Extended header: length=%d pc=0x%04x hw_type=%d hw_flags=0x%02x"
	DebugHardwareProfile  = "Hardware profile: version=%d description=%s pages=%d"
	DebugPageDecoded      = "Page %d: %d bytes declared, %d bytes decoded"
	DebugBlockDecoded     = "Memory block: %d bytes decoded"
	DebugSymbolChecked    = "Symbol %s at 0x%04x (limit 0x%04x)"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[INFO] "+message, args...)
	} else {
		log.Printf("[INFO] %s", message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[WARN] "+message, args...)
	} else {
		log.Printf("[WARN] %s", message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[ERROR] "+message, args...)
	} else {
		log.Printf("[ERROR] %s", message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		log.Printf("[DEBUG] "+message, args...)
	} else {
		log.Printf("[DEBUG] %s", message)
	}
}

// FormatError creates a formatted error with additional context
func FormatError(baseMessage string, details interface{}) error {
	if err, ok := details.(error); ok {
		return fmt.Errorf("%s: %w", baseMessage, err)
	}
	return fmt.Errorf("%s: %v", baseMessage, details)
}
