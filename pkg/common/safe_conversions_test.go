// Package common provides tests for safe integer conversions
package common

import "testing"

func TestSafeIntToUint16(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		want    uint16
		wantErr bool
	}{
		{"zero", 0, 0, false},
		{"max", 65535, 65535, false},
		{"negative", -1, 0, true},
		{"too large", 65536, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafeIntToUint16(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("SafeIntToUint16(%d) should fail", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("SafeIntToUint16(%d) failed: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("SafeIntToUint16(%d) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestSafeUint64ToUint16(t *testing.T) {
	if _, err := SafeUint64ToUint16(0x10000); err == nil {
		t.Error("SafeUint64ToUint16(0x10000) should fail")
	}

	got, err := SafeUint64ToUint16(0xFFFF)
	if err != nil {
		t.Fatalf("SafeUint64ToUint16(0xffff) failed: %v", err)
	}
	if got != 0xFFFF {
		t.Errorf("SafeUint64ToUint16(0xffff) = %d, want 65535", got)
	}
}
