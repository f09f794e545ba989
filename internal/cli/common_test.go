package cli

import (
	"strings"
	"testing"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()

	if info.Version != Version {
		t.Fatalf("version is %q, want %q", info.Version, Version)
	}
	if info.GoVersion == "" || info.Platform == "" || info.Arch == "" {
		t.Fatalf("incomplete version info: %+v", info)
	}
}

func TestCheckConstraint(t *testing.T) {
	tests := []struct {
		constraint string
		satisfied  bool
		wantErr    bool
	}{
		{">= 0.1.0", true, false},
		{"< 1.0.0", true, false},
		{"> 99.0.0", false, false},
		{"bogus constraint", false, true},
	}

	for _, tt := range tests {
		ok, err := CheckConstraint(tt.constraint)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("CheckConstraint(%q) expected error, got none", tt.constraint)
			}
			if !strings.Contains(err.Error(), "invalid version constraint") {
				t.Fatalf("CheckConstraint(%q) unexpected error: %v", tt.constraint, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("CheckConstraint(%q) unexpected error: %v", tt.constraint, err)
		}
		if ok != tt.satisfied {
			t.Fatalf("CheckConstraint(%q) = %v, want %v", tt.constraint, ok, tt.satisfied)
		}
	}
}
