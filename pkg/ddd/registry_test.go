package ddd

import (
	"sort"
	"testing"
)

func TestCount(t *testing.T) {
	if got := Count(); got != 67 {
		t.Errorf("Count() = %d, want 67", got)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		{"Sao Paulo", "11", true},
		{"Rio de Janeiro", "21", true},
		{"Brasilia", "61", true},
		{"Maranhao", "99", true},
		{"Unallocated 20", "20", false},
		{"Unallocated 23", "23", false},
		{"Unallocated 10", "10", false},
		{"Zero", "00", false},
		{"Single digit", "1", false},
		{"Three digits", "111", false},
		{"Empty", "", false},
		{"Letters", "ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.code); got != tt.expected {
				t.Errorf("IsValid(%q) = %v, want %v", tt.code, got, tt.expected)
			}
		})
	}
}

func TestAll(t *testing.T) {
	codes := All()

	if len(codes) != 67 {
		t.Fatalf("All() returned %d codes, want 67", len(codes))
	}
	if !sort.StringsAreSorted(codes) {
		t.Error("All() is not sorted ascending")
	}

	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		if !IsValid(code) {
			t.Errorf("All() contains invalid code %q", code)
		}
		if _, dup := seen[code]; dup {
			t.Errorf("All() contains duplicate code %q", code)
		}
		seen[code] = struct{}{}
	}
}
