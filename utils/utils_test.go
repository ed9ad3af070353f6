package utils

import (
	"strings"
	"testing"
)

func TestGetUUID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GetUUID()
		if len(id) != 36 || strings.Count(id, "-") != 4 {
			t.Fatalf("unexpected uuid format: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate uuid: %q", id)
		}
		seen[id] = true
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"+8801969752197", true},
		{"01969752197", true},
		{" 01969752197 ", true},
		{"12345", false},
		{"not-a-number", false},
		{"+880 1969 752197", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidPhone(tt.in); got != tt.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
