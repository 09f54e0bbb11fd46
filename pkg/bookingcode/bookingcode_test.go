package bookingcode

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	code, err := Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(code) != Length {
		t.Fatalf("code length: got %d, want %d", len(code), Length)
	}
	for _, r := range code {
		if !strings.ContainsRune(Alphabet, r) {
			t.Fatalf("code %q contains %q outside the alphabet", code, r)
		}
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := seen[code]; ok {
			t.Fatalf("duplicate code generated: %s", code)
		}
		seen[code] = struct{}{}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  ab2cd3ef45 "); got != "AB2CD3EF45" {
		t.Fatalf("Normalize: got %q", got)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"AB2CD3EF45", true},
		{"ab2cd3ef45", false}, // нижний регистр вне алфавита
		{"AB2CD3EF4", false},  // короткий
		{"AB2CD3EF4O", false}, // O исключён из алфавита
		{"AB2CD3EF40", false}, // 0 исключён из алфавита
	}

	for _, tt := range tests {
		if got := IsValid(tt.code); got != tt.want {
			t.Fatalf("IsValid(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
