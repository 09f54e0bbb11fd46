package domain

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+7 (900) 123-45-67", "7 (900) 1234567"},
		{"0555-123-45-67", "05551234567"},
		{"  0555 123 4567  ", "0555 123 4567"},
		{"abc", ""},
	}

	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPhoneHasDigits(t *testing.T) {
	if !PhoneHasDigits("0555 123") {
		t.Fatal("expected digits to be detected")
	}
	if PhoneHasDigits("( ) ") {
		t.Fatal("expected no digits")
	}
}
