package utils

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare 10 digits", "9876543210", "9876543210"},
		{"country code with plus", "+919876543210", "9876543210"},
		{"country code without plus", "919876543210", "9876543210"},
		{"leading zero", "09876543210", "9876543210"},
		{"spaces and dashes", "98765 432-10", "9876543210"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid mobile", "9876543210", true},
		{"valid with country code", "+91 98765 43210", true},
		{"starts with 6", "6123456789", true},
		{"starts with 5", "5876543210", false},
		{"too short", "987654321", false},
		{"too long after normalize", "98765432101", false},
		{"letters", "98765abcde", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPhone(tt.input); got != tt.want {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
