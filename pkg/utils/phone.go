package utils

import "strings"

// NormalizePhone strips formatting characters and a leading country code
// from an Indian mobile number, returning the bare 10-digit form.
func NormalizePhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	normalized := digits.String()

	// Accept "+91xxxxxxxxxx" and "0xxxxxxxxxx" prefixed forms.
	if len(normalized) == 12 && strings.HasPrefix(normalized, "91") {
		normalized = normalized[2:]
	} else if len(normalized) == 11 && strings.HasPrefix(normalized, "0") {
		normalized = normalized[1:]
	}

	return normalized
}

// IsValidPhone reports whether phone normalizes to a valid Indian mobile
// number: exactly 10 digits, first digit 6-9.
func IsValidPhone(phone string) bool {
	normalized := NormalizePhone(phone)
	if len(normalized) != 10 {
		return false
	}
	return normalized[0] >= '6' && normalized[0] <= '9'
}
