package phone

import (
	"strings"
	"unicode"
)

// Zimbabwe country calling code
const (
	CountryCode     = "263"
	CountryCodePlus = "+263"
)

// Normalize converts a Zimbabwe mobile number into its canonical form:
// leading zero, digits only, no separators.
//
//	263771234567  -> 0771234567
//	+263771234567 -> 0771234567
//	0771234567    -> 0771234567
//	771234567     -> 0771234567
//
// Returns "" for empty input. Identity lookups compare two normalized
// keys by exact string equality.
func Normalize(mobile string) string {
	if mobile == "" {
		return ""
	}

	// Remove whitespace of any kind, dashes, and parentheses
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '(' || r == ')' {
			return -1
		}
		return r
	}, mobile)

	switch {
	case strings.HasPrefix(normalized, CountryCodePlus):
		normalized = "0" + normalized[len(CountryCodePlus):]
	case strings.HasPrefix(normalized, CountryCode):
		normalized = "0" + normalized[len(CountryCode):]
	case !strings.HasPrefix(normalized, "0"):
		normalized = "0" + normalized
	}

	return normalized
}

// Equal reports whether two raw mobile numbers refer to the same subscriber.
func Equal(a, b string) bool {
	return Normalize(a) != "" && Normalize(a) == Normalize(b)
}
