package pin

import (
	"crypto/subtle"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the default bcrypt cost for hashed PINs
const DefaultCost = 10

var fourDigits = regexp.MustCompile(`^\d{4}$`)

// ValidateFormat checks that a PIN is exactly 4 decimal digits
func ValidateFormat(pin string) bool {
	return fourDigits.MatchString(pin)
}

// Hash hashes a PIN using bcrypt
func Hash(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a supplied PIN with the stored value. The mock dataset
// stores PINs in the clear; records written with PIN_HASHING enabled store
// bcrypt hashes instead, so both forms must verify.
func Verify(supplied, stored string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(stored)) == 1
}
