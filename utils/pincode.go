package utils

import (
	"regexp"
)

// Indian postal codes are exactly six digits. Anything else is rejected
// client-side before a geocoding or backend call is made.
var pincodeRegexp = regexp.MustCompile(`^[0-9]{6}$`)

// ValidPincode reports whether s is a well-formed pincode.
func ValidPincode(s string) bool {
	return pincodeRegexp.MatchString(s)
}
