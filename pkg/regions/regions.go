// Package regions defines the fixed set of game server regions accepted by
// the stats upstream and validates inbound region parameters against it.
package regions

import "strings"

// supported lists the region codes accepted by the upstream, in the order
// they appear in client-facing error messages.
var supported = []string{
	"IND", "BR", "SG", "RU", "ID", "TW", "US", "VN", "TH", "ME", "PK", "CIS", "BD",
}

var index = make(map[string]struct{}, len(supported))

func init() {
	for _, code := range supported {
		index[code] = struct{}{}
	}
}

// IsValid reports whether code names a supported region. Matching is
// case-insensitive.
func IsValid(code string) bool {
	_, ok := index[strings.ToUpper(code)]
	return ok
}

// Canonical returns the canonical upper-case form of a region code, as used
// in cache keys and upstream URLs. It does not check validity.
func Canonical(code string) string {
	return strings.ToUpper(code)
}

// Supported returns the supported region codes in declaration order. The
// returned slice is a copy and safe to modify.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// SupportedList returns the supported codes joined with ", " for use in
// error messages.
func SupportedList() string {
	return strings.Join(supported, ", ")
}
