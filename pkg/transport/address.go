package transport

import (
	"encoding/hex"
	"fmt"
)

// Address is a fixed-width hex identifier of a transport entry. It is
// opaque to strata: for mutable entries a transport derives it from
// (publicKey, salt); for immutable entries, from content.
type Address string

// Empty reports whether a is the zero Address, used to reject a Get
// that was given no address at all.
func (a Address) Empty() bool {
	return a == ""
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return string(a)
}

// Parse validates that s is exactly size hex characters and returns it
// as an Address. It does not look the address up in any transport.
func Parse(s string, size int) (Address, error) {
	if len(s) != size {
		return "", fmt.Errorf("address %q has length %d, want %d", s, len(s), size)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("address %q is not valid hex: %w", s, err)
	}
	return Address(s), nil
}

// NewAddress hex-encodes raw into an Address.
func NewAddress(raw []byte) Address {
	return Address(hex.EncodeToString(raw))
}
