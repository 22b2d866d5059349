// Package digest produces the short fixed-length content digests strata
// uses as salts and as the basis of content-addressed identifiers.
package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Size is the digest length in bytes. It matches the default
// addressSize of 40 hex characters (20 bytes) spec'd for the transport.
const Size = 20

// Sum returns the Size-byte BLAKE2b digest of data. BLAKE2b's
// variable-length output mode lets a single primitive produce exactly
// the digest width strata's default address size requires, without the
// truncation a fixed-width hash like SHA-1 would need.
func Sum(data []byte) [Size]byte {
	h, err := blake2b.New(Size, nil)
	if err != nil {
		// Size is a compile-time constant within blake2b's supported
		// range (1..64), so New can only fail on programmer error.
		panic(err)
	}
	h.Write(data)
	var out [Size]byte
	copy(out[:], h.Sum(nil))
	return out
}

// SumHex returns Sum(data) hex-encoded.
func SumHex(data []byte) string {
	sum := Sum(data)
	return hex.EncodeToString(sum[:])
}

// Salted returns Sum(data ‖ extra). The tree builder uses it to mix
// random bytes into a fragment's digest when a single-fragment mutable
// write is given no salt; intermediate records are salted with Sum.
func Salted(data, extra []byte) [Size]byte {
	buf := make([]byte, 0, len(data)+len(extra))
	buf = append(buf, data...)
	buf = append(buf, extra...)
	return Sum(buf)
}
