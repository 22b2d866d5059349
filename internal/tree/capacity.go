package tree

import "github.com/iamNilotpal/strata/internal/wireformat"

// Fanout computes K, the maximum number of child addresses a single
// PointerBuffer can carry under bufferSizeLimit: the fixed envelope
// overhead wireformat's pointer-buffer encoding costs, divided into
// what remains by the raw binary width of one address. addressSize is
// expressed in hex characters, as it is everywhere else in this
// package, but the wire encoding packs the decoded bytes rather than
// the hex text, so each address only costs half that many bytes.
func Fanout(bufferSizeLimit, addressSize int) int {
	empty, err := wireformat.EncodePointerBuffer(nil)
	if err != nil {
		// EncodePointerBuffer(nil) returns the bare envelope without
		// decoding any address, so it does not fail; there is no
		// recoverable path for a caller here.
		panic(err)
	}
	overhead := len(empty)

	addressBytes := addressSize / 2
	available := bufferSizeLimit - overhead
	if available <= 0 || addressBytes <= 0 {
		return 0
	}
	return available / addressBytes
}

// MaxPayload returns the largest payload, in bytes, representable by a
// pointer tree of the given fan-out and depth: K^depth * bufferSizeLimit.
func MaxPayload(fanout, depth, bufferSizeLimit int) int64 {
	if fanout <= 0 || depth < 0 {
		return int64(bufferSizeLimit)
	}
	capacity := int64(1)
	for i := 0; i < depth; i++ {
		capacity *= int64(fanout)
		if capacity > (1<<62)/int64(bufferSizeLimit) {
			// Overflow guard: any realistic configuration's capacity is
			// already far beyond representable payload sizes.
			return int64(1<<62) - 1
		}
	}
	return capacity * int64(bufferSizeLimit)
}
