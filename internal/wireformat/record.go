// Package wireformat owns the on-the-wire encoding of a pointer buffer
// and of the (seq, salt, v) tuple a mutable record's signature covers.
//
// A pointer buffer is packed at its raw binary address width rather
// than as hex text: the fan-out a single buffer can hold is what spec.md's
// capacity formula governs, and a transport's address width is what
// actually lands on the wire, not its doubled hex-encoded text. The
// signature payload, which nothing sizes against, stays JSON for
// readability and relies on json-iterator preserving Go struct field
// order — not a general canonical-JSON algorithm (sorted map keys,
// number normalization).
package wireformat

import (
	"bytes"
	"encoding/hex"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// pointerBufferMagic tags the start of every pointer buffer's wire
// encoding. It is the only signal the reassembler uses to tell a
// pointer buffer apart from a leaf fragment, so a leaf that happens to
// start with the same bytes (and whose remainder divides evenly by the
// width byte) is read back as a pointer buffer.
var pointerBufferMagic = []byte("SPB1")

// PointerBuffer is the address list a tree-builder's intermediate and
// root records serialize as their V field. P holds each child address
// hex-encoded, in order — the hex text is only ever materialized in
// memory; the wire encoding packs the decoded bytes directly.
type PointerBuffer struct {
	P []string
}

// EncodePointerBuffer packs addresses — hex strings of equal byte
// width — into a pointer buffer: a magic tag, the address byte width,
// and the addresses themselves concatenated as raw bytes. A nil or
// empty slice still produces the tag plus a zero width byte, which is
// what callers use to measure the buffer's fixed envelope overhead.
func EncodePointerBuffer(addresses []string) ([]byte, error) {
	if len(addresses) == 0 {
		return append(append([]byte{}, pointerBufferMagic...), 0), nil
	}

	width := len(addresses[0]) / 2
	buf := make([]byte, 0, len(pointerBufferMagic)+1+len(addresses)*width)
	buf = append(buf, pointerBufferMagic...)
	buf = append(buf, byte(width))

	for _, a := range addresses {
		raw, err := hex.DecodeString(a)
		if err != nil {
			return nil, fmt.Errorf("wireformat: decode address %q: %w", a, err)
		}
		if len(raw) != width {
			return nil, fmt.Errorf("wireformat: address %q does not match buffer width %d bytes", a, width)
		}
		buf = append(buf, raw...)
	}
	return buf, nil
}

// DecodePointerBuffer attempts to parse data as a PointerBuffer. It
// returns ok == false — not an error — whenever data does not carry the
// pointer-buffer magic tag, or carries it but its address list does not
// divide evenly by the declared width; either case means the caller is
// looking at a leaf, not malformed input.
func DecodePointerBuffer(data []byte) (pb PointerBuffer, ok bool) {
	if len(data) < len(pointerBufferMagic)+1 {
		return PointerBuffer{}, false
	}
	if !bytes.Equal(data[:len(pointerBufferMagic)], pointerBufferMagic) {
		return PointerBuffer{}, false
	}

	width := int(data[len(pointerBufferMagic)])
	rest := data[len(pointerBufferMagic)+1:]
	if width == 0 {
		if len(rest) != 0 {
			return PointerBuffer{}, false
		}
		return PointerBuffer{}, true
	}
	if len(rest)%width != 0 {
		return PointerBuffer{}, false
	}

	addrs := make([]string, 0, len(rest)/width)
	for offset := 0; offset < len(rest); offset += width {
		addrs = append(addrs, hex.EncodeToString(rest[offset:offset+width]))
	}
	return PointerBuffer{P: addrs}, true
}

// signaturePayload is the struct a mutable record's signature is
// computed over. Field order here is what makes the encoding
// reproducible: json-iterator in ConfigCompatibleWithStandardLibrary
// mode emits struct fields in declaration order, so two calls with
// equal (seq, salt, v) always produce equal bytes.
type signaturePayload struct {
	Seq  int64  `json:"seq"`
	Salt []byte `json:"salt"`
	V    []byte `json:"v"`
}

// EncodeSignaturePayload returns the canonical byte string a mutable
// record's signature is computed over and verified against.
func EncodeSignaturePayload(seq int64, salt, v []byte) ([]byte, error) {
	return api.Marshal(signaturePayload{Seq: seq, Salt: salt, V: v})
}
