package transport

// Record is the unit stored at, and returned from, one transport
// address. Exactly one of two shapes applies: an immutable record omits
// Seq, K, and Sig; a mutable record carries all three.
type Record struct {
	// V is the opaque payload: either a leaf fragment of user data, or
	// the serialized form of a PointerBuffer.
	V []byte

	// Seq is the monotonic sequence number of a mutable record. Its
	// presence — including the zero value — selects the mutable write
	// path, so it is a pointer rather than a bare int64.
	Seq *int64

	// Salt disambiguates repeated writes under the same key. Always
	// present on mutable records; optional on immutable ones, where the
	// transport ignores it for addressing purposes.
	Salt []byte

	// K is the hex-encoded signing public key. Present iff the record
	// is mutable.
	K string

	// Sig is the detached signature over the canonical (Seq, Salt, V)
	// encoding. Present iff the record is mutable.
	Sig []byte

	// ID tags which transport produced this record. Set on reads only.
	ID string

	// Original holds the root record's own V, before the reassembler
	// overwrote V with the concatenated leaf contents. Set on reads
	// only, and only on records that were pointer buffers.
	Original []byte
}

// IsMutable reports whether r carries the fields of a mutable record.
func (r Record) IsMutable() bool {
	return r.Seq != nil
}

// Found reports whether r represents an actual stored record, as
// opposed to the not-found sentinel a transport's Get returns for an
// unknown address (a bare record with only ID set).
func (r Record) Found() bool {
	return r.V != nil || r.Seq != nil || r.K != "" || len(r.Sig) != 0
}

// NotFound builds the not-found sentinel a Transport.Get implementation
// returns for an address with no stored record.
func NotFound(id string) Record {
	return Record{ID: id}
}
