// Package transport defines the abstract address-keyed store strata
// writes chunks and pointer buffers through. Implementations — a DHT
// client, the in-memory reference backend — live outside this package;
// strata only depends on this interface.
package transport

import "context"

// MutableWriteOptions carries the address-deriving and sequencing
// inputs for a mutable write. The record itself (V, K, Sig) travels
// separately in Record so a transport can validate the signature
// without strata having to pass raw key material around twice.
type MutableWriteOptions struct {
	// PublicKey is the raw (not hex-encoded) signing public key; the
	// transport derives the address as digest(PublicKey ‖ Salt).
	PublicKey []byte

	// Salt disambiguates repeated writes under the same PublicKey.
	Salt []byte

	// Seq is the sequence number this write claims. The transport
	// accepts it only if no record exists yet at the address or the
	// stored record's Seq is exactly Seq-1.
	Seq int64
}

// Transport is the externally supplied address-keyed store strata's
// engine writes chunks through and reads them back from. Size bounds
// (bufferSizeLimit, addressSize) are transport properties, not choices
// strata makes.
type Transport interface {
	// Start prepares the transport for use — dialing a network,
	// joining a DHT, opening a handle — before any Put or Get call. A
	// transport with nothing to set up may implement it as a no-op.
	Start(ctx context.Context) error

	// Stop releases whatever Start acquired. Called once, when the
	// owning backend is closed.
	Stop(ctx context.Context) error

	// PutImmutable stores record under an address that is a pure
	// function of its content. Calling it twice with equal content
	// yields equal addresses and does not error.
	PutImmutable(ctx context.Context, record Record) (Address, error)

	// PutMutable stores record under digest(opts.PublicKey ‖ opts.Salt),
	// after verifying record.Sig and opts.Seq's monotonicity.
	PutMutable(ctx context.Context, record Record, opts MutableWriteOptions) (Address, error)

	// Get returns the most recent record at address, or the not-found
	// sentinel (Record.Found() == false) if none exists. A transport
	// failure — as opposed to an absent record — is returned as an
	// error.
	Get(ctx context.Context, address Address) (Record, error)
}
