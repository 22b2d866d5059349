// Package options configures a strata backend: the transport it writes
// through, the signing identity it writes mutable records under, and
// the limits that govern slicing and pointer-tree construction.
package options

import (
	"github.com/iamNilotpal/strata/pkg/signer"
	"github.com/iamNilotpal/strata/pkg/transport"
	"go.uber.org/zap"
)

// Options holds every configuration parameter a strata backend accepts.
type Options struct {
	// Transport is the address-keyed store strata writes through.
	// Required.
	Transport transport.Transport

	// Keys is the signing identity mutable writes are published under.
	// Required only if the caller ever performs a mutable write.
	Keys *signer.KeyPair

	// MaxIndirections bounds pointer-tree depth.
	MaxIndirections int

	// BufferSizeLimit bounds the length, in bytes, of a single record's
	// V field — and so the size of each slicer fragment.
	BufferSizeLimit int

	// AddressSize is the transport's address width, in hex characters.
	AddressSize int

	// ConcurrentRequests bounds the number of in-flight transport
	// operations a single tree level may have outstanding at once.
	ConcurrentRequests int

	// Logger receives structured logs from every internal subsystem. A
	// nil Logger is replaced with a no-op logger at construction.
	Logger *zap.SugaredLogger
}

// OptionFunc mutates an Options in place; the functional-options
// pattern used to build an Options from NewDefaultOptions plus
// overrides.
type OptionFunc func(*Options)

// NewDefaultOptions returns an Options populated with every documented
// default except Transport and Keys, which have no sensible default.
func NewDefaultOptions() Options {
	return Options{
		MaxIndirections:    DefaultMaxIndirections,
		BufferSizeLimit:    DefaultBufferSizeLimit,
		AddressSize:        DefaultAddressSize,
		ConcurrentRequests: DefaultConcurrentRequests,
	}
}

// WithTransport sets the transport a backend writes through.
func WithTransport(t transport.Transport) OptionFunc {
	return func(o *Options) {
		if t != nil {
			o.Transport = t
		}
	}
}

// WithKeys sets the signing identity mutable writes are published
// under.
func WithKeys(keys signer.KeyPair) OptionFunc {
	return func(o *Options) {
		o.Keys = &keys
	}
}

// WithMaxIndirections overrides the pointer-tree depth limit.
func WithMaxIndirections(depth int) OptionFunc {
	return func(o *Options) {
		if depth > 0 {
			o.MaxIndirections = depth
		}
	}
}

// WithBufferSizeLimit overrides the maximum record V length, in bytes.
func WithBufferSizeLimit(limit int) OptionFunc {
	return func(o *Options) {
		if limit > 0 {
			o.BufferSizeLimit = limit
		}
	}
}

// WithAddressSize overrides the transport address width, in hex
// characters.
func WithAddressSize(size int) OptionFunc {
	return func(o *Options) {
		if size > 0 {
			o.AddressSize = size
		}
	}
}

// WithConcurrentRequests overrides the per-level in-flight transport
// operation cap.
func WithConcurrentRequests(n int) OptionFunc {
	return func(o *Options) {
		if n > 0 {
			o.ConcurrentRequests = n
		}
	}
}

// WithLogger overrides the logger every internal subsystem receives.
func WithLogger(log *zap.SugaredLogger) OptionFunc {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}
