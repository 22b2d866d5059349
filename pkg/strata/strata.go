// Package strata is a content-addressed chunking and pointer-tree
// engine: it slices arbitrarily large payloads into size-bounded
// fragments, publishes them through a caller-supplied transport, and
// reassembles them on read. It does not implement a transport: the
// caller supplies one through pkg/transport. Signing always uses
// pkg/signer's Ed25519Signer and digests always use pkg/digest; an
// Instance offers no option to replace either.
package strata

import (
	"context"
	"sync/atomic"

	"github.com/iamNilotpal/strata/internal/engine"
	pkgerrors "github.com/iamNilotpal/strata/pkg/errors"
	"github.com/iamNilotpal/strata/pkg/logger"
	"github.com/iamNilotpal/strata/pkg/options"
	"github.com/iamNilotpal/strata/pkg/transport"
)

// Instance is a configured strata backend: a transport plus the limits
// and signing identity that govern how payloads are sliced, addressed,
// and reassembled. Construct one with NewInstance.
type Instance struct {
	eng    *engine.Engine
	opts   options.Options
	closed atomic.Bool
}

// NewInstance builds an Instance from NewDefaultOptions plus the given
// overrides, then starts the configured transport. It fails if no
// transport was configured, or if the transport fails to start.
func NewInstance(ctx context.Context, opts ...options.OptionFunc) (*Instance, error) {
	resolved := options.NewDefaultOptions()
	for _, apply := range opts {
		apply(&resolved)
	}
	if resolved.Logger == nil {
		resolved.Logger = logger.Nop()
	}

	eng, err := engine.New(resolved)
	if err != nil {
		return nil, err
	}

	if err := resolved.Transport.Start(ctx); err != nil {
		return nil, pkgerrors.NewTransportError(err, "strata: start transport").WithOperation("Start")
	}

	return &Instance{eng: eng, opts: resolved}, nil
}

// PutOptions carries the per-call inputs Put accepts.
type PutOptions struct {
	// Seq selects the mutable write path when set. The Instance must
	// have been configured with WithKeys, or Put returns a config error.
	Seq *int64

	// Salt, when set, is used for the root record of a single-fragment
	// payload. Multi-fragment payloads always derive their root's salt
	// from content, ignoring this field; see internal/tree.WriteMode.
	Salt []byte
}

// Put slices data as needed and publishes it, returning the address of
// its root record.
func (i *Instance) Put(ctx context.Context, data []byte, opts PutOptions) (transport.Address, error) {
	if i.closed.Load() {
		return "", pkgerrors.NewConfigError("instance is closed").WithMissing("transport")
	}
	return i.eng.Put(ctx, engine.PutRequest{Data: data, Seq: opts.Seq, Salt: opts.Salt})
}

// GetOptions carries the per-call inputs Get accepts.
type GetOptions struct {
	// Recursive returns the record at address exactly as stored, without
	// attempting pointer-tree reassembly.
	Recursive bool
}

// Get fetches and, unless opts.Recursive is set, reassembles the
// payload rooted at address.
func (i *Instance) Get(ctx context.Context, address transport.Address, opts GetOptions) (transport.Record, error) {
	if i.closed.Load() {
		return transport.Record{}, pkgerrors.NewConfigError("instance is closed").WithMissing("transport")
	}
	return i.eng.Get(ctx, engine.GetRequest{Address: address, Recursive: opts.Recursive})
}

// Close stops the underlying transport and marks the Instance unusable.
// It is idempotent and safe to call more than once; only the first call
// stops the transport or has any other effect.
func (i *Instance) Close() error {
	if !i.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := i.opts.Transport.Stop(context.Background()); err != nil {
		return pkgerrors.NewTransportError(err, "strata: stop transport").WithOperation("Stop")
	}
	return nil
}
