// Package engine orchestrates a single Put or Get: slicing payloads,
// choosing the mutable or immutable write path, building and resolving
// pointer trees, and translating the outcome into strata's public error
// types. pkg/strata is a thin facade over this package.
package engine

import (
	"context"
	"fmt"

	"github.com/iamNilotpal/strata/internal/slicer"
	"github.com/iamNilotpal/strata/internal/tree"
	pkgerrors "github.com/iamNilotpal/strata/pkg/errors"
	"github.com/iamNilotpal/strata/pkg/options"
	"github.com/iamNilotpal/strata/pkg/signer"
	"github.com/iamNilotpal/strata/pkg/transport"
)

// PutRequest carries the per-call inputs a Put accepts on top of the
// backend's fixed configuration.
type PutRequest struct {
	Data []byte

	// Seq selects the mutable write path when non-nil. Every record this
	// Put publishes — root and intermediate alike — is written under
	// Seq.
	Seq *int64

	// Salt is honored only when Data fits in a single fragment; see
	// tree.WriteMode.RootSalt.
	Salt []byte
}

// GetRequest carries the per-call inputs a Get accepts.
type GetRequest struct {
	Address transport.Address

	// Recursive, when true, returns the record at Address as stored,
	// without attempting pointer-tree reassembly. The tree package's own
	// child fetches read the transport directly and never go through
	// this path; it is exposed to callers who want to walk a tree by
	// hand.
	Recursive bool
}

// Engine holds the resolved configuration a Put/Get pair needs.
type Engine struct {
	opts options.Options
}

// New validates opts and returns a ready-to-use Engine.
func New(opts options.Options) (*Engine, error) {
	if opts.Transport == nil {
		return nil, pkgerrors.NewNoTransportError()
	}
	return &Engine{opts: opts}, nil
}

// Put slices req.Data, builds whatever pointer tree it requires, and
// returns the address of the resulting root record.
func (e *Engine) Put(ctx context.Context, req PutRequest) (transport.Address, error) {
	if req.Data == nil {
		return "", pkgerrors.NewMissingInputError("data")
	}

	mutable := req.Seq != nil
	if mutable && e.opts.Keys == nil {
		return "", pkgerrors.NewNoKeysError()
	}

	cfg := e.treeConfig()

	if err := e.checkCapacity(len(req.Data)); err != nil {
		return "", err
	}

	fragments := slicer.Slice(req.Data, e.opts.BufferSizeLimit)

	mode := tree.WriteMode{RootSalt: req.Salt}
	if mutable {
		mode.Mutable = true
		mode.Seq = *req.Seq
	}

	return tree.Build(ctx, fragments, mode, cfg)
}

// Get fetches the record at req.Address, reassembling it through the
// pointer tree unless req.Recursive asks for the raw stored record.
func (e *Engine) Get(ctx context.Context, req GetRequest) (transport.Record, error) {
	if req.Address.Empty() {
		return transport.Record{}, pkgerrors.NewMissingInputError("address")
	}

	if req.Recursive {
		record, err := e.opts.Transport.Get(ctx, req.Address)
		if err != nil {
			return transport.Record{}, pkgerrors.NewTransportError(err, "engine: get record").
				WithAddress(req.Address.String()).
				WithOperation("Get")
		}
		return record, nil
	}

	return tree.Resolve(ctx, req.Address, e.treeConfig())
}

// checkCapacity fails fast, before any record is written, when size
// cannot possibly fit under the configured fan-out and maxIndirections —
// the pre-flight check tree.Build's own depth counter then backstops.
func (e *Engine) checkCapacity(size int) error {
	k := tree.Fanout(e.opts.BufferSizeLimit, e.opts.AddressSize)
	maxPayload := tree.MaxPayload(k, e.opts.MaxIndirections, e.opts.BufferSizeLimit)
	if int64(size) > maxPayload {
		return pkgerrors.NewCapacityError(
			fmt.Sprintf("payload of %d bytes exceeds the %d bytes representable at maxIndirections=%d", size, maxPayload, e.opts.MaxIndirections),
		).
			WithFanout(k).
			WithMaxIndirections(e.opts.MaxIndirections).
			WithPayloadSize(size).
			WithMaxPayloadSize(maxPayload)
	}
	return nil
}

func (e *Engine) treeConfig() tree.Config {
	return tree.Config{
		Transport:          e.opts.Transport,
		Signer:             signer.Ed25519Signer{},
		Keys:               e.opts.Keys,
		Fanout:             tree.Fanout(e.opts.BufferSizeLimit, e.opts.AddressSize),
		MaxIndirections:    e.opts.MaxIndirections,
		ConcurrentRequests: e.opts.ConcurrentRequests,
		AddressSize:        e.opts.AddressSize,
		Logger:             e.opts.Logger,
	}
}
