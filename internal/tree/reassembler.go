package tree

import (
	"bytes"
	"context"

	"github.com/iamNilotpal/strata/internal/fanout"
	"github.com/iamNilotpal/strata/internal/wireformat"
	pkgerrors "github.com/iamNilotpal/strata/pkg/errors"
	"github.com/iamNilotpal/strata/pkg/transport"
)

// Resolve fetches the record at address and, if it is a pointer buffer,
// recursively fetches and concatenates its children until it holds the
// original leaf bytes. The returned Record carries the reassembled
// payload in V; if the root itself was a pointer buffer, Original holds
// its own serialized form so a caller can tell the two apart.
func Resolve(ctx context.Context, address transport.Address, cfg Config) (transport.Record, error) {
	root, err := cfg.Transport.Get(ctx, address)
	if err != nil {
		return transport.Record{}, pkgerrors.NewTransportError(err, "tree: get root record").
			WithAddress(address.String()).
			WithOperation("Get")
	}
	if !root.Found() {
		return root, nil
	}

	resolved, wasPointer, err := resolve(ctx, root.V, 0, cfg)
	if err != nil {
		return transport.Record{}, err
	}
	if wasPointer {
		root.Original = root.V
	}
	root.V = resolved
	return root, nil
}

// resolve returns v itself when v is not a pointer buffer, or the
// concatenated bytes of its recursively resolved children otherwise.
// depth counts the PointerBuffer levels already descended through, and
// bounds recursion to cfg.MaxIndirections so a malicious or corrupt
// transport cannot force unbounded recursion.
func resolve(ctx context.Context, v []byte, depth int, cfg Config) (resolved []byte, wasPointer bool, err error) {
	pb, ok := wireformat.DecodePointerBuffer(v)
	if !ok {
		return v, false, nil
	}

	if depth >= cfg.MaxIndirections {
		return nil, false, pkgerrors.NewCapacityError("tree: pointer buffer nesting exceeds maxIndirections").
			WithMaxIndirections(cfg.MaxIndirections)
	}

	children := make([][]byte, len(pb.P))
	fetchErr := fanout.Run(ctx, len(pb.P), cfg.ConcurrentRequests, func(ctx context.Context, i int) error {
		addr, err := transport.Parse(pb.P[i], cfg.AddressSize)
		if err != nil {
			return err
		}

		record, err := cfg.Transport.Get(ctx, addr)
		if err != nil {
			return pkgerrors.NewTransportError(err, "tree: get child record").
				WithAddress(pb.P[i]).
				WithOperation("Get")
		}
		if !record.Found() {
			return pkgerrors.NewTransportError(nil, "tree: child record not found").
				WithAddress(pb.P[i]).
				WithOperation("Get")
		}

		child, _, err := resolve(ctx, record.V, depth+1, cfg)
		if err != nil {
			return err
		}
		children[i] = child
		return nil
	})
	if fetchErr != nil {
		return nil, false, fetchErr
	}

	var buf bytes.Buffer
	for _, c := range children {
		buf.Write(c)
	}
	return buf.Bytes(), true, nil
}
