// Package tree builds and reassembles the pointer tree a chunked
// payload is stored as: a single leaf record when the payload fits in
// one fragment, a single PointerBuffer when it fits in K fragments, and
// a K-ary tree of PointerBuffers, built bottom-up, when it does not.
package tree

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/iamNilotpal/strata/internal/fanout"
	"github.com/iamNilotpal/strata/internal/wireformat"
	"github.com/iamNilotpal/strata/pkg/digest"
	pkgerrors "github.com/iamNilotpal/strata/pkg/errors"
	"github.com/iamNilotpal/strata/pkg/options"
	"github.com/iamNilotpal/strata/pkg/signer"
	"github.com/iamNilotpal/strata/pkg/transport"
	"go.uber.org/zap"
)

// Config carries every collaborator and limit the builder and
// reassembler need. It is assembled once per call from the backend's
// resolved options.
type Config struct {
	Transport          transport.Transport
	Signer             signer.Signer
	Keys               *signer.KeyPair
	Fanout             int
	MaxIndirections    int
	ConcurrentRequests int
	AddressSize        int
	Logger             *zap.SugaredLogger
}

func (c Config) logger() *zap.SugaredLogger {
	if c.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return c.Logger
}

// WriteMode selects between the mutable and immutable write paths for
// every record a Build call publishes, root and intermediate alike.
type WriteMode struct {
	// Mutable selects putMutable for every record this Build call
	// publishes. Each record's address still derives from its own
	// content-derived salt, so records with identical content share one
	// address and are published once per Build call — this only affects
	// which transport method is called and whether records are signed.
	Mutable bool

	// Seq is the sequence number claimed by every record this call
	// publishes. Meaningless when Mutable is false.
	Seq int64

	// RootSalt is the caller-supplied salt for the root record. It is
	// honored only when the payload fits in a single fragment; a
	// multi-fragment root is always a PointerBuffer and always salted
	// from its own serialized content.
	RootSalt []byte
}

// Build stores already-sliced fragments as the pointer tree described by
// cfg and mode, and returns the address of its root record.
func Build(ctx context.Context, fragments [][]byte, mode WriteMode, cfg Config) (transport.Address, error) {
	if len(fragments) == 0 {
		return "", fmt.Errorf("tree: no fragments to build")
	}

	if len(fragments) == 1 {
		salt := mode.RootSalt
		if mode.Mutable && len(salt) == 0 {
			salt = autoSalt(fragments[0])
		}
		return storeLeaf(ctx, fragments[0], salt, mode, cfg)
	}

	addrs, err := storeLeaves(ctx, fragments, mode, cfg)
	if err != nil {
		return "", err
	}
	return collapseToRoot(ctx, addrs, 1, mode, cfg)
}

// autoSalt derives a salt for a caller that asked for a mutable write
// but supplied no salt of its own: the fragment's digest mixed with
// random bytes, so repeated puts of identical content do not collide on
// the same address. This makes the resulting address non-deterministic
// across calls with identical input, unlike every content-derived salt
// used elsewhere in the tree.
func autoSalt(fragment []byte) []byte {
	suffix := make([]byte, 16)
	_, _ = rand.Read(suffix)
	sum := digest.Salted(fragment, suffix)
	return sum[:]
}

// storeLeaves publishes every distinct fragment as an independent
// record, bounded to cfg.ConcurrentRequests in flight at once, and
// returns their addresses in fragment order. Identical fragments share
// one content-derived salt and so one address: each is published once
// and its address reused for every repeat, so a mutable write never
// claims the same seq twice at one address.
func storeLeaves(ctx context.Context, fragments [][]byte, mode WriteMode, cfg Config) ([]transport.Address, error) {
	addrs := make([]transport.Address, len(fragments))
	firstOf := make(map[string]int, len(fragments))
	unique := make([]int, 0, len(fragments))
	for i, f := range fragments {
		if _, ok := firstOf[string(f)]; !ok {
			firstOf[string(f)] = i
			unique = append(unique, i)
		}
	}
	err := fanout.Run(ctx, len(unique), cfg.ConcurrentRequests, func(ctx context.Context, u int) error {
		i := unique[u]
		sum := digest.Sum(fragments[i])
		addr, err := storeLeaf(ctx, fragments[i], sum[:], mode, cfg)
		if err != nil {
			return err
		}
		addrs[i] = addr
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i, f := range fragments {
		addrs[i] = addrs[firstOf[string(f)]]
	}
	return addrs, nil
}

// storeLeaf publishes a single raw fragment under salt, via the write
// path mode selects.
func storeLeaf(ctx context.Context, fragment []byte, salt []byte, mode WriteMode, cfg Config) (transport.Address, error) {
	return publish(ctx, fragment, salt, mode, cfg)
}

// collapseToRoot reduces addrs to a single root address by repeatedly
// grouping them into PointerBuffers of at most cfg.Fanout children,
// sequentially across groups, until one address remains. depth counts
// the PointerBuffer level about to be created.
func collapseToRoot(ctx context.Context, addrs []transport.Address, depth int, mode WriteMode, cfg Config) (transport.Address, error) {
	if depth > cfg.MaxIndirections {
		return "", pkgerrors.NewCapacityError("tree: payload requires more pointer-tree levels than maxIndirections allows").
			WithFanout(cfg.Fanout).
			WithMaxIndirections(cfg.MaxIndirections)
	}

	if cfg.Fanout < options.MinFanout {
		return "", pkgerrors.NewCapacityError("tree: computed fan-out falls below the minimum a pointer buffer can branch with under the configured buffer size and address size").
			WithFanout(cfg.Fanout).
			WithMaxIndirections(cfg.MaxIndirections)
	}

	if len(addrs) <= cfg.Fanout {
		return storePointerBuffer(ctx, addrs, mode, cfg)
	}

	numBoxes := (len(addrs) + cfg.Fanout - 1) / cfg.Fanout
	boxAddrs := make([]transport.Address, 0, numBoxes)
	// Boxes with identical children encode to identical pointer buffers
	// and so share one address; each is published once.
	published := make(map[string]transport.Address, numBoxes)
	for offset := 0; offset < len(addrs); offset += cfg.Fanout {
		end := offset + cfg.Fanout
		if end > len(addrs) {
			end = len(addrs)
		}
		key := fmt.Sprint(addrs[offset:end])
		addr, ok := published[key]
		if !ok {
			var err error
			addr, err = storePointerBuffer(ctx, addrs[offset:end], mode, cfg)
			if err != nil {
				return "", err
			}
			published[key] = addr
		}
		boxAddrs = append(boxAddrs, addr)
	}

	return collapseToRoot(ctx, boxAddrs, depth+1, mode, cfg)
}

// storePointerBuffer serializes children into a PointerBuffer, salts it
// from its own content, and publishes it via the write path mode
// selects.
func storePointerBuffer(ctx context.Context, children []transport.Address, mode WriteMode, cfg Config) (transport.Address, error) {
	addrStrings := make([]string, len(children))
	for i, a := range children {
		addrStrings[i] = a.String()
	}

	pb, err := wireformat.EncodePointerBuffer(addrStrings)
	if err != nil {
		return "", fmt.Errorf("tree: encode pointer buffer: %w", err)
	}

	salt := digest.Sum(pb)
	cfg.logger().Debugw("publishing pointer buffer", "children", len(children))
	return publish(ctx, pb, salt[:], mode, cfg)
}

// publish writes v under salt via the write path mode selects.
func publish(ctx context.Context, v []byte, salt []byte, mode WriteMode, cfg Config) (transport.Address, error) {
	if !mode.Mutable {
		addr, err := cfg.Transport.PutImmutable(ctx, transport.Record{V: v, Salt: salt})
		if err != nil {
			return "", pkgerrors.NewTransportError(err, "tree: put immutable record").WithOperation("PutImmutable")
		}
		return addr, nil
	}

	if cfg.Keys == nil {
		return "", pkgerrors.NewNoKeysError()
	}

	sig, err := cfg.Signer.Sign(*cfg.Keys, mode.Seq, salt, v)
	if err != nil {
		return "", fmt.Errorf("tree: sign record: %w", err)
	}

	seq := mode.Seq
	record := transport.Record{
		V:    v,
		Seq:  &seq,
		Salt: salt,
		K:    hex.EncodeToString(cfg.Keys.PublicKey),
		Sig:  sig,
	}
	opts := transport.MutableWriteOptions{PublicKey: cfg.Keys.PublicKey, Salt: salt, Seq: mode.Seq}

	addr, err := cfg.Transport.PutMutable(ctx, record, opts)
	if err != nil {
		return "", pkgerrors.NewTransportError(err, "tree: put mutable record").WithOperation("PutMutable")
	}
	return addr, nil
}
