// Package memtransport implements the reference in-memory
// pkg/transport.Transport used by strata's own tests and by callers who
// want a working backend without standing up a real DHT client. It
// keeps every record in a process-local map and enforces the same
// addressing and sequencing rules a real transport would.
package memtransport

import (
	"context"
	"encoding/hex"
	"sync"

	"github.com/iamNilotpal/strata/pkg/digest"
	pkgerrors "github.com/iamNilotpal/strata/pkg/errors"
	"github.com/iamNilotpal/strata/pkg/signer"
	"github.com/iamNilotpal/strata/pkg/transport"
	"go.uber.org/zap"
)

// id identifies this transport in the ID field of every Record it
// returns, the way a real transport would tag reads with which backend
// served them.
const id = "memory"

// Transport is an in-memory, process-local implementation of
// pkg/transport.Transport. Writes to the same address serialize against
// each other through a per-address lock; writes to different addresses
// proceed independently. The zero value is not usable; construct one
// with New.
type Transport struct {
	mu      sync.Mutex // guards records and locks, not the critical section itself
	records map[transport.Address]transport.Record
	locks   map[transport.Address]*sync.Mutex
	signer  signer.Signer
	log     *zap.SugaredLogger
}

// New returns a ready-to-use Transport. A nil logger is replaced with a
// no-op logger.
func New(log *zap.SugaredLogger) *Transport {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Transport{
		records: make(map[transport.Address]transport.Record),
		locks:   make(map[transport.Address]*sync.Mutex),
		signer:  signer.Ed25519Signer{},
		log:     log,
	}
}

// lockFor returns the per-address mutex for addr, creating it if this is
// the first operation to touch addr.
func (t *Transport) lockFor(addr transport.Address) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.locks[addr]
	if !ok {
		l = &sync.Mutex{}
		t.locks[addr] = l
	}
	return l
}

// Start is a no-op: the in-memory transport holds its records in a map
// already allocated by New, so there is nothing left to set up.
func (t *Transport) Start(ctx context.Context) error {
	t.log.Debugw("starting in-memory transport")
	return nil
}

// Stop is a no-op: the in-memory transport owns no external resource —
// connection, file handle, goroutine — that would need releasing. It
// deliberately does not clear records, so a caller reusing a Transport
// across a Stop/Start pair keeps its data.
func (t *Transport) Stop(ctx context.Context) error {
	t.log.Debugw("stopping in-memory transport")
	return nil
}

// PutImmutable stores record under digest(record.V), satisfying the
// content-addressing guarantee that two calls with equal V produce
// equal addresses.
func (t *Transport) PutImmutable(ctx context.Context, record transport.Record) (transport.Address, error) {
	sum := digest.Sum(record.V)
	addr := transport.NewAddress(sum[:])

	lock := t.lockFor(addr)
	lock.Lock()
	defer lock.Unlock()

	record.ID = id
	t.store(addr, record)
	t.log.Debugw("stored immutable record", "address", addr, "bytes", len(record.V))
	return addr, nil
}

// PutMutable verifies record.Sig against opts before storing it at
// digest(opts.PublicKey ‖ opts.Salt), and enforces that opts.Seq is
// exactly one more than whatever seq is currently stored at that
// address — or, for an address with no stored record yet, any seq is
// accepted as the first write.
func (t *Transport) PutMutable(ctx context.Context, record transport.Record, opts transport.MutableWriteOptions) (transport.Address, error) {
	pubKeyHex := hex.EncodeToString(opts.PublicKey)
	sum := digest.Sum(append(append([]byte{}, opts.PublicKey...), opts.Salt...))
	addr := transport.NewAddress(sum[:])

	if !t.signer.Verify(opts.PublicKey, opts.Seq, opts.Salt, record.V, record.Sig) {
		return "", pkgerrors.NewSignatureError(addr.String(), pubKeyHex)
	}

	lock := t.lockFor(addr)
	lock.Lock()
	defer lock.Unlock()

	stored, hadStored := t.load(addr)
	if hadStored && stored.Seq != nil {
		if opts.Seq != *stored.Seq+1 {
			return "", pkgerrors.NewSequenceError(addr.String(), opts.Seq, *stored.Seq, true)
		}
	}

	record.ID = id
	t.store(addr, record)
	t.log.Debugw("stored mutable record", "address", addr, "seq", opts.Seq, "bytes", len(record.V))
	return addr, nil
}

// Get returns the record stored at address, or the not-found sentinel
// if none exists.
func (t *Transport) Get(ctx context.Context, address transport.Address) (transport.Record, error) {
	record, ok := t.load(address)
	if !ok {
		return transport.NotFound(id), nil
	}
	return record, nil
}

// Len reports how many records this transport currently holds, for
// tests that want to assert on orphaned or reused chunk counts.
func (t *Transport) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// load and store serialize access to the records map itself. They are
// deliberately separate from the per-address locks in lockFor: those
// guard the read-modify-write sequence of a sequenced write, while these
// guard the map data structure against concurrent access from unrelated
// addresses.
func (t *Transport) load(addr transport.Address) (transport.Record, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	record, ok := t.records[addr]
	return record, ok
}

func (t *Transport) store(addr transport.Address, record transport.Record) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records[addr] = record
}
