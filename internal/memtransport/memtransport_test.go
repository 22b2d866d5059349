package memtransport

import (
	"context"
	"encoding/hex"
	"sync"
	"testing"

	pkgerrors "github.com/iamNilotpal/strata/pkg/errors"
	"github.com/iamNilotpal/strata/pkg/signer"
	"github.com/iamNilotpal/strata/pkg/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, keys signer.KeyPair, seq int64, salt, v []byte) []byte {
	t.Helper()
	sig, err := (signer.Ed25519Signer{}).Sign(keys, seq, salt, v)
	require.NoError(t, err)
	return sig
}

func TestStartStopAreNoOpsThatPreserveData(t *testing.T) {
	tr := New(nil)
	require.NoError(t, tr.Start(context.Background()))

	_, err := tr.PutImmutable(context.Background(), transport.Record{V: []byte("furbie")})
	require.NoError(t, err)

	require.NoError(t, tr.Stop(context.Background()))
	assert.Equal(t, 1, tr.Len())
}

func TestGetUnknownAddressReturnsSentinel(t *testing.T) {
	tr := New(nil)
	record, err := tr.Get(context.Background(), transport.Address("deadbeef"))
	require.NoError(t, err)
	assert.False(t, record.Found())
	assert.Equal(t, id, record.ID)
}

func TestMutableWriteThenReadRoundTrip(t *testing.T) {
	keys, err := signer.GenerateKeyPair()
	require.NoError(t, err)

	tr := New(nil)
	salt := []byte("pineapple-salt")
	v := []byte("furbie")
	sig := sign(t, keys, 1, salt, v)

	addr, err := tr.PutMutable(context.Background(), transport.Record{V: v, Salt: salt, Sig: sig, K: hex.EncodeToString(keys.PublicKey)}, transport.MutableWriteOptions{PublicKey: keys.PublicKey, Salt: salt, Seq: 1})
	require.NoError(t, err)

	got, err := tr.Get(context.Background(), addr)
	require.NoError(t, err)
	assert.Equal(t, v, got.V)
	require.NotNil(t, got.Seq)
	assert.Equal(t, int64(1), *got.Seq)
	assert.Equal(t, salt, got.Salt)
	assert.Equal(t, hex.EncodeToString(keys.PublicKey), got.K)
	assert.Equal(t, id, got.ID)
}

func TestSequenceConflictThenAdvance(t *testing.T) {
	keys, err := signer.GenerateKeyPair()
	require.NoError(t, err)
	tr := New(nil)
	salt := []byte("pineapple-salt")

	v1 := []byte("furbie")
	put := func(seq int64, v []byte) (transport.Address, error) {
		sig := sign(t, keys, seq, salt, v)
		return tr.PutMutable(context.Background(), transport.Record{V: v, Salt: salt, Sig: sig, K: hex.EncodeToString(keys.PublicKey)}, transport.MutableWriteOptions{PublicKey: keys.PublicKey, Salt: salt, Seq: seq})
	}

	_, err = put(1, v1)
	require.NoError(t, err)

	_, err = put(1, v1)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsSequenceError(err))

	v2 := []byte("furbie-foo")
	addr, err := put(2, v2)
	require.NoError(t, err)

	got, err := tr.Get(context.Background(), addr)
	require.NoError(t, err)
	assert.Equal(t, v2, got.V)
	assert.Equal(t, int64(2), *got.Seq)
}

func TestPutMutableRejectsBadSignature(t *testing.T) {
	keys, err := signer.GenerateKeyPair()
	require.NoError(t, err)
	tr := New(nil)
	salt := []byte("s")

	_, err = tr.PutMutable(context.Background(), transport.Record{V: []byte("v"), Salt: salt, Sig: []byte("not-a-signature")}, transport.MutableWriteOptions{PublicKey: keys.PublicKey, Salt: salt, Seq: 1})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsSignatureError(err))
}

func TestPutImmutableIsContentAddressed(t *testing.T) {
	tr := New(nil)
	addr1, err := tr.PutImmutable(context.Background(), transport.Record{V: []byte("furbie")})
	require.NoError(t, err)
	addr2, err := tr.PutImmutable(context.Background(), transport.Record{V: []byte("furbie")})
	require.NoError(t, err)
	assert.Equal(t, addr1, addr2)

	addr3, err := tr.PutImmutable(context.Background(), transport.Record{V: []byte("furbie-foo")})
	require.NoError(t, err)
	assert.NotEqual(t, addr1, addr3)
}

func TestConcurrentWritesToDifferentAddressesDoNotBlock(t *testing.T) {
	tr := New(nil)
	var wg sync.WaitGroup
	errs := make([]error, 20)

	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tr.PutImmutable(context.Background(), transport.Record{V: []byte{byte(i)}})
			errs[i] = err
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 20, tr.Len())
}

func TestConcurrentWritesToSameAddressSerialize(t *testing.T) {
	keys, err := signer.GenerateKeyPair()
	require.NoError(t, err)
	tr := New(nil)
	salt := []byte("shared-salt")

	var wg sync.WaitGroup
	successes := make([]bool, 2)
	for i, seq := range []int64{1, 1} {
		idx, s := i, seq
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := []byte("value")
			sig := sign(t, keys, s, salt, v)
			_, err := tr.PutMutable(context.Background(), transport.Record{V: v, Salt: salt, Sig: sig, K: hex.EncodeToString(keys.PublicKey)}, transport.MutableWriteOptions{PublicKey: keys.PublicKey, Salt: salt, Seq: s})
			successes[idx] = err == nil
		}()
	}
	wg.Wait()

	onlyOne := 0
	for _, ok := range successes {
		if ok {
			onlyOne++
		}
	}
	assert.Equal(t, 1, onlyOne)
}
