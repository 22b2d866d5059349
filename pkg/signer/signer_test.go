package signer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	keys, err := GenerateKeyPair()
	require.NoError(t, err)

	s := Ed25519Signer{}
	sig, err := s.Sign(keys, 1, []byte("salt"), []byte("value"))
	require.NoError(t, err)

	assert.True(t, s.Verify(keys.PublicKey, 1, []byte("salt"), []byte("value"), sig))
}

func TestVerifyRejectsTamperedValue(t *testing.T) {
	keys, err := GenerateKeyPair()
	require.NoError(t, err)

	s := Ed25519Signer{}
	sig, err := s.Sign(keys, 1, []byte("salt"), []byte("value"))
	require.NoError(t, err)

	assert.False(t, s.Verify(keys.PublicKey, 1, []byte("salt"), []byte("tampered"), sig))
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	keys, err := GenerateKeyPair()
	require.NoError(t, err)
	other, err := GenerateKeyPair()
	require.NoError(t, err)

	s := Ed25519Signer{}
	sig, err := s.Sign(keys, 1, []byte("salt"), []byte("value"))
	require.NoError(t, err)

	assert.False(t, s.Verify(other.PublicKey, 1, []byte("salt"), []byte("value"), sig))
}

func TestVerifyRejectsWrongSeq(t *testing.T) {
	keys, err := GenerateKeyPair()
	require.NoError(t, err)

	s := Ed25519Signer{}
	sig, err := s.Sign(keys, 1, []byte("salt"), []byte("value"))
	require.NoError(t, err)

	assert.False(t, s.Verify(keys.PublicKey, 2, []byte("salt"), []byte("value"), sig))
}
