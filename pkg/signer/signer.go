// Package signer implements the detached-signature primitive the
// mutable-entry protocol is built on. Strata treats the signing
// primitive as externally supplied (spec-wise, this package is a
// reference implementation of that external collaborator, not the
// subject of the chunking engine itself).
package signer

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/iamNilotpal/strata/internal/wireformat"
)

// KeyPair is the signing identity a mutable write is published under.
type KeyPair struct {
	PublicKey ed25519.PublicKey
	SecretKey ed25519.PrivateKey
}

// GenerateKeyPair creates a fresh ed25519 KeyPair, for tests and
// examples that need one without a caller-supplied identity.
func GenerateKeyPair() (KeyPair, error) {
	pub, sec, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, fmt.Errorf("generate keypair: %w", err)
	}
	return KeyPair{PublicKey: pub, SecretKey: sec}, nil
}

// Signer produces and verifies the detached signature over the
// canonical (seq, salt, v) encoding that authenticates a mutable
// record.
type Signer interface {
	// Sign returns the detached signature over (seq, salt, v) under
	// keys.SecretKey.
	Sign(keys KeyPair, seq int64, salt, v []byte) ([]byte, error)

	// Verify reports whether sig is a valid signature over (seq, salt,
	// v) under publicKey.
	Verify(publicKey ed25519.PublicKey, seq int64, salt, v, sig []byte) bool
}

// Ed25519Signer is the reference Signer implementation.
type Ed25519Signer struct{}

// Sign implements Signer.
func (Ed25519Signer) Sign(keys KeyPair, seq int64, salt, v []byte) ([]byte, error) {
	payload, err := wireformat.EncodeSignaturePayload(seq, salt, v)
	if err != nil {
		return nil, fmt.Errorf("encode signature payload: %w", err)
	}
	return ed25519.Sign(keys.SecretKey, payload), nil
}

// Verify implements Signer.
func (Ed25519Signer) Verify(publicKey ed25519.PublicKey, seq int64, salt, v, sig []byte) bool {
	payload, err := wireformat.EncodeSignaturePayload(seq, salt, v)
	if err != nil {
		return false
	}
	return ed25519.Verify(publicKey, payload, sig)
}
