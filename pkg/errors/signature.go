package errors

// SignatureError marks a record whose signature failed to verify under
// its claimed public key.
type SignatureError struct {
	*baseError
	address string
	pubKey  string
}

// NewSignatureError constructs a SignatureError.
func NewSignatureError(address, pubKey string) *SignatureError {
	return &SignatureError{
		baseError: NewBaseError(nil, ErrorCodeSignatureInvalid, "signature verification failed"),
		address:   address,
		pubKey:    pubKey,
	}
}

// Address returns the transport address of the offending record.
func (se *SignatureError) Address() string { return se.address }

// PubKey returns the hex-encoded public key the signature claimed to be
// signed under.
func (se *SignatureError) PubKey() string { return se.pubKey }
