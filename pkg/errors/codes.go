package errors

// ErrorCode standardizes the failure categories a caller can switch on
// without parsing error messages.
type ErrorCode string

const (
	// ErrorCodeInternal covers failures that don't fit a more specific
	// category — bugs or invariant violations, not caller mistakes.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"

	// ErrorCodeInvalidInput marks a validation failure on caller-supplied
	// data or options.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrorCodeConfigMissing marks a required piece of configuration —
	// transport, keys — absent at construction time.
	ErrorCodeConfigMissing ErrorCode = "CONFIG_MISSING"

	// ErrorCodeCapacityExceeded marks a payload whose fragment count
	// would require a pointer-tree deeper than maxIndirections allows.
	ErrorCodeCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"

	// ErrorCodeSequenceConflict marks a mutable write whose seq is not
	// exactly one greater than the address's currently stored seq.
	ErrorCodeSequenceConflict ErrorCode = "SEQUENCE_CONFLICT"

	// ErrorCodeSignatureInvalid marks a mutable write or fetched record
	// whose signature failed verification.
	ErrorCodeSignatureInvalid ErrorCode = "SIGNATURE_INVALID"

	// ErrorCodeTransportUnavailable marks a failure originating in the
	// underlying transport rather than in strata's own logic.
	ErrorCodeTransportUnavailable ErrorCode = "TRANSPORT_UNAVAILABLE"
)
