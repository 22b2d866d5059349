package errors

import stdErrors "errors"

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return stdErrors.As(err, &ve)
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return stdErrors.As(err, &ce)
}

// IsCapacityError reports whether err is, or wraps, a CapacityError.
func IsCapacityError(err error) bool {
	var ce *CapacityError
	return stdErrors.As(err, &ce)
}

// IsSequenceError reports whether err is, or wraps, a SequenceError.
func IsSequenceError(err error) bool {
	var se *SequenceError
	return stdErrors.As(err, &se)
}

// IsSignatureError reports whether err is, or wraps, a SignatureError.
func IsSignatureError(err error) bool {
	var se *SignatureError
	return stdErrors.As(err, &se)
}

// IsTransportError reports whether err is, or wraps, a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return stdErrors.As(err, &te)
}

// AsSequenceError extracts a SequenceError from err's chain, if present.
func AsSequenceError(err error) (*SequenceError, bool) {
	var se *SequenceError
	if stdErrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// AsCapacityError extracts a CapacityError from err's chain, if present.
func AsCapacityError(err error) (*CapacityError, bool) {
	var ce *CapacityError
	if stdErrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// coded is implemented by every error type in this package via the
// embedded baseError's promoted Code method.
type coded interface {
	Code() ErrorCode
}

// GetErrorCode extracts the ErrorCode carried by err, defaulting to
// ErrorCodeInternal for errors that don't carry one.
func GetErrorCode(err error) ErrorCode {
	var c coded
	if stdErrors.As(err, &c) {
		return c.Code()
	}
	return ErrorCodeInternal
}
