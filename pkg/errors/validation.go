package errors

// ValidationError marks a problem with caller-supplied input: a nil
// payload, a missing field, an option outside its accepted range.
type ValidationError struct {
	*baseError
	field    string
	rule     string
	provided any
}

// NewValidationError constructs a ValidationError.
func NewValidationError(err error, code ErrorCode, msg string) *ValidationError {
	return &ValidationError{baseError: NewBaseError(err, code, msg)}
}

// WithDetail attaches structured context while preserving the
// ValidationError type through the chain.
func (ve *ValidationError) WithDetail(key string, value any) *ValidationError {
	ve.baseError.WithDetail(key, value)
	return ve
}

// WithField records which field failed validation.
func (ve *ValidationError) WithField(field string) *ValidationError {
	ve.field = field
	return ve
}

// WithRule records which validation rule was violated.
func (ve *ValidationError) WithRule(rule string) *ValidationError {
	ve.rule = rule
	return ve
}

// WithProvided records the value that failed validation.
func (ve *ValidationError) WithProvided(value any) *ValidationError {
	ve.provided = value
	return ve
}

// Field returns the field that failed validation.
func (ve *ValidationError) Field() string { return ve.field }

// Rule returns the validation rule that was violated.
func (ve *ValidationError) Rule() string { return ve.rule }

// Provided returns the value that failed validation.
func (ve *ValidationError) Provided() any { return ve.provided }

// NewMissingInputError builds the ValidationError strata returns when
// Put or Get is called without the data it needs to proceed.
func NewMissingInputError(field string) *ValidationError {
	return NewValidationError(nil, ErrorCodeInvalidInput, "required input is missing").
		WithField(field).
		WithRule("required")
}
