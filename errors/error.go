package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error.
type ErrorType string

const (
	// NotFoundError indicates a not found error.
	NotFoundError ErrorType = "NotFound"
	// InvalidInputError indicates an invalid input error.
	InvalidInputError ErrorType = "InvalidInput"
	// InternalError indicates an internal error.
	InternalError ErrorType = "Internal"
	// InvalidDataErr indicates a data validation error.
	InvalidDataErr ErrorType = "DataInvalid"
	// MalformedInputError indicates a binary blob that does not split into whole records.
	MalformedInputError ErrorType = "MalformedInput"
	// FieldOverflowError indicates a value that does not fit the declared width of its field.
	FieldOverflowError ErrorType = "FieldOverflow"
	// IndexOutOfRangeError indicates a merkle leaf index outside the fixed tree capacity.
	IndexOutOfRangeError ErrorType = "IndexOutOfRange"
	// OddPairCountError indicates an interleaved index/value list with a missing value.
	OddPairCountError ErrorType = "OddPairCount"
)

var (
	ErrNotImplemented = New(InternalError, "not implemented")
	ErrInvalidInput   = New(InvalidInputError, "invalid input")

	// ErrMalformedInput is returned when the length of an order blob is not a multiple of the record size.
	ErrMalformedInput = New(MalformedInputError, "input length is not a multiple of the record size")
	// ErrFieldOverflow is returned when a decoded or encoded value exceeds its declared field width.
	ErrFieldOverflow = New(FieldOverflowError, "value exceeds declared field width")
	// ErrIndexOutOfRange is returned when a leaf index is outside the tree capacity.
	ErrIndexOutOfRange = New(IndexOutOfRangeError, "leaf index out of range")
	// ErrOddPairCount is returned when an interleaved argument list has an odd length.
	ErrOddPairCount = New(OddPairCountError, "every index must be paired with exactly one value")

	ErrCommitmentNotFound = New(NotFoundError, "commitment not found")
	// ErrEmptyTree is returned when a zero Tree, one never built nor unmarshalled, is queried.
	ErrEmptyTree = Data("tree has not been built")
	// ErrTreePopulated is returned when unmarshalling into a tree that already holds nodes.
	ErrTreePopulated = Data("tree is already populated")

	ErrValidFromAfterValidUntil = Data("validFrom must not be after validUntil")
	ErrZeroPriceDenominator     = Data("price denominator must be nonzero")
	ErrSameBuyAndSellToken      = Data("buy and sell token must differ")
)

// TypedError represents an error with a specific type.
type TypedError struct {
	Type ErrorType
	Err  error
}

// Is returns true if err, or any error it wraps, is a *TypedError of the given type.
func Is(err error, typ ErrorType) bool {
	var e *TypedError
	if errors.As(err, &e) {
		return e.Type == typ
	}
	return false
}

// Error implements the error interface for TypedError.
func (e *TypedError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *TypedError) Unwrap() error {
	return e.Err
}

// New creates a new TypedError with the given error type and message.
func New(errorType ErrorType, message string) *TypedError {
	return &TypedError{Type: errorType, Err: errors.New(message)}
}

// Newf creates a new TypedError with the given error type and message.
func Newf(errorType ErrorType, message string, a ...any) *TypedError {
	return &TypedError{Type: errorType, Err: fmt.Errorf(message, a...)}
}

// NewInternal creates a new internal error with the given message.
func NewInternal(message string) *TypedError {
	return &TypedError{Type: InternalError, Err: errors.New(message)}
}

// Wrap creates a new TypedError by wrapping an existing error with an additional message.
func Wrap(errorType ErrorType, err error, message string) *TypedError {
	return &TypedError{Type: errorType, Err: fmt.Errorf("%s: %w", message, err)}
}

// Data creates a new invalid data error
func Data(message string, a ...any) *TypedError {
	return &TypedError{Type: InvalidDataErr, Err: fmt.Errorf(message, a...)}
}

// Overflow creates a FieldOverflow error for the given record and field.
func Overflow(record int, field string, bits int) *TypedError {
	return &TypedError{
		Type: FieldOverflowError,
		Err:  fmt.Errorf("record %d: field %s: %w (%d bits)", record, field, ErrFieldOverflow.Err, bits),
	}
}

// OutOfRange creates an IndexOutOfRange error for the given index.
func OutOfRange(index, capacity int) *TypedError {
	return &TypedError{
		Type: IndexOutOfRangeError,
		Err:  fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange.Err, index, capacity),
	}
}

// Malformed creates a MalformedInput error for an input of the given length.
func Malformed(length, recordSize int) *TypedError {
	return &TypedError{
		Type: MalformedInputError,
		Err:  fmt.Errorf("%w: %d bytes, record size %d", ErrMalformedInput.Err, length, recordSize),
	}
}
