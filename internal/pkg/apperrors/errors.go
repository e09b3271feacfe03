package apperrors

import "errors"

// Error kinds. Module errors wrap one of these so the transport layer can
// map them to a status without knowing every module sentinel.
var (
	ErrNotFound        = errors.New("not found")
	ErrBadRequest      = errors.New("bad request")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrIO              = errors.New("i/o failure")
	ErrConflict        = errors.New("conflict")
)

// CustomError attaches a message to an error kind.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// New creates a CustomError of the given kind.
func New(kind error, message string) *CustomError {
	return &CustomError{Err: kind, Message: message}
}

func NewBadRequestError(message string) error {
	return New(ErrBadRequest, message)
}

// NewIOError wraps a filesystem failure as an ErrIO kind while keeping the
// cause reachable through errors.Is/As.
func NewIOError(message string, cause error) error {
	return &ioError{CustomError: CustomError{Err: ErrIO, Message: message}, cause: cause}
}

type ioError struct {
	CustomError
	cause error
}

func (e *ioError) Error() string {
	if e.cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.cause.Error()
}

func (e *ioError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrIO}
	}
	return []error{ErrIO, e.cause}
}
