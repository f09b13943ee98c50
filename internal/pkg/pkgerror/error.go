package pkgerror

import (
	"fmt"
	"net/http"
)

// Type says which side is at fault.
type Type int

const (
	TypeServer     Type = iota // Failures of the process or its libraries.
	TypeValidation             // The request or its upload was rejected.
)

func (t Type) String() string {
	switch t {
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is the stable identifier the router turns into an HTTP status.
type Code int

const (
	CodeInternal      Code = iota // 500
	CodeInvalidFormat             // 400, content could not be decoded
	CodeInvalidInput              // 400, request rejected before decoding
	CodeTooLarge                  // 413, body over the configured limit
)

func (c Code) String() string {
	switch c {
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeTooLarge:
		return "ERROR_CODE_TOO_LARGE"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error pairs a client-facing message with the underlying cause.
//
// Msg is what the client sees; Error and Unwrap expose the cause so callers
// can log it and match sentinels with errors.Is.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

func (e *Error) Error() string {
	switch {
	case e.err != nil:
		return e.err.Error()
	case e.msg != "":
		return e.msg
	case e.errType == TypeValidation:
		return "Validation violation"
	default:
		return "Internal error"
	}
}

// String is the verbose form used in logs.
func (e *Error) String() string {
	return fmt.Sprintf("Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType, e.code, e.msg, e.err)
}

func (e *Error) Msg() string {
	return e.msg
}

func (e *Error) Type() Type {
	return e.errType
}

func (e *Error) Code() Code {
	return e.code
}

func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps Code to an HTTP status.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func newError(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer hides err behind a generic 500 message.
func NewServer(err error) error {
	return newError(err, "Internal server error", TypeServer, CodeInternal)
}

// NewInvalidInput rejects a request. msg is shown to the client, err is kept
// for errors.Is and logging.
func NewInvalidInput(msg string, err error) error {
	return newError(err, msg, TypeValidation, CodeInvalidInput)
}

// NewInvalidFormat rejects content that could not be decoded.
func NewInvalidFormat(msg string, err error) error {
	return newError(err, msg, TypeValidation, CodeInvalidFormat)
}

// NewTooLarge rejects a body over the limit.
func NewTooLarge(msg string, err error) error {
	return newError(err, msg, TypeValidation, CodeTooLarge)
}
