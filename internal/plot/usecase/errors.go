package usecase

import (
	"errors"
	"fmt"

	"github.com/shandysiswandi/xlplot/internal/pkg/pkgerror"
)

// Sentinels for each way an upload is rejected. Every error returned by
// Usecase.Plot wraps exactly one of them.
var (
	ErrMissingField         = errors.New("file field missing")
	ErrEmptyFilename        = errors.New("filename empty")
	ErrUnsupportedExtension = errors.New("extension not allowed")
	ErrParseFailure         = errors.New("spreadsheet unreadable")
	ErrInsufficientShape    = errors.New("too few columns or rows")
)

// Client-facing messages.
const (
	MsgMissingField         = "No file part"
	MsgEmptyFilename        = "No file selected"
	MsgUnsupportedExtension = "Only .xls or .xlsx allowed"
	MsgParseFailurePrefix   = "Failed to read Excel: "
	MsgInsufficientShape    = "Excel must have at least two columns and one row"
)

// NewMissingFieldError reports a request without a "file" part. It is exported
// for transports that detect the condition before calling Plot.
func NewMissingFieldError() error {
	return pkgerror.NewInvalidInput(MsgMissingField, ErrMissingField)
}

func newEmptyFilenameError() error {
	return pkgerror.NewInvalidInput(MsgEmptyFilename, ErrEmptyFilename)
}

func newUnsupportedExtensionError(filename string) error {
	return pkgerror.NewInvalidInput(MsgUnsupportedExtension, fmt.Errorf("%w: %q", ErrUnsupportedExtension, filename))
}

func newParseFailureError(cause error) error {
	return pkgerror.NewInvalidFormat(MsgParseFailurePrefix+cause.Error(), fmt.Errorf("%w: %w", ErrParseFailure, cause))
}

func newInsufficientShapeError(width, height int) error {
	return pkgerror.NewInvalidInput(MsgInsufficientShape, fmt.Errorf("%w: %d columns, %d rows", ErrInsufficientShape, width, height))
}
