package types

import "errors"

// Every failure is reported wrapped around one of these, match with errors.Is.
var (
	ErrInputParse         = errors.New("input error")
	ErrFileNotFound       = errors.New("unable to open file")
	ErrMalformedHeader    = errors.New("malformed header")
	ErrShapeMismatch      = errors.New("shape mismatch")
	ErrLabelCountMismatch = errors.New("label count mismatch")
	ErrTruncatedData      = errors.New("truncated data")
	ErrMalformedData      = errors.New("malformed data")
	ErrUnknownVariable    = errors.New("unknown variable")
)
