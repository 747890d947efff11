package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidMeasure   = errors.New("invalid measure")
	ErrCorpusUnreadable = errors.New("corpus unreadable")
)
