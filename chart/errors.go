package chart

import "errors"

var (
	ErrUnknownFormat  = errors.New("unknown export format")
	ErrUnknownBackend = errors.New("unknown export backend")
	// ErrPrint wraps failures of the print command.
	ErrPrint = errors.New("printing failed")
)
