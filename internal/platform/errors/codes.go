// Package errors provides coded domain errors with localized user messages.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Input errors
	CodeInputFormat Code = "INPUT_FORMAT"
	CodeInputClosed Code = "INPUT_CLOSED"
)
