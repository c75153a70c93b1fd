package entity

import "errors"

// Domain errors
var (
	// Form errors
	ErrUnknownField      = errors.New("unknown field")
	ErrInvalidOption     = errors.New("invalid option")
	ErrFormSubmitted     = errors.New("application is already submitted")
	ErrSubmitInProgress  = errors.New("submission is already in progress")
	ErrExtraNotAvailable = errors.New("extra notes are available only after submission")

	// Session errors
	ErrApplicationNotFound = errors.New("application not found")

	// Validation errors
	ErrMissingField  = errors.New("required field is missing")
	ErrInvalidFormat = errors.New("invalid format")
)
