package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Login errors
	ErrEmptyUsername   = fmt.Errorf("username cannot be empty")
	ErrBadCredentials  = fmt.Errorf("incorrect password")
	ErrAccountNotFound = fmt.Errorf("account not found")

	// Domain errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMoodNotFound    = fmt.Errorf("mood not found")
	ErrIndexOutOfRange = fmt.Errorf("song index out of range")

	// Storage errors
	ErrStorage            = fmt.Errorf("storage failure")
	ErrMalformedRecord    = fmt.Errorf("malformed account record")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
