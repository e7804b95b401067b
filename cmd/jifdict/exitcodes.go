package main

import "jifdict/internal/errors"

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error
	ExitDataError   = 3 // Input could not be loaded or has an unsupported format
	ExitNotFound    = 4 // Lookup miss
)

func exitCodeFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeConfigInvalid:
		return ExitConfigError
	case errors.CodeLoadFailure, errors.CodeUnsupportedFormat:
		return ExitDataError
	case errors.CodeNotFound:
		return ExitNotFound
	default:
		return ExitError
	}
}
