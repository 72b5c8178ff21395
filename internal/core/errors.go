package core

import "errors"

// Error taxonomy for the review pipeline. Handlers use errors.Is against
// these sentinels to pick the response shape; every other failure maps to a
// generic server error.
var (
	// ErrInsufficientCredits is returned before any mutation when an
	// authenticated caller has a zero balance.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrInference marks a failed call to the inference service: transport
	// error, timeout, non-2xx status, or an envelope without the expected
	// text field. It aborts the whole request; a missing field is never
	// reported as deliberately empty output.
	ErrInference = errors.New("inference request failed")

	// ErrPersistence marks a failed store write after the model calls
	// succeeded.
	ErrPersistence = errors.New("persistence failed")

	// ErrUserNotFound is returned by the store for unknown user ids or
	// tokens.
	ErrUserNotFound = errors.New("user not found")
)
