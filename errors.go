package mandel

import "errors"

var (
	// ErrInvalidArgument reports a non-positive grain size, malformed
	// bounds or a buffer that does not cover the requested rectangle.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResourceExhausted reports that the tile executor cannot accept
	// work, e.g. because its worker pool was already closed.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrEmptySweep is returned when an optimum is requested from a sweep
	// that recorded no samples.
	ErrEmptySweep = errors.New("empty sweep")
)
