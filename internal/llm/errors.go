package llm

import "errors"

var (
	// ErrUnavailable means the provider could not be reached or refused
	// the request.
	ErrUnavailable = errors.New("llm provider unavailable")

	// ErrTimeout means the call exceeded its task timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput means the provider responded but the payload was
	// empty or malformed.
	ErrInvalidOutput = errors.New("llm returned invalid output")

	// ErrRetryExhausted means all attempts failed.
	ErrRetryExhausted = errors.New("llm retries exhausted")
)
