package bio

import "errors"

// Structured failure kinds shared by all sequence operations. Callers
// should test with errors.Is; messages carry the detail.
var (
	// ErrInvalidSequence means the input contains characters outside
	// the accepted alphabet or is empty.
	ErrInvalidSequence = errors.New("invalid sequence")
	// ErrInvalidArgument means a non-sequence argument is out of range
	// or unknown (negative lengths, unknown tables or formats).
	ErrInvalidArgument = errors.New("invalid argument")
)
