package cli

import "errors"

// Common CLI errors
var (
	ErrNoInput          = errors.New("no input: pass arguments or pipe data on stdin")
	ErrUnknownIDFormat  = errors.New("not a ULID or UUID")
	ErrCountOutOfRange  = errors.New("count is out of range")
	ErrInvalidTimestamp = errors.New("invalid --time: want RFC 3339 or Unix milliseconds")
	ErrInvalidUUIDParts = errors.New("invalid UUID parts")
	ErrInvalidID        = errors.New("invalid id")
)
