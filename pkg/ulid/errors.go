package ulid

import (
	"errors"

	"github.com/fuxingloh/ulidkit/pkg/crockford"
)

var (
	// ErrInvalidLength is returned when text is not 26 bytes or binary data is
	// not 16 bytes.
	ErrInvalidLength = errors.New("ulid: invalid length")

	// ErrInvalidCharacter is returned, wrapped in a *crockford.CharacterError,
	// when text contains a symbol outside the alphabet.
	ErrInvalidCharacter = crockford.ErrInvalidCharacter

	// ErrTimestampOverflow is returned for timestamps at or beyond 2^48
	// milliseconds, either passed in directly or decoded from text whose
	// first symbol is above '7'.
	ErrTimestampOverflow = errors.New("ulid: timestamp exceeds 48 bits")

	// ErrMonotonicOverflow is returned by strictly monotonic generation when
	// the random part of the previous value cannot be incremented within the
	// same millisecond.
	ErrMonotonicOverflow = errors.New("ulid: monotonic random part overflow")

	// ErrScanValue is returned by Scan for unsupported source types.
	ErrScanValue = errors.New("ulid: source value must be a string or byte slice")
)
