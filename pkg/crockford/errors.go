package crockford

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidCharacter is wrapped by every CharacterError.
	ErrInvalidCharacter = errors.New("crockford: invalid character")

	// ErrWordTooLong is returned by ParseWord for inputs longer than MaxWordLen.
	ErrWordTooLong = errors.New("crockford: word exceeds " + strconv.Itoa(MaxWordLen) + " symbols")
)

// CharacterError reports a byte outside the alphabet and where it was found.
type CharacterError struct {
	Char   byte
	Offset int
}

func (e *CharacterError) Error() string {
	return "crockford: invalid character " + strconv.QuoteRune(rune(e.Char)) + " at offset " + strconv.Itoa(e.Offset)
}

func (e *CharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
