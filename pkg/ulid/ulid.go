package ulid

import (
	"cmp"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/fuxingloh/ulidkit/pkg/crockford"
)

const (
	// EncodedSize is the length of the text form.
	EncodedSize = 26

	// BinarySize is the length of the binary form.
	BinarySize = 16

	// MaxTime is the largest timestamp, in Unix milliseconds, a ULID can hold:
	// +10889-08-02T05:31:50.655Z.
	MaxTime uint64 = 1<<48 - 1

	timestampOverflowMask uint64 = 0xFFFF_0000_0000_0000
	timestampHighMask     uint64 = 0xFFFF_FFFF_FFFF_0000
	randomHighMask        uint64 = 0xFFFF

	timeLen   = 10
	randomLen = 8
)

// ULID is an immutable 128-bit identifier. The zero value is Min.
type ULID struct {
	hi uint64
	lo uint64
}

var (
	// Min is 00000000000000000000000000.
	Min = ULID{}

	// Max is 7ZZZZZZZZZZZZZZZZZZZZZZZZZ.
	Max = ULID{hi: math.MaxUint64, lo: math.MaxUint64}
)

// FromParts builds a ULID from its most and least significant 64 bits.
func FromParts(hi, lo uint64) ULID {
	return ULID{hi: hi, lo: lo}
}

// FromBytes decodes the 16-byte big-endian form.
func FromBytes(b []byte) (ULID, error) {
	if len(b) != BinarySize {
		return ULID{}, ErrInvalidLength
	}
	return ULID{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}, nil
}

// Parse decodes the 26-symbol text form. Input is case-insensitive and
// accepts the Crockford aliases O, I, L and U.
func Parse(s string) (ULID, error) {
	if len(s) != EncodedSize {
		return ULID{}, ErrInvalidLength
	}

	ts, err := parseSegment(s, 0, timeLen)
	if err != nil {
		return ULID{}, err
	}
	if ts&timestampOverflowMask != 0 {
		return ULID{}, ErrTimestampOverflow
	}
	p1, err := parseSegment(s, timeLen, randomLen)
	if err != nil {
		return ULID{}, err
	}
	p2, err := parseSegment(s, timeLen+randomLen, randomLen)
	if err != nil {
		return ULID{}, err
	}

	return ULID{
		hi: ts<<16 | p1>>24,
		lo: p2 | p1<<40,
	}, nil
}

// parseSegment decodes s[off:off+n], reporting bad symbols at their offset
// in s rather than in the segment.
func parseSegment(s string, off, n int) (uint64, error) {
	v, err := crockford.ParseWord(s[off : off+n])
	if err != nil {
		var ce *crockford.CharacterError
		if errors.As(err, &ce) {
			return 0, &crockford.CharacterError{Char: ce.Char, Offset: ce.Offset + off}
		}
		return 0, err
	}
	return v, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ULID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// High returns the most significant 64 bits: the timestamp and the top 16
// random bits.
func (id ULID) High() uint64 { return id.hi }

// Low returns the least significant 64 bits of randomness.
func (id ULID) Low() uint64 { return id.lo }

// Millis returns the timestamp in Unix milliseconds.
func (id ULID) Millis() uint64 { return id.hi >> 16 }

// Time returns the timestamp as a UTC time.
func (id ULID) Time() time.Time { return MillisTime(id.Millis()) }

// Random returns the 10 random bytes.
func (id ULID) Random() []byte {
	b := id.Bytes()
	return b[6:]
}

// IsZero reports whether id is Min.
func (id ULID) IsZero() bool { return id == ULID{} }

// Equal reports whether id and other are the same value.
func (id ULID) Equal(other ULID) bool { return id == other }

// Compare returns -1, 0 or +1 ordering id against other as unsigned 128-bit
// integers.
func (id ULID) Compare(other ULID) int {
	if c := cmp.Compare(id.hi, other.hi); c != 0 {
		return c
	}
	return cmp.Compare(id.lo, other.lo)
}

// Increment returns id plus one, keeping the timestamp fixed. When the
// whole random part is ones it wraps to zero at the same timestamp instead
// of carrying into the timestamp.
func (id ULID) Increment() ULID {
	if id.lo != math.MaxUint64 {
		return ULID{hi: id.hi, lo: id.lo + 1}
	}
	if id.hi&randomHighMask != randomHighMask {
		return ULID{hi: id.hi + 1}
	}
	return ULID{hi: id.hi & timestampHighMask}
}

// Bytes returns the 16-byte big-endian form.
func (id ULID) Bytes() []byte {
	b := make([]byte, BinarySize)
	id.putBytes(b)
	return b
}

func (id ULID) putBytes(b []byte) {
	binary.BigEndian.PutUint64(b[:8], id.hi)
	binary.BigEndian.PutUint64(b[8:], id.lo)
}

// String returns the canonical upper-case text form.
func (id ULID) String() string {
	return string(id.appendString(make([]byte, 0, EncodedSize)))
}

// LowerString returns the text form in lower case.
func (id ULID) LowerString() string {
	return strings.ToLower(id.String())
}

func (id ULID) appendString(dst []byte) []byte {
	dst = crockford.AppendWord(dst, id.Millis(), timeLen)
	dst = crockford.AppendWord(dst, (id.hi&randomHighMask)<<24|id.lo>>40, randomLen)
	return crockford.AppendWord(dst, id.lo, randomLen)
}
