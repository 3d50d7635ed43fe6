package id

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/fuxingloh/ulidkit/pkg/crockford"
	"github.com/fuxingloh/ulidkit/pkg/ulid"
	"github.com/google/uuid"
)

// Validation patterns.
const (
	// ULIDPattern matches canonical ULIDs; match it against upper-cased input.
	ULIDPattern = `^[0-7][0-9A-HJKMNP-TV-Z]{25}$`
	// UUIDPattern matches lowercase hyphenated UUIDs.
	UUIDPattern = `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`
	// ShortPattern matches Short IDs.
	ShortPattern = `^[0-9a-hjkmnp-tv-z]{12}$`

	// ShortLength is the length of a Short ID.
	ShortLength = 12

	shortBytes = 7
)

var (
	ulidRegex  = regexp.MustCompile(ULIDPattern)
	uuidRegex  = regexp.MustCompile(UUIDPattern)
	shortRegex = regexp.MustCompile(ShortPattern)
)

// defaultULID is shared by every caller of NewULID.
var defaultULID = ulid.NewMonotonic(ulid.NewGenerator(), ulid.WithStrict())

// clock is read by NewULID; tests replace it.
var clock = time.Now

// --- ULID ---

// NewULID returns the next value from the process-wide monotonic generator.
// Within one millisecond values increase by one. A clock that reads earlier
// than the last value is held at the last value's millisecond. If the random
// part of a millisecond is exhausted it moves to the next one: immediately
// when already ahead of the clock, otherwise after the clock ticks.
func NewULID() ulid.ULID {
	for {
		now := ulid.Timestamp(clock())
		id, ms, err := defaultULID.NextClamped(now)
		if err == nil {
			return id
		}
		if !errors.Is(err, ulid.ErrMonotonicOverflow) {
			// Only a clock beyond year 10889 can fail here.
			panic(fmt.Sprintf("id: generate ULID: %v", err))
		}
		if ms > now {
			id, err = defaultULID.NextAt(ms + 1)
			switch {
			case err == nil:
				return id
			case !errors.Is(err, ulid.ErrMonotonicOverflow):
				panic(fmt.Sprintf("id: generate ULID: %v", err))
			}
			continue
		}
		time.Sleep(time.Millisecond / 8)
	}
}

// IsValidULID checks if a string is a valid ULID. Lower-case input and the
// Crockford aliases O, I, L and U are accepted.
func IsValidULID(s string) bool {
	_, err := ulid.Parse(s)
	return err == nil
}

// IsCanonicalULID reports whether s is a ULID exactly as this package
// prints them: upper case, no aliases.
func IsCanonicalULID(s string) bool {
	return ulidRegex.MatchString(s)
}

// ULIDTime extracts the timestamp from a ULID.
func ULIDTime(s string) (time.Time, error) {
	id, err := ulid.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ULID: %w", err)
	}
	return id.Time(), nil
}

// --- Short ---

// Short generates a 12-character lowercase Crockford Base32 ID from 7 random
// bytes. It has no timestamp and no ordering.
func Short() string {
	b := make([]byte, shortBytes)
	_, _ = rand.Read(b)
	return crockford.LowerEncoding.EncodeToString(b)
}

// IsValidShort reports whether s has the Short ID shape.
func IsValidShort(s string) bool {
	return shortRegex.MatchString(s)
}

// --- UUID ---

// UUID generates a UUID v4 (random).
// Returns a string in the format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
func UUID() string {
	return uuid.NewString()
}

// IsValidUUID reports whether s is a UUID in lowercase hyphenated form, as
// the UUID helpers print them.
func IsValidUUID(s string) bool {
	return uuidRegex.MatchString(s)
}

// UUIDBase64 generates a UUID v4 encoded as 22 characters of unpadded
// URL-safe Base64.
func UUIDBase64() string {
	u := uuid.New()
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// MillisUUID returns a UUID whose first 64 bits are the current Unix time in
// milliseconds and whose last 64 bits are random.
func MillisUUID() string {
	var lo [8]byte
	_, _ = rand.Read(lo[:])
	return CreateUUID(uint64(time.Now().UnixMilli()), binary.BigEndian.Uint64(lo[:]))
}

// CreateUUID formats two 64-bit halves as a UUID.
func CreateUUID(hi, lo uint64) string {
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], hi)
	binary.BigEndian.PutUint64(u[8:], lo)
	return u.String()
}

// CreateUUIDFromInts formats four 32-bit words as a UUID, most significant
// first.
func CreateUUIDFromInts(a, b, c, d uint32) string {
	return CreateUUID(uint64(a)<<32|uint64(b), uint64(c)<<32|uint64(d))
}

// CreateUUIDFromBytes formats exactly 16 bytes as a UUID.
func CreateUUIDFromBytes(b []byte) (string, error) {
	u, err := uuid.FromBytes(b)
	if err != nil {
		return "", fmt.Errorf("create UUID: %w", err)
	}
	return u.String(), nil
}
