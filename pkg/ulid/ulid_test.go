package ulid

import (
	"bytes"
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/fuxingloh/ulidkit/pkg/crockford"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomULID returns an arbitrary value, including ones with the top
// random bits set.
func randomULID(r *rand.Rand) ULID {
	return FromParts(r.Uint64(), r.Uint64())
}

func TestParse_Known(t *testing.T) {
	t.Parallel()

	id, err := Parse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.NoError(t, err)

	assert.Equal(t, uint64(0x01563e3ab5d3d676), id.High())
	assert.Equal(t, uint64(0x4c61efb99302bd5b), id.Low())
	assert.Equal(t, uint64(1469922850259), id.Millis())
	assert.Equal(t, time.Date(2016, 7, 30, 23, 54, 10, 259_000_000, time.UTC), id.Time())
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", id.String())
	assert.Equal(t, "01arz3ndektsv4rrffq69g5fav", id.LowerString())
	assert.Equal(t,
		[]byte{0x01, 0x56, 0x3e, 0x3a, 0xb5, 0xd3, 0xd6, 0x76, 0x4c, 0x61, 0xef, 0xb9, 0x93, 0x02, 0xbd, 0x5b},
		id.Bytes())
	assert.Equal(t, []byte{0xd6, 0x76, 0x4c, 0x61, 0xef, 0xb9, 0x93, 0x02, 0xbd, 0x5b}, id.Random())
}

func TestParse_Bounds(t *testing.T) {
	t.Parallel()

	minID, err := Parse("00000000000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, Min, minID)
	assert.True(t, minID.IsZero())

	maxID, err := Parse("7ZZZZZZZZZZZZZZZZZZZZZZZZZ")
	require.NoError(t, err)
	assert.Equal(t, Max, maxID)
	assert.Equal(t, "7ZZZZZZZZZZZZZZZZZZZZZZZZZ", maxID.String())
	assert.Equal(t, MaxTime, maxID.Millis())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrInvalidLength},
		{"too short", "01ARZ3NDEKTSV4RRFFQ69G5FA", ErrInvalidLength},
		{"too long", "01ARZ3NDEKTSV4RRFFQ69G5FAVX", ErrInvalidLength},
		{"short overflow", "8000000000000000000000000", ErrInvalidLength},
		{"timestamp 2^48", "80000000000000000000000000", ErrTimestampOverflow},
		{"max first symbol", "ZZZZZZZZZZZZZZZZZZZZZZZZZZ", ErrTimestampOverflow},
		{"dash", "01ARZ3NDE-KTSV4RRFFQ69G5FA", ErrInvalidCharacter},
		{"space", "01ARZ3NDEK TSV4RRFFQ69G5FA", ErrInvalidCharacter},
		{"uuid", "550e8400-e29b-41d4-a716-44", ErrInvalidCharacter},
		{"multibyte", "01ARZ3NDEKTSV4RRFFQ69G5Fé", ErrInvalidCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			id, err := Parse(tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, ULID{}, id, "failed parse must not return a partial value")
		})
	}
}

func TestParse_CharacterOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		offset int
	}{
		{"!1ARZ3NDEKTSV4RRFFQ69G5FAV", 0},
		{"01ARZ3NDEK!SV4RRFFQ69G5FAV", 10},
		{"01ARZ3NDEKTSV4RRFFQ69G5FA!", 25},
	}
	for _, tt := range tests {
		_, err := Parse(tt.input)
		var ce *crockford.CharacterError
		require.True(t, errors.As(err, &ce), "%q: %v", tt.input, err)
		assert.Equal(t, byte('!'), ce.Char)
		assert.Equal(t, tt.offset, ce.Offset)
	}
}

func TestParse_CaseAndAliases(t *testing.T) {
	t.Parallel()

	lower, err := Parse("01arz3ndektsv4rrffq69g5fav")
	require.NoError(t, err)
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", lower.String())

	aliased, err := Parse("O1ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.NoError(t, err)
	assert.Equal(t, lower, aliased)

	withI, err := Parse("0IARZ3NDEKTSV4RRFFQ69G5FAV")
	require.NoError(t, err)
	assert.Equal(t, lower, withI)
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV") })
	assert.Panics(t, func() { MustParse("not a ulid") })
}

func TestFromBytes(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 15, 17, 26} {
		_, err := FromBytes(make([]byte, n))
		require.ErrorIs(t, err, ErrInvalidLength, "len=%d", n)
	}

	b := bytes.Repeat([]byte{0xff}, 16)
	id, err := FromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, Max, id)
}

func TestRoundTrip_Bytes(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 10_000; i++ {
		b := make([]byte, 16)
		for j := range b {
			b[j] = byte(r.Uint32())
		}
		id, err := FromBytes(b)
		require.NoError(t, err)
		again, err := FromBytes(id.Bytes())
		require.NoError(t, err)
		require.Equal(t, id, again)
		require.Equal(t, b, id.Bytes())
	}
}

func TestRoundTrip_String(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 10_000; i++ {
		s := randomText(r)
		id, err := Parse(s)
		require.NoError(t, err, s)
		require.Equal(t, strings.ToUpper(s), id.String())
	}
}

// randomText returns a valid 26-symbol string in mixed case.
func randomText(r *rand.Rand) string {
	b := make([]byte, EncodedSize)
	b[0] = crockford.Alphabet[r.IntN(8)]
	for i := 1; i < len(b); i++ {
		b[i] = crockford.Alphabet[r.IntN(32)]
		if r.IntN(2) == 0 {
			b[i] = crockford.LowerAlphabet[strings.IndexByte(crockford.Alphabet, b[i])]
		}
	}
	return string(b)
}

func TestCompare_ConsistentWithStringAndBytes(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(13, 17))
	for i := 0; i < 10_000; i++ {
		a, b := randomULID(r), randomULID(r)
		if i%10 == 0 {
			// Share the high word so the low word decides.
			b = FromParts(a.High(), b.Low())
		}
		want := a.Compare(b)
		require.Equal(t, want, strings.Compare(a.String(), b.String()), "%s vs %s", a, b)
		require.Equal(t, want, bytes.Compare(a.Bytes(), b.Bytes()), "%s vs %s", a, b)
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	a := FromParts(1, math.MaxUint64)
	b := FromParts(2, 0)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Equal(FromParts(1, math.MaxUint64)))
	assert.False(t, a.Equal(b))
}

func TestIncrement(t *testing.T) {
	t.Parallel()

	ts := uint64(1469922850259)
	tests := []struct {
		name string
		in   ULID
		want ULID
	}{
		{"low word", FromParts(ts<<16, 41), FromParts(ts<<16, 42)},
		{"carry into high random bits", FromParts(ts<<16|0x00ff, math.MaxUint64), FromParts(ts<<16|0x0100, 0)},
		{"random overflow resets", FromParts(ts<<16|0xffff, math.MaxUint64), FromParts(ts<<16, 0)},
		{"max wraps to max time zero random", Max, FromParts(MaxTime<<16, 0)},
		{"zero", Min, FromParts(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.in.Increment()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in.Millis(), got.Millis())
		})
	}
}

func TestIncrement_KeepsTimestamp(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(19, 23))
	for i := 0; i < 10_000; i++ {
		id := randomULID(r)
		next := id.Increment()
		require.Equal(t, id.Millis(), next.Millis())
		require.Equal(t, 1, next.Compare(id))
	}
}

func TestIncrement_DoesNotMutate(t *testing.T) {
	t.Parallel()

	id := MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	_ = id.Increment()
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", id.String())
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAW", id.Increment().String())
}

func TestTimestampHelpers(t *testing.T) {
	t.Parallel()

	tm := time.Date(2016, 7, 30, 23, 54, 10, 259_000_000, time.UTC)
	assert.Equal(t, uint64(1469922850259), Timestamp(tm))
	assert.Equal(t, tm, MillisTime(1469922850259))
	assert.Equal(t, time.Date(10889, 8, 2, 5, 31, 50, 655_000_000, time.UTC), MillisTime(MaxTime))
	assert.InDelta(t, float64(Timestamp(time.Now())), float64(Now()), 1000)
}

func BenchmarkParse(b *testing.B) {
	for b.Loop() {
		_, _ = Parse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	}
}

func BenchmarkString(b *testing.B) {
	id := MustParse("01ARZ3NDEKTSV4RRFFQ69G5FAV")
	for b.Loop() {
		_ = id.String()
	}
}
