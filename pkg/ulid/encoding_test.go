package ulid

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler     = ULID{}
	_ encoding.TextUnmarshaler   = (*ULID)(nil)
	_ encoding.TextAppender      = ULID{}
	_ encoding.BinaryMarshaler   = ULID{}
	_ encoding.BinaryUnmarshaler = (*ULID)(nil)
	_ encoding.BinaryAppender    = ULID{}
	_ sql.Scanner                = (*ULID)(nil)
	_ driver.Valuer              = ULID{}
)

const known = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

func TestText(t *testing.T) {
	t.Parallel()

	id := MustParse(known)
	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, known, string(text))

	appended, err := id.AppendText([]byte("id:"))
	require.NoError(t, err)
	assert.Equal(t, "id:"+known, string(appended))

	var got ULID
	require.NoError(t, got.UnmarshalText([]byte("01arz3ndektsv4rrffq69g5fav")))
	assert.Equal(t, id, got)

	require.ErrorIs(t, got.UnmarshalText([]byte("short")), ErrInvalidLength)
	assert.Equal(t, id, got, "failed unmarshal must leave the receiver untouched")
}

func TestBinary(t *testing.T) {
	t.Parallel()

	id := MustParse(known)
	b, err := id.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, id.Bytes(), b)

	appended, err := id.AppendBinary([]byte{0xee})
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0xee}, id.Bytes()...), appended)

	var got ULID
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, id, got)
	require.ErrorIs(t, got.UnmarshalBinary(b[:15]), ErrInvalidLength)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	type record struct {
		ID     ULID  `json:"id"`
		Parent *ULID `json:"parent,omitempty"`
	}

	in := record{ID: MustParse(known)}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"01ARZ3NDEKTSV4RRFFQ69G5FAV"}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"id":"80000000000000000000000000"}`), &out)
	require.ErrorIs(t, err, ErrTimestampOverflow)
}

func TestYAML(t *testing.T) {
	t.Parallel()

	type record struct {
		ID ULID `yaml:"id"`
	}

	in := record{ID: MustParse(known)}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "id: "+known+"\n", string(data))

	var out record
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	err = yaml.Unmarshal([]byte("id: 01ARZ3NDEK\n"), &out)
	require.Error(t, err)
}

func TestScan(t *testing.T) {
	t.Parallel()

	id := MustParse(known)
	tests := []struct {
		name string
		src  any
		want ULID
	}{
		{"nil", nil, Min},
		{"string", known, id},
		{"text bytes", []byte(known), id},
		{"binary bytes", id.Bytes(), id},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Max
			require.NoError(t, got.Scan(tt.src))
			assert.Equal(t, tt.want, got)
		})
	}

	var got ULID
	require.ErrorIs(t, got.Scan(42), ErrScanValue)
	require.ErrorIs(t, got.Scan([]byte("nope")), ErrInvalidLength)
}

func TestValue(t *testing.T) {
	t.Parallel()

	v, err := MustParse(known).Value()
	require.NoError(t, err)
	assert.Equal(t, known, v)
}

func TestUUID(t *testing.T) {
	t.Parallel()

	id := MustParse(known)
	u := id.UUID()
	assert.Equal(t, "01563e3a-b5d3-d676-4c61-efb99302bd5b", u.String())
	assert.Equal(t, id, FromUUID(u))

	parsed := uuid.MustParse("01563e3a-b5d3-d676-4c61-efb99302bd5b")
	assert.Equal(t, known, FromUUID(parsed).String())

	// Ordering is preserved because both are big-endian 16 bytes.
	assert.Equal(t, "ffffffff-ffff-ffff-ffff-ffffffffffff", Max.UUID().String())
	assert.Equal(t, uuid.Nil, Min.UUID())
}
