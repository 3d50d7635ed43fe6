package ulid

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler.
func (id ULID) MarshalText() ([]byte, error) {
	return id.appendString(make([]byte, 0, EncodedSize)), nil
}

// AppendText implements encoding.TextAppender.
func (id ULID) AppendText(b []byte) ([]byte, error) {
	return id.appendString(b), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ULID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id ULID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// AppendBinary implements encoding.BinaryAppender.
func (id ULID) AppendBinary(b []byte) ([]byte, error) {
	n := len(b)
	b = append(b, make([]byte, BinarySize)...)
	id.putBytes(b[n:])
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ULID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Scan implements sql.Scanner. Strings are parsed as text, byte slices as
// binary when 16 bytes long and as text otherwise. NULL scans to Min.
func (id *ULID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = ULID{}
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == BinarySize {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: got %T", ErrScanValue, src)
	}
}

// Value implements driver.Valuer, storing the text form.
func (id ULID) Value() (driver.Value, error) {
	return id.String(), nil
}
