package crockford

// PadChar terminates a padded encoding.
const PadChar = '='

// Encoding is a Crockford Base32 byte codec. The zero value encodes
// upper-case without padding.
type Encoding struct {
	padding bool
	lower   bool
}

var (
	// StdEncoding encodes upper-case without padding.
	StdEncoding = Encoding{}

	// LowerEncoding encodes lower-case without padding.
	LowerEncoding = Encoding{lower: true}
)

// WithPadding returns a copy of enc that pads output to a multiple of 8
// symbols when pad is true.
func (enc Encoding) WithPadding(pad bool) Encoding {
	enc.padding = pad
	return enc
}

// WithLowercase returns a copy of enc that emits lower-case symbols when
// lower is true. Decoding is case-insensitive either way.
func (enc Encoding) WithLowercase(lower bool) Encoding {
	enc.lower = lower
	return enc
}

// EncodedLen returns the length in symbols of an encoding of n bytes.
func (enc Encoding) EncodedLen(n int) int {
	if enc.padding {
		return (n + 4) / 5 * 8
	}
	return (n*8 + 4) / 5
}

// DecodedLen returns the maximum number of bytes decoded from n symbols.
func (enc Encoding) DecodedLen(n int) int {
	return n * 5 / 8
}

// AppendEncode appends the encoding of src to dst.
func (enc Encoding) AppendEncode(dst, src []byte) []byte {
	alphabet := Alphabet
	if enc.lower {
		alphabet = LowerAlphabet
	}

	start := len(dst)
	for len(src) > 0 {
		var block [5]byte
		n := copy(block[:], src)
		src = src[n:]

		// 40 bits, most significant first.
		v := uint64(block[0])<<32 | uint64(block[1])<<24 | uint64(block[2])<<16 |
			uint64(block[3])<<8 | uint64(block[4])

		symbols := 8
		switch n {
		case 1:
			symbols = 2
		case 2:
			symbols = 4
		case 3:
			symbols = 5
		case 4:
			symbols = 7
		}
		for i := 0; i < symbols; i++ {
			dst = append(dst, alphabet[(v>>(35-uint(i)*maskBits))&mask])
		}
	}

	if enc.padding {
		for (len(dst)-start)%8 != 0 {
			dst = append(dst, PadChar)
		}
	}
	return dst
}

// EncodeToString returns the encoding of src.
func (enc Encoding) EncodeToString(src []byte) string {
	return string(enc.AppendEncode(make([]byte, 0, enc.EncodedLen(len(src))), src))
}

// AppendDecode appends the bytes decoded from src to dst.
//
// ASCII whitespace is skipped and the first PadChar ends the input. Every
// complete group of 8 symbols yields 5 bytes; a trailing group of 2, 3, 4,
// 5, 6 or 7 symbols yields 1, 1, 2, 3, 3 or 4 bytes and its slack bits are
// dropped. On error dst is returned unchanged along with a *CharacterError.
func (enc Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	out := dst
	var (
		acc   uint64
		nbits uint
	)
	for i, c := range src {
		if c == PadChar {
			break
		}
		if isSpace(c) {
			continue
		}
		v := dec[c]
		if v == invalid {
			return dst, &CharacterError{Char: c, Offset: i}
		}
		acc = acc<<maskBits | uint64(v)
		nbits += maskBits
		if nbits >= 8 {
			nbits -= 8
			out = append(out, byte(acc>>nbits))
			acc &= 1<<nbits - 1
		}
	}
	return out, nil
}

// Decode returns the bytes represented by src.
func (enc Encoding) Decode(src []byte) ([]byte, error) {
	out, err := enc.AppendDecode(make([]byte, 0, enc.DecodedLen(len(src))), src)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeString returns the bytes represented by s.
func (enc Encoding) DecodeString(s string) ([]byte, error) {
	return enc.Decode([]byte(s))
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
