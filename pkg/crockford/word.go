package crockford

// MaxWordLen is the longest word ParseWord accepts; 12 symbols carry 60 bits.
const MaxWordLen = 12

// AppendWord appends exactly count upper-case symbols encoding the low
// count*5 bits of v, most significant symbol first.
func AppendWord(dst []byte, v uint64, count int) []byte {
	for i := count - 1; i >= 0; i-- {
		dst = append(dst, Alphabet[(v>>(uint(i)*maskBits))&mask])
	}
	return dst
}

// PutWord fills dst with the len(dst) least significant symbols of v.
func PutWord(dst []byte, v uint64) {
	count := len(dst)
	for i := 0; i < count; i++ {
		dst[i] = Alphabet[(v>>(uint(count-1-i)*maskBits))&mask]
	}
}

// ParseWord decodes s as a single big-endian integer.
func ParseWord(s string) (uint64, error) {
	if len(s) > MaxWordLen {
		return 0, ErrWordTooLong
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		d := dec[s[i]]
		if d == invalid {
			return 0, &CharacterError{Char: s[i], Offset: i}
		}
		v = v<<maskBits | uint64(d)
	}
	return v, nil
}
