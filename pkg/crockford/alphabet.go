package crockford

const (
	// Alphabet is the canonical upper-case symbol set.
	Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	// LowerAlphabet is Alphabet in lower case.
	LowerAlphabet = "0123456789abcdefghjkmnpqrstvwxyz"

	// invalid marks bytes outside the alphabet in the decode table.
	invalid = 0xFF

	mask     = 0x1F
	maskBits = 5
)

// dec maps every byte to its 5-bit value, or invalid.
var dec = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = byte(i)
		t[LowerAlphabet[i]] = byte(i)
	}
	for _, alias := range []struct {
		from byte
		to   byte
	}{
		{'O', '0'},
		{'I', '1'},
		{'L', '1'},
		{'U', 'V'},
	} {
		t[alias.from] = t[alias.to]
		t[alias.from+('a'-'A')] = t[alias.to]
	}
	return t
}()

// Value returns the 5-bit value of c and whether c is a valid symbol.
func Value(c byte) (byte, bool) {
	v := dec[c]
	return v, v != invalid
}
