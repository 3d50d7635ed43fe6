// Package ulid implements Universally Unique Lexicographically Sortable
// Identifiers.
//
// # Layout
//
// A ULID is 128 bits, big-endian:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                      32_bit_uint_time_high                    |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|     16_bit_uint_time_low      |       16_bit_uint_random      |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                       32_bit_uint_random                      |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                       32_bit_uint_random                      |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// The text form is 26 Crockford Base32 symbols: 10 for the millisecond
// timestamp and 16 for the randomness. The first symbol is always 0-7, so
// 7ZZZZZZZZZZZZZZZZZZZZZZZZZ is the largest ULID. Numeric order, string
// order and byte order agree.
//
// # Generation
//
// New draws randomness from an injected Source. NextMonotonic and
// NextStrictlyMonotonic derive the next value from a previous one so that
// values minted within one millisecond keep increasing; MonotonicGenerator
// holds that previous value for callers that share one sequence across
// goroutines.
//
//	gen := ulid.NewMonotonic(ulid.NewGenerator(), ulid.WithStrict())
//	id, err := gen.Next()
//	if errors.Is(err, ulid.ErrMonotonicOverflow) {
//	    // wait for the next millisecond
//	}
//	fmt.Println(id)          // 01ARZ3NDEKTSV4RRFFQ69G5FAV
//	fmt.Println(id.Time())   // 2016-07-30 23:54:10.259 +0000 UTC
package ulid
