// Package crockford implements Crockford's Base32 alphabet as used by ULIDs.
//
// Two codecs share one pair of lookup tables:
//
//   - Encoding: stream-oriented encode/decode of arbitrary byte slices, packing
//     8-bit bytes into 5-bit symbols (5 bytes -> 8 symbols), with optional '='
//     padding and optional lowercase output.
//   - Word codec: AppendWord, PutWord and ParseWord encode a single unsigned
//     integer into a fixed number of symbols, most significant first. ULID
//     segments (48 and 80 bits) are not byte aligned, so they use this codec.
//
// The alphabet is 0123456789ABCDEFGHJKMNPQRSTVWXYZ. Decoding is
// case-insensitive and tolerant of common transcription mistakes:
// 'O' reads as 0, 'I' and 'L' read as 1, and 'U' reads as 'V'.
package crockford
