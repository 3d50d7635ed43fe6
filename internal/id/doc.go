// Package id provides unique identifier generation utilities.
//
// This is the canonical source for ID generation across the ulidkit
// commands. It provides several ID formats for different use cases:
//
//   - ULID: Universally Unique Lexicographically Sortable Identifiers from a
//     process-wide monotonic generator, so IDs minted in one process sort in
//     creation order
//   - Short: 12-character lowercase Crockford Base32 IDs built from 7 random
//     bytes, for places where a full ULID is too long and ordering does not
//     matter
//   - UUID: standard UUID v4 plus URL-safe Base64 and millisecond-prefixed
//     variants, and constructors from raw halves, words or bytes
//
// All random material comes from crypto/rand. The ULID encoding itself lives
// in pkg/ulid; this package only owns the shared default generator.
package id
