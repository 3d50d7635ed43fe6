// Package cli provides the command-line interface for ulidkit.
//
// The cli package implements the ulidkit commands:
//   - generate: Create ULIDs, optionally monotonic, at a fixed time or seed
//   - parse: Decode ULIDs into timestamp, random part and UUID form, or just the time
//   - short: Create 12-character lowercase Crockford ids
//   - convert: Convert between ULID and UUID text forms
//   - uuid: Generate random UUIDs or build one from raw words or bytes
//   - validate: Check ULIDs, short ids and UUIDs
//   - base32 encode/decode: Crockford Base32 for arbitrary bytes
//   - config: Display effective configuration and where each value came from
//   - version: Show ulidkit version
//   - completion: Generate shell completion scripts
//   - help: Command help, plus embedded topics (format, monotonic, base32, uuid, config)
//
// Every command accepts --json. In JSON mode stdout carries only the JSON
// document; logs go to stderr and, with --log-file, to a JSON log file.
package cli
