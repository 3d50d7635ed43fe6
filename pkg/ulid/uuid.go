package ulid

import "github.com/google/uuid"

// UUID returns id reinterpreted as a UUID with the same 16 bytes. The
// result carries no valid version or variant bits.
func (id ULID) UUID() uuid.UUID {
	var u uuid.UUID
	id.putBytes(u[:])
	return u
}

// FromUUID reinterprets the 16 bytes of u as a ULID.
func FromUUID(u uuid.UUID) ULID {
	id, _ := FromBytes(u[:])
	return id
}
