package ulid

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
)

// Source supplies uniformly distributed 64-bit values. *math/rand/v2.Rand
// satisfies it, which makes deterministic tests straightforward.
type Source interface {
	Uint64() uint64
}

// CryptoSource reads from crypto/rand. It is safe for concurrent use.
type CryptoSource struct{}

// Uint64 returns 64 bits from the operating system's secure generator.
func (CryptoSource) Uint64() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return binary.BigEndian.Uint64(b[:])
}

// LockedSource serializes access to a Source that is not safe for
// concurrent use.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src.
func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

// Uint64 returns the next value from the wrapped source.
func (s *LockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}
