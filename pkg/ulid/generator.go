package ulid

import (
	"sync"
	"time"
)

// New returns a ULID with timestamp ms and 80 random bits drawn from src
// (two Uint64 calls: high word first).
func New(ms uint64, src Source) (ULID, error) {
	if err := checkTimestamp(ms); err != nil {
		return ULID{}, err
	}
	hi := src.Uint64()
	lo := src.Uint64()
	return ULID{
		hi: hi&randomHighMask | ms<<16,
		lo: lo,
	}, nil
}

// NextMonotonic returns prev.Increment() when ms equals the timestamp of
// prev and New(ms, src) otherwise. If the random part of prev is all ones
// the result has a zero random part and sorts before prev; use
// NextStrictlyMonotonic to detect that.
func NextMonotonic(prev ULID, ms uint64, src Source) (ULID, error) {
	if err := checkTimestamp(ms); err != nil {
		return ULID{}, err
	}
	if prev.Millis() == ms {
		return prev.Increment(), nil
	}
	return New(ms, src)
}

// NextStrictlyMonotonic is NextMonotonic that returns ErrMonotonicOverflow
// unless the result sorts strictly after prev.
func NextStrictlyMonotonic(prev ULID, ms uint64, src Source) (ULID, error) {
	id, err := NextMonotonic(prev, ms, src)
	if err != nil {
		return ULID{}, err
	}
	if id.Compare(prev) < 1 {
		return ULID{}, ErrMonotonicOverflow
	}
	return id, nil
}

// Generator mints ULIDs from a clock and a Source. It holds no mutable
// state and is safe for concurrent use when its Source is.
type Generator struct {
	src   Source
	clock func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the randomness source. The default is CryptoSource.
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// WithClock sets the clock. The default is time.Now.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		src:   CryptoSource{},
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns a ULID for the current time.
func (g *Generator) Next() (ULID, error) {
	return g.NextAt(g.now())
}

// NextAt returns a ULID for ms.
func (g *Generator) NextAt(ms uint64) (ULID, error) {
	return New(ms, g.src)
}

func (g *Generator) now() uint64 {
	return Timestamp(g.clock())
}

// MonotonicGenerator produces a sequence in which values minted within the
// same millisecond increase by one. Access is serialized, so one instance
// may be shared by many goroutines.
type MonotonicGenerator struct {
	mu      sync.Mutex
	gen     *Generator
	strict  bool
	last    ULID
	started bool
}

// MonotonicOption configures a MonotonicGenerator.
type MonotonicOption func(*MonotonicGenerator)

// WithStrict makes the generator return ErrMonotonicOverflow instead of a
// value that does not sort after the previous one.
func WithStrict() MonotonicOption {
	return func(m *MonotonicGenerator) {
		m.strict = true
	}
}

// WithLast resumes a sequence whose most recent value was prev.
func WithLast(prev ULID) MonotonicOption {
	return func(m *MonotonicGenerator) {
		m.last = prev
		m.started = true
	}
}

// NewMonotonic creates a MonotonicGenerator drawing fresh values from gen.
// A nil gen uses NewGenerator().
func NewMonotonic(gen *Generator, opts ...MonotonicOption) *MonotonicGenerator {
	if gen == nil {
		gen = NewGenerator()
	}
	m := &MonotonicGenerator{gen: gen}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Next returns the next value for the current time. The clock is read
// under the lock so concurrent callers observe non-decreasing timestamps.
func (m *MonotonicGenerator) Next() (ULID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.next(m.gen.now())
}

// NextAt returns the next value for ms.
func (m *MonotonicGenerator) NextAt(ms uint64) (ULID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.next(ms)
}

// NextClamped is NextAt with ms held at the last value's millisecond when
// it is earlier, so a clock that steps backwards keeps extending the current
// sequence instead of failing in strict mode. It also returns the
// millisecond actually used.
func (m *MonotonicGenerator) NextClamped(ms uint64) (ULID, uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		ms = max(ms, m.last.Millis())
	}
	id, err := m.next(ms)
	return id, ms, err
}

// Last returns the most recently generated value, or Min before the first
// call.
func (m *MonotonicGenerator) Last() ULID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Strict reports whether the generator was created WithStrict.
func (m *MonotonicGenerator) Strict() bool {
	return m.strict
}

func (m *MonotonicGenerator) next(ms uint64) (ULID, error) {
	var (
		id  ULID
		err error
	)
	switch {
	case !m.started:
		id, err = New(ms, m.gen.src)
	case m.strict:
		id, err = NextStrictlyMonotonic(m.last, ms, m.gen.src)
	default:
		id, err = NextMonotonic(m.last, ms, m.gen.src)
	}
	if err != nil {
		return ULID{}, err
	}
	m.last = id
	m.started = true
	return id, nil
}
