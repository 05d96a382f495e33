package prgen

import (
	"io"
	"math/rand"
	"sync"
)

type source struct {
	s Source
}

var _ rand.Source64 = source{}

// NewSource adapts s to math/rand, so that rand.New(NewSource(s)) exposes the
// full math/rand API on top of it. The returned source cannot be reseeded.
func NewSource(s Source) rand.Source64 {
	return source{s: s}
}

func (src source) Int63() int64 {
	return Int63(src.s)
}

func (src source) Uint64() uint64 {
	return Uint64(src.s)
}

func (source) Seed(int64) {
	panic("prgen: a ratchet source cannot be reseeded")
}

type reader struct {
	s Source
}

// NewReader returns an io.Reader that fills buffers with Read.
func NewReader(s Source) io.Reader {
	return reader{s: s}
}

func (r reader) Read(p []byte) (int, error) {
	return Read(r.s, p)
}

type lockedSource struct {
	mu sync.Mutex
	s  Source
}

// Locked returns a Source that serializes every NextBits call on s with a
// mutex. Composite helpers such as Uint64 still take several steps, which
// other goroutines may interleave with.
func Locked(s Source) Source {
	return &lockedSource{s: s}
}

func (l *lockedSource) NextBits(bits int) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.NextBits(bits)
}
