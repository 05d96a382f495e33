// Package prgen implements a deterministic, backtracking-resistant
// pseudo-random generator built on a keyed pseudo-random function.
//
// Every output request evaluates the PRF twice under the current hidden key:
// once on a fixed "output" input to produce the returned bits and once on a
// fixed "rekey" input to derive the next hidden key, which replaces the current
// one before the call returns. Learning the state after a call does not reveal
// any earlier output.
package prgen

import (
	"encoding/binary"
	"fmt"
)

// PRG is a backtracking-resistant pseudo-random generator. Only New and
// MustNew produce usable generators; the zero value panics on use.
// Operations on this object are NOT THREAD-SAFE, make sure they're done in
// sequence or wrap the generator with Locked.
type PRG struct {
	ch chain

	// PRF constructor, set by options before the chain is built.
	newPRF PRFFunc

	wiped bool
}

var _ Source = (*PRG)(nil)

// New creates a generator from a secret key of exactly KeySize bytes.
// The key is copied; the caller keeps ownership of its slice.
func New(key []byte, opts ...Option) (*PRG, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), KeySize)
	}
	p := &PRG{
		newPRF: HMACSHA256,
	}
	for i := range opts {
		if err := opts[i](p); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	var k Key
	copy(k[:], key)
	p.ch = newChain(p.newPRF, k)
	clear(k[:])
	if p.ch.prf == nil {
		p.ch.wipe()
		return nil, fmt.Errorf("PRF constructor returned nil evaluator")
	}
	return p, nil
}

// MustNew is like New but panics on error.
func MustNew(key []byte, opts ...Option) *PRG {
	p, err := New(key, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// NextBits returns an integer whose low-order bits are pseudo-random and whose
// remaining high-order bits are zero, then advances the generator by one
// ratchet step. The step is the same for every width.
//
// NextBits panics if bits is outside [1, 32]; the generator is left untouched.
func (p *PRG) NextBits(bits int) uint32 {
	if bits < 1 || bits > 32 {
		panic(fmt.Errorf("%w: %d is not in [1, 32]", ErrInvalidBitWidth, bits))
	}
	if p.wiped {
		panic(ErrWiped)
	}
	if p.ch.prf == nil {
		panic(ErrNotInitialized)
	}

	out := p.ch.step()
	v := binary.BigEndian.Uint32(out[:4])
	clear(out[:])

	return v >> (32 - bits)
}

// Wipe scrubs the hidden key and the evaluator. The generator is unusable
// afterwards.
func (p *PRG) Wipe() {
	p.ch.wipe()
	p.wiped = true
}
