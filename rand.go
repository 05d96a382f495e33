package prgen

import "math"

// Source is the single capability every derived value is built from.
// *PRG implements it.
type Source interface {
	// NextBits returns an integer with its low bits, 1 <= bits <= 32,
	// set pseudo-randomly and the rest zero.
	NextBits(bits int) uint32
}

// The helpers below compose NextBits the way java.util.Random composes next(bits).

// Uint32 returns a pseudo-random 32-bit value.
func Uint32(s Source) uint32 {
	return s.NextBits(32)
}

// Int32 returns a pseudo-random 32-bit value as a signed integer.
func Int32(s Source) int32 {
	return int32(s.NextBits(32))
}

// Uint64 returns a pseudo-random 64-bit value built from two 32-bit draws,
// high half first.
func Uint64(s Source) uint64 {
	hi := uint64(s.NextBits(32))
	return hi<<32 | uint64(s.NextBits(32))
}

// Int63 returns a non-negative pseudo-random 63-bit integer.
func Int63(s Source) int64 {
	return int64(Uint64(s) & math.MaxInt64)
}

// Bool returns a pseudo-random boolean.
func Bool(s Source) bool {
	return s.NextBits(1) != 0
}

// Float32 returns a pseudo-random value in [0.0, 1.0).
func Float32(s Source) float32 {
	return float32(s.NextBits(24)) / (1 << 24)
}

// Float64 returns a pseudo-random value in [0.0, 1.0).
func Float64(s Source) float64 {
	hi := uint64(s.NextBits(26))
	return float64(hi<<27+uint64(s.NextBits(27))) / (1 << 53)
}

// Int31n returns a pseudo-random integer in [0, n). It panics if n <= 0.
func Int31n(s Source, n int32) int32 {
	if n <= 0 {
		panic("prgen: invalid argument to Int31n")
	}
	r := int32(s.NextBits(31))
	m := n - 1
	if n&m == 0 {
		return int32((int64(n) * int64(r)) >> 31)
	}
	// Reject draws from the final partial interval; the sum wraps negative there.
	for u := r; ; u = int32(s.NextBits(31)) {
		r = u % n
		if u-r+m >= 0 {
			return r
		}
	}
}

// Int63n returns a pseudo-random integer in [0, n). It panics if n <= 0.
func Int63n(s Source, n int64) int64 {
	if n <= 0 {
		panic("prgen: invalid argument to Int63n")
	}
	if n&(n-1) == 0 {
		return Int63(s) & (n - 1)
	}
	limit := int64((1 << 63) - 1 - (1<<63)%uint64(n))
	v := Int63(s)
	for v > limit {
		v = Int63(s)
	}
	return v % n
}

// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0.
func Intn(s Source, n int) int {
	if n <= 0 {
		panic("prgen: invalid argument to Intn")
	}
	if n <= math.MaxInt32 {
		return int(Int31n(s, int32(n)))
	}
	return int(Int63n(s, int64(n)))
}

// Read fills p with pseudo-random bytes, four bytes per 32-bit draw, lowest
// byte first. It always returns len(p) and a nil error.
func Read(s Source, p []byte) (int, error) {
	for i := 0; i < len(p); {
		r := s.NextBits(32)
		for n := min(len(p)-i, 4); n > 0; n-- {
			p[i] = byte(r)
			r >>= 8
			i++
		}
	}
	return len(p), nil
}

// Shuffle pseudo-randomizes the order of n elements using swap.
// It panics if n < 0.
func Shuffle(s Source, n int, swap func(i, j int)) {
	if n < 0 {
		panic("prgen: invalid argument to Shuffle")
	}
	for i := n - 1; i > 0; i-- {
		swap(i, Intn(s, i+1))
	}
}
