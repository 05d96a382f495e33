package prgen

import (
	"io"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSource(t *testing.T) {
	// Arrange.
	var (
		r   = rand.New(NewSource(MustNew(seqKey)))
		ref = MustNew(seqKey)
	)

	// Act and assert.
	require.Equal(t, Uint64(ref), r.Uint64())
	require.Equal(t, Int63(ref), r.Int63())
	for i := 0; i < 100; i++ {
		v := r.Intn(100)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 100)
	}
}

func TestNewSource_Seed(t *testing.T) {
	require.Panics(t, func() { NewSource(MustNew(seqKey)).Seed(1) })
}

func TestNewReader(t *testing.T) {
	// Arrange.
	var (
		r   = NewReader(MustNew(zeroKey))
		buf = make([]byte, 8)
	)

	// Act.
	_, err := io.ReadFull(r, buf)

	// Assert.
	require.Nil(t, err)
	require.Equal(t, []byte{0xe1, 0x55, 0x78, 0xaa, 0x8c, 0x26, 0xce, 0xc8}, buf)
}

func TestLocked(t *testing.T) {
	const (
		workers = 8
		calls   = 100
	)

	// Arrange.
	var (
		p   = MustNew(seqKey)
		ref = MustNew(seqKey)
		s   = Locked(p)
		wg  sync.WaitGroup
	)

	// Act.
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < calls; i++ {
				s.NextBits(32)
			}
		}()
	}
	wg.Wait()

	// Assert.
	for i := 0; i < workers*calls; i++ {
		ref.NextBits(1)
	}
	require.Equal(t, ref.ch.key, p.ch.key)
}
