package prgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var prfKey = Key{0xeb, 0x8, 0x10, 0x7c, 0x33, 0x54, 0x0, 0x20, 0xe9, 0x4f, 0x6c, 0x84, 0xe4, 0x39, 0x50, 0x5a, 0x2f, 0x60, 0xbe, 0x81, 0xa, 0x78, 0x8b, 0xeb, 0x1e, 0x2c, 0x9, 0x8d, 0x4b, 0x4d, 0xc1, 0x40}

func TestPRFNames(t *testing.T) {
	require.Equal(t, []string{NameBlake2b, NameHKDFSHA256, NameHMACSHA256, NameHMACSHA3}, PRFNames())
}

func TestPRFByName_Unknown(t *testing.T) {
	// Act.
	f, err := PRFByName("")

	// Assert.
	require.Nil(t, f)
	require.ErrorIs(t, err, ErrUnknownPRF)
}

func TestRecommendedPRFs(t *testing.T) {
	for _, name := range PRFNames() {
		newPRF, err := PRFByName(name)
		require.Nil(t, err)

		t.Run(name+"/deterministic", func(t *testing.T) {
			// Act.
			var (
				a = newPRF(prfKey).Eval([]byte{0, 0, 0, 0})
				b = newPRF(prfKey).Eval([]byte{0, 0, 0, 0})
			)

			// Assert.
			require.NotEqual(t, Block{}, a)
			require.Equal(t, a, b)
		})

		t.Run(name+"/domain separated", func(t *testing.T) {
			// Arrange.
			p := newPRF(prfKey)

			// Act.
			var (
				out  = p.Eval([]byte{0, 0, 0, 0})
				next = p.Eval([]byte{0, 0, 0, 1})
			)

			// Assert.
			require.NotEqual(t, out, next)
		})

		t.Run(name+"/keyed", func(t *testing.T) {
			// Arrange.
			other := prfKey
			other[31] ^= 1

			// Act.
			var (
				a = newPRF(prfKey).Eval([]byte{0, 0, 0, 0})
				b = newPRF(other).Eval([]byte{0, 0, 0, 0})
			)

			// Assert.
			require.NotEqual(t, a, b)
		})

		t.Run(name+"/wipe", func(t *testing.T) {
			// Arrange.
			p := newPRF(prfKey)
			w, ok := p.(Wiper)
			require.True(t, ok)

			// Act.
			w.Wipe()

			// Assert.
			require.Equal(t, newPRF(Key{}).Eval([]byte{1}), p.Eval([]byte{1}))
		})
	}
}

func TestRecommendedPRFs_KeyCopied(t *testing.T) {
	// Arrange.
	var (
		key  = prfKey
		p    = HMACSHA256(key)
		want = p.Eval(nil)
	)

	// Act.
	key[0] ^= 0xff

	// Assert.
	require.Equal(t, want, p.Eval(nil))
}
