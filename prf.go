package prgen

// KeySize is the length in bytes of a PRF key. Every PRF output block has the
// same length, so any block is itself a valid key.
const KeySize = 32

// Key is a secret PRF key.
type Key [KeySize]byte

// Block is a single PRF output.
type Block [KeySize]byte

// PRF is a keyed pseudo-random function bound to a single key.
type PRF interface {
	// Eval returns the output block of the function for input. It must be
	// deterministic for a given key and input, and must not retain input.
	Eval(input []byte) Block
}

// PRFFunc constructs a PRF evaluator bound to key. The evaluator may keep its
// own copy of key; the caller is free to overwrite key after the call returns.
type PRFFunc func(key Key) PRF

// Wiper is implemented by evaluators that hold key material and can scrub it.
// An evaluator is wiped as soon as the generator discards it.
type Wiper interface {
	Wipe()
}

func wipePRF(p PRF) {
	if w, ok := p.(Wiper); ok {
		w.Wipe()
	}
}
