package prgen

// Domain separation inputs: the 4-byte big-endian encodings of 0 and 1.
var (
	outputInput = [4]byte{0, 0, 0, 0}
	rekeyInput  = [4]byte{0, 0, 0, 1}
)

// chain is the ratchet state: the hidden key and the one evaluator bound to it.
type chain struct {
	newPRF PRFFunc

	// Current hidden key.
	key Key

	// Evaluator bound to key.
	prf PRF
}

func newChain(newPRF PRFFunc, key Key) chain {
	return chain{
		newPRF: newPRF,
		key:    key,
		prf:    newPRF(key),
	}
}

// step returns the output block under the current key and ratchets the chain
// to the key derived from that same key.
func (c *chain) step() Block {
	in := outputInput
	out := c.prf.Eval(in[:])

	in = rekeyInput
	next := c.prf.Eval(in[:])
	c.rekey(next)
	clear(next[:])

	return out
}

// rekey overwrites the hidden key in place and rebinds the evaluator to it.
func (c *chain) rekey(next Block) {
	wipePRF(c.prf)
	copy(c.key[:], next[:])
	c.prf = c.newPRF(c.key)
}

func (c *chain) wipe() {
	if c.prf != nil {
		wipePRF(c.prf)
		c.prf = nil
	}
	clear(c.key[:])
}
