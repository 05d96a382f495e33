package prgen

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"sort"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
)

// Names of the recommended PRFs, as accepted by PRFByName.
const (
	NameHMACSHA256 = "hmac-sha256"
	NameHMACSHA3   = "hmac-sha3"
	NameBlake2b    = "blake2b"
	NameHKDFSHA256 = "hkdf-sha256"
)

var recommendedPRFs = map[string]PRFFunc{
	NameHMACSHA256: HMACSHA256,
	NameHMACSHA3:   HMACSHA3,
	NameBlake2b:    Blake2b,
	NameHKDFSHA256: HKDFExpand,
}

// PRFByName returns the recommended PRF registered under name.
func PRFByName(name string) (PRFFunc, error) {
	f, ok := recommendedPRFs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPRF, name)
	}
	return f, nil
}

// PRFNames returns the names accepted by PRFByName in sorted order.
func PRFNames() []string {
	names := make([]string, 0, len(recommendedPRFs))
	for name := range recommendedPRFs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HMACSHA256 returns an HMAC-SHA256 evaluator keyed by key. It is the default PRF.
func HMACSHA256(key Key) PRF {
	return &hmacPRF{key: key, hash: sha256.New}
}

// HMACSHA3 returns an HMAC-SHA3-256 evaluator keyed by key.
func HMACSHA3(key Key) PRF {
	return &hmacPRF{key: key, hash: sha3.New256}
}

type hmacPRF struct {
	key  Key
	hash func() hash.Hash
}

func (p *hmacPRF) Eval(input []byte) Block {
	var out Block
	h := hmac.New(p.hash, p.key[:])
	h.Write(input)
	h.Sum(out[:0])
	return out
}

func (p *hmacPRF) Wipe() {
	clear(p.key[:])
}

// Blake2b returns a keyed BLAKE2b-256 evaluator.
func Blake2b(key Key) PRF {
	return &blake2bPRF{key: key}
}

type blake2bPRF struct {
	key Key
}

func (p *blake2bPRF) Eval(input []byte) Block {
	var out Block
	h, _ := blake2b.New256(p.key[:]) // Keys up to 64 bytes never fail.
	h.Write(input)
	h.Sum(out[:0])
	return out
}

func (p *blake2bPRF) Wipe() {
	clear(p.key[:])
}

// HKDFExpand returns an evaluator computing HKDF-Expand-SHA256 with key as the
// pseudorandom key and the input as info.
func HKDFExpand(key Key) PRF {
	return &hkdfPRF{key: key}
}

type hkdfPRF struct {
	key Key
}

func (p *hkdfPRF) Eval(input []byte) Block {
	var out Block
	r := hkdf.Expand(sha256.New, p.key[:], input)

	// The only error here is the output length limit, far above one block.
	_, _ = io.ReadFull(r, out[:])
	return out
}

func (p *hkdfPRF) Wipe() {
	clear(p.key[:])
}
