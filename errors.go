package prgen

import "errors"

var (
	// ErrInvalidKeyLength is returned when a generator is created from a key
	// that is not exactly KeySize bytes long.
	ErrInvalidKeyLength = errors.New("prgen: invalid key length")

	// ErrInvalidBitWidth is the panic value of NextBits for a width outside [1, 32].
	ErrInvalidBitWidth = errors.New("prgen: invalid bit width")

	// ErrUnknownPRF is returned by PRFByName for an unregistered name.
	ErrUnknownPRF = errors.New("prgen: unknown PRF")

	// ErrWiped is the panic value of a generator used after Wipe.
	ErrWiped = errors.New("prgen: generator has been wiped")

	// ErrNotInitialized is the panic value of a generator not created by New.
	ErrNotInitialized = errors.New("prgen: generator not initialized")
)
