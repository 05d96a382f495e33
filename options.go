package prgen

import "fmt"

// Option is a constructor option.
type Option func(*PRG) error

// WithPRF specifies the PRF used for both output and rekeying.
// The PRF must produce blocks that are valid keys for itself.
func WithPRF(f PRFFunc) Option {
	return func(p *PRG) error {
		if f == nil {
			return fmt.Errorf("PRF constructor must not be nil")
		}
		p.newPRF = f
		return nil
	}
}

// WithPRFName specifies one of the recommended PRFs by name.
func WithPRFName(name string) Option {
	return func(p *PRG) error {
		f, err := PRFByName(name)
		if err != nil {
			return err
		}
		p.newPRF = f
		return nil
	}
}
