package symmetric

import (
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

// XOF is an extendable-output context over SHAKE128. An XOF must absorb
// before any call to Squeeze; absorbing again resets the
// squeeze cursor to the start of the new output stream. Unlike the
// reference Python implementation's digest()-and-slice emulation, the
// underlying sha3.ShakeHash is a true byte stream, so Squeeze never
// recomputes work already delivered.
type XOF struct {
	h        sha3.ShakeHash
	absorbed bool
}

// NewXOF creates an XOF context with nothing absorbed yet.
func NewXOF() *XOF {
	return &XOF{h: sha3.NewShake128()}
}

// Absorb consumes data into the SHAKE128 sponge and resets the squeeze
// cursor. It may be called more than once on the same XOF, starting a
// fresh output stream each time.
func (x *XOF) Absorb(data []byte) {
	x.h.Reset()
	x.h.Write(data) //nolint:errcheck // sha3.ShakeHash.Write never errors.
	x.absorbed = true
}

// Squeeze returns the next n bytes of the extendable output. Absorb must
// have been called at least once.
func (x *XOF) Squeeze(n int) ([]byte, error) {
	if !x.absorbed {
		return nil, fmt.Errorf("symmetric.XOF.Squeeze: %w", ErrNotAbsorbed)
	}
	out := make([]byte, n)
	if _, err := io.ReadFull(x.h, out); err != nil {
		// Sanity check: a sponge construction's output is unbounded, this
		// should never fail.
		panic(fmt.Sprintf("symmetric.XOF.Squeeze: unexpected short read: %v", err))
	}
	return out, nil
}
