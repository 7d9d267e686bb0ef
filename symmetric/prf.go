package symmetric

import (
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

const prfSeedLen = 32

// PRF is the stateful pseudo-random function keyed with a 32-byte seed,
// from FIPS 203 section 4.1. Each call to Next absorbs the seed and the
// current 8-bit counter into a fresh SHAKE256 context, squeezes the
// requested output, and increments the counter. A single PRF instance is
// meant to be created per K-PKE call and shared across every CBD draw in
// that call, in the order the caller needs (s before e in KeyGen; r_e
// before e1 before e2 in Encrypt) so that the counter assigns disjoint
// byte ranges to each quantity.
type PRF struct {
	seed [prfSeedLen]byte
	b    int
}

// NewPRF creates a PRF from a 32-byte seed, with its counter starting at
// zero.
func NewPRF(seed []byte) (*PRF, error) {
	if len(seed) != prfSeedLen {
		return nil, fmt.Errorf("symmetric.NewPRF: %w: seed must be %d bytes, got %d", ErrInvalidArgument, prfSeedLen, len(seed))
	}
	p := &PRF{}
	copy(p.seed[:], seed)
	return p, nil
}

// Next returns PRF_eta(seed, b) = SHAKE256(seed || b)[:64*eta] and
// advances the counter. It fails once the counter would exceed 255.
func (p *PRF) Next(eta int) ([]byte, error) {
	if p.b > 255 {
		return nil, fmt.Errorf("symmetric.PRF.Next: %w", ErrPrfExhausted)
	}
	h := sha3.NewShake256()
	h.Write(p.seed[:])    //nolint:errcheck
	h.Write([]byte{byte(p.b)}) //nolint:errcheck

	out := make([]byte, 64*eta)
	if _, err := io.ReadFull(h, out); err != nil {
		panic(fmt.Sprintf("symmetric.PRF.Next: unexpected short read: %v", err))
	}
	p.b++
	return out, nil
}
