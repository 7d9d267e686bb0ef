package mlkem

import "crypto/rand"

// randomBytes draws n cryptographically secure random bytes from the
// operating system's entropy source. This is the sole point of contact
// with the "random_bytes(n) -> bytes" external collaborator spec.md's
// concurrency model describes; every other operation in this module is a
// pure function of its inputs. Mirrors the teacher corpus's own use of
// crypto/rand (e.g. ring.RandInt) rather than the weaker math/rand.
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}
