package algebra

import "errors"

// ErrInvalidArgument is returned when a caller passes a malformed buffer, a
// mismatched modulus, an empty container, or an otherwise structurally
// invalid value to a constructor or operation in this module. It is never
// recovered internally.
var ErrInvalidArgument = errors.New("algebra: invalid argument")

// ErrUnsupported marks parameter choices outside of what this
// implementation supports. No operation in this package returns it: the
// algebra types accept any positive q and n, and the Kyber-specific
// checks (q=3329, n=256, k in {2,3,4}) report kyber.ErrUnsupported.
var ErrUnsupported = errors.New("algebra: unsupported parameter")
