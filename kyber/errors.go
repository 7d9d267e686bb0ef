package kyber

import "errors"

// ErrInvalidArgument is returned for wrong-length buffers or malformed
// inputs at the entry of an operation in this package.
var ErrInvalidArgument = errors.New("kyber: invalid argument")

// ErrUnsupported is returned for a parameter set or ring configuration
// this implementation does not support (only q=3329, n=256, k in
// {2,3,4} are implemented).
var ErrUnsupported = errors.New("kyber: unsupported parameter")
