package symmetric

import "errors"

// ErrPrfExhausted is returned when a PRF's counter would exceed 255. It
// indicates a caller bug (too many CBD draws from a single PRF instance)
// and should be treated as fatal by callers.
var ErrPrfExhausted = errors.New("symmetric: PRF counter exhausted")

// ErrNotAbsorbed is returned by XOF.Squeeze when called before Absorb.
var ErrNotAbsorbed = errors.New("symmetric: XOF must absorb before squeezing")

// ErrInvalidArgument is returned when a caller passes a malformed seed or
// buffer to a constructor in this package.
var ErrInvalidArgument = errors.New("symmetric: invalid argument")
