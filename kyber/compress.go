package kyber

// Compress maps r in [0, q) to a d-bit representative:
// round(r * 2^d / q) mod 2^d, using round-half-up (floor(0.5 + x)), not
// banker's rounding. The reference implementation computes this with
// floating point (int(0.5 + r*2**d/q) in Python); this version computes
// the same rounding convention with exact integer arithmetic so the
// result is bit-exact for every (r, d, q) this module ever calls it
// with, not merely for the ones small enough to survive float64
// rounding unscathed.
func Compress(r, q int64, d int) int64 {
	pow := int64(1) << uint(d)
	num := 2*r*pow + q
	den := 2 * q
	return (num / den) % pow
}

// Decompress is the deterministic (lossy) inverse of Compress: it maps a
// d-bit code y back to [0, q) via round(y * q / 2^d), same rounding
// convention.
func Decompress(y, q int64, d int) int64 {
	pow := int64(1) << uint(d)
	num := 2*y*q + pow
	den := 2 * pow
	return num / den
}
