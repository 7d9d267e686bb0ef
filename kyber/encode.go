package kyber

import (
	"fmt"

	"github.com/tuneinsight/mlkem/algebra"
	"github.com/tuneinsight/mlkem/bitpack"
)

// ByteEncode12 serializes a ring element with 12-bit coefficients into
// 384 bytes, via bytes_from_ints(12, ...).
func ByteEncode12(p algebra.ModPol) ([]byte, error) {
	return encodeCoeffs(p, 12, func(c algebra.ModInt) int64 { return c.R() })
}

// ByteDecode12 is the inverse of ByteEncode12: it rebuilds a ring element
// of modulus Q and degree N from its 384-byte encoding.
func ByteDecode12(b []byte) (algebra.ModPol, error) {
	return decodeCoeffs(b, 12, func(x int64) int64 { return x })
}

// EncodeCompressed compresses every coefficient of p to d bits via
// Compress and serializes the result: ByteEncode_d(Compress_d(p)).
func EncodeCompressed(p algebra.ModPol, d int) ([]byte, error) {
	return encodeCoeffs(p, d, func(c algebra.ModInt) int64 { return Compress(c.R(), p.Q(), d) })
}

// DecodeDecompressed deserializes d-bit codes and decompresses each back
// into [0, q): Decompress_d(ByteDecode_d(b)).
func DecodeDecompressed(b []byte, d int) (algebra.ModPol, error) {
	return decodeCoeffs(b, d, func(x int64) int64 { return Decompress(x, Q, d) })
}

func encodeCoeffs(p algebra.ModPol, d int, transform func(algebra.ModInt) int64) ([]byte, error) {
	if p.N() != N {
		return nil, fmt.Errorf("kyber.encode: %w: expected %d coefficients, got %d", ErrUnsupported, N, p.N())
	}
	ints := make([]uint16, p.N())
	for i, c := range p.Coeffs() {
		ints[i] = uint16(transform(c))
	}
	return bitpack.BytesFromInts(d, ints)
}

func decodeCoeffs(b []byte, d int, transform func(int64) int64) (algebra.ModPol, error) {
	want := 32 * d
	if len(b) != want {
		return algebra.ModPol{}, fmt.Errorf("kyber.decode: %w: expected %d bytes for d=%d, got %d", ErrInvalidArgument, want, d, len(b))
	}
	ints, err := bitpack.IntsFromBytes(d, b)
	if err != nil {
		return algebra.ModPol{}, err
	}
	if len(ints) != N {
		return algebra.ModPol{}, fmt.Errorf("kyber.decode: %w: expected %d coefficients, got %d", ErrUnsupported, N, len(ints))
	}
	coeffs := make([]algebra.ModInt, N)
	for i, x := range ints {
		c, err := algebra.NewModInt(transform(int64(x)), Q)
		if err != nil {
			return algebra.ModPol{}, err
		}
		coeffs[i] = c
	}
	return algebra.NewModPol(Q, N, coeffs)
}
