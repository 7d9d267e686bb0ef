package kyber

import (
	"fmt"

	"github.com/tuneinsight/mlkem/algebra"
)

// EncodeVec12 serializes a k-element vector by concatenating each
// element's ByteEncode12 image, in order.
func EncodeVec12(v algebra.Vec) ([]byte, error) {
	out := make([]byte, 0, v.K()*384)
	for i := 0; i < v.K(); i++ {
		b, err := ByteEncode12(v.At(i))
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodeVec12 is the inverse of EncodeVec12: it splits b into k
// consecutive 384-byte chunks and decodes each.
func DecodeVec12(b []byte, k int) (algebra.Vec, error) {
	const chunk = 384
	if len(b) != chunk*k {
		return algebra.Vec{}, fmt.Errorf("kyber.DecodeVec12: %w: expected %d bytes for k=%d, got %d", ErrInvalidArgument, chunk*k, k, len(b))
	}
	elems := make([]algebra.ModPol, k)
	for i := 0; i < k; i++ {
		p, err := ByteDecode12(b[i*chunk : (i+1)*chunk])
		if err != nil {
			return algebra.Vec{}, err
		}
		elems[i] = p
	}
	return algebra.NewVec(elems)
}

// EncodeCompressedVec compresses and serializes every element of v at
// width d, concatenating the per-element encodings in order.
func EncodeCompressedVec(v algebra.Vec, d int) ([]byte, error) {
	out := make([]byte, 0, v.K()*32*d)
	for i := 0; i < v.K(); i++ {
		b, err := EncodeCompressed(v.At(i), d)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodeDecompressedVec is the inverse of EncodeCompressedVec.
func DecodeDecompressedVec(b []byte, k, d int) (algebra.Vec, error) {
	chunk := 32 * d
	if len(b) != chunk*k {
		return algebra.Vec{}, fmt.Errorf("kyber.DecodeDecompressedVec: %w: expected %d bytes for k=%d,d=%d, got %d", ErrInvalidArgument, chunk*k, k, d, len(b))
	}
	elems := make([]algebra.ModPol, k)
	for i := 0; i < k; i++ {
		p, err := DecodeDecompressed(b[i*chunk:(i+1)*chunk], d)
		if err != nil {
			return algebra.Vec{}, err
		}
		elems[i] = p
	}
	return algebra.NewVec(elems)
}
