package utils

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// IsPowerOfTwo returns true if `value` is a power of two integer.
func IsPowerOfTwo(value uint64) bool {
	return value > 0 && (value&(value-1) == 0)
}

// ComputePowers returns the first `n` powers of x: [1, x, x^2, ..., x^(n-1)].
func ComputePowers(x fr.Element, n uint) []fr.Element {
	powers := make([]fr.Element, n)

	currentPower := fr.One()
	for i := uint(0); i < n; i++ {
		powers[i] = currentPower
		currentPower.Mul(&currentPower, &x)
	}

	return powers
}

// ScalarFromBytesLECanonical decodes a 32-byte little-endian encoding of a
// scalar. The encoding must be canonical, i.e. represent an integer strictly
// smaller than the scalar field modulus.
func ScalarFromBytesLECanonical(serScalar [32]byte) (fr.Element, error) {
	reverse32(&serScalar)

	var scalar fr.Element
	if err := scalar.SetBytesCanonical(serScalar[:]); err != nil {
		return fr.Element{}, err
	}
	return scalar, nil
}

// ScalarToBytesLE returns the canonical 32-byte little-endian encoding of a
// scalar.
func ScalarToBytesLE(scalar fr.Element) [32]byte {
	serScalar := scalar.Bytes()
	reverse32(&serScalar)
	return serScalar
}

// ReduceBytesLE interprets the input as a little-endian integer and reduces
// it modulo the scalar field order. Used for deriving scalars from hash
// digests, where the value is not required to be canonical.
func ReduceBytesLE(b [32]byte) fr.Element {
	reverse32(&b)

	var scalar fr.Element
	scalar.SetBytes(b[:])
	return scalar
}

func reverse32(b *[32]byte) {
	for i := 0; i < 16; i++ {
		b[i], b[31-i] = b[31-i], b[i]
	}
}
