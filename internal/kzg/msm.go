package kzg

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// g1LinComb computes the inner product sum_i scalars[i] * points[i] in G1.
//
// An empty input returns the identity point.
func g1LinComb(points []bls12381.G1Affine, scalars []fr.Element) (*bls12381.G1Affine, error) {
	if len(points) != len(scalars) {
		return nil, ErrMismatchedPointsAndScalars
	}

	var result bls12381.G1Affine
	if len(points) == 0 {
		return &result, nil
	}

	if _, err := result.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return nil, err
	}
	return &result, nil
}
