package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Polynomial is a polynomial in Lagrange form: its i'th entry is the
// evaluation at the i'th root of unity of the domain it was created against.
type Polynomial = []fr.Element

// PolyLinComb computes sum_i scalars[i] * polys[i], a linear combination of
// evaluation vectors. All polynomials must have the same length; the result
// has that length too.
func PolyLinComb(polys []Polynomial, scalars []fr.Element) (Polynomial, error) {
	if len(polys) != len(scalars) {
		return nil, ErrMismatchedPolysAndComms
	}
	if len(polys) == 0 {
		return nil, ErrEmptyBatch
	}

	numEvaluations := len(polys[0])
	result := make(Polynomial, numEvaluations)

	var tmp fr.Element
	for i := range polys {
		if len(polys[i]) != numEvaluations {
			return nil, ErrPolynomialMismatchedSizeDomain
		}
		for j := 0; j < numEvaluations; j++ {
			tmp.Mul(&polys[i][j], &scalars[i])
			result[j].Add(&result[j], &tmp)
		}
	}

	return result, nil
}
