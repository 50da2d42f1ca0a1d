package kzg

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

// testSetup returns an insecure SRS and a matching domain of the given size.
func testSetup(t testing.TB, size uint64) (*SRS, *Domain) {
	t.Helper()

	domain := NewDomain(size)
	srs, err := NewLagrangeSRSInsecure(domain, big.NewInt(1337))
	require.NoError(t, err)

	return srs, domain
}

func randomPolynomial(t testing.TB, size int) Polynomial {
	t.Helper()

	poly := make(Polynomial, size)
	for i := range poly {
		_, err := poly[i].SetRandom()
		require.NoError(t, err)
	}
	return poly
}

// evalCoeffPoly evaluates a polynomial given by its coefficients, low degree
// first, at `point`.
func evalCoeffPoly(coeffs []fr.Element, point fr.Element) fr.Element {
	var result fr.Element
	for i := len(coeffs) - 1; i >= 0; i-- {
		result.Mul(&result, &point)
		result.Add(&result, &coeffs[i])
	}
	return result
}
