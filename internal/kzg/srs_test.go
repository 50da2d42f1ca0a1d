package kzg

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

// Committing to the coefficients with the monomial SRS and committing to the
// evaluations with its Lagrange conversion must give the same group element.
func TestIntoLagrangeAgreesWithMonomial(t *testing.T) {
	const degree = 16
	domain := NewDomain(degree)

	coeffs := make([]fr.Element, degree)
	for i := range coeffs {
		coeffs[i].SetUint64(uint64(i))
	}

	evaluations := make(Polynomial, degree)
	for i := range evaluations {
		evaluations[i] = evalCoeffPoly(coeffs, domain.Roots[i])
	}

	var secret fr.Element
	secret.SetUint64(1234567)
	_, _, g1Gen, _ := bls12381.Generators()

	monomialSRS := make([]bls12381.G1Affine, degree)
	power := fr.One()
	var powerBig big.Int
	for i := range monomialSRS {
		power.BigInt(&powerBig)
		monomialSRS[i].ScalarMultiplication(&g1Gen, &powerBig)
		power.Mul(&power, &secret)
	}

	expected, err := g1LinComb(monomialSRS, coeffs)
	require.NoError(t, err)

	lagrangeKey, err := (&CommitKey{G1: monomialSRS}).IntoLagrange(domain)
	require.NoError(t, err)
	got, err := lagrangeKey.Commit(evaluations)
	require.NoError(t, err)

	require.True(t, expected.Equal(got))
}

func TestIntoLagrangeMismatchedSize(t *testing.T) {
	domain := NewDomain(16)
	_, err := (&CommitKey{G1: make([]bls12381.G1Affine, 8)}).IntoLagrange(domain)
	require.ErrorIs(t, err, ErrPolynomialMismatchedSizeDomain)
}

func TestInsecureSRSOpeningKey(t *testing.T) {
	srs, domain := testSetup(t, 16)

	require.Len(t, srs.CommitKey.G1, int(domain.Cardinality))

	// AlphaG2 must be tau times the G2 generator.
	var expected bls12381.G2Affine
	expected.ScalarMultiplication(&srs.OpeningKey.GenG2, big.NewInt(1337))
	require.True(t, expected.Equal(&srs.OpeningKey.AlphaG2))
}

func TestCommitRejectsBadSizes(t *testing.T) {
	srs, _ := testSetup(t, 16)

	_, err := srs.CommitKey.Commit(Polynomial{})
	require.ErrorIs(t, err, ErrInvalidPolynomialSize)

	_, err = srs.CommitKey.Commit(randomPolynomial(t, 17))
	require.ErrorIs(t, err, ErrInvalidPolynomialSize)
}

func TestG1LinCombEmptyIsIdentity(t *testing.T) {
	result, err := g1LinComb(nil, nil)
	require.NoError(t, err)
	require.True(t, result.IsInfinity())
}

func TestG1LinCombMismatchedLengths(t *testing.T) {
	_, _, g1Gen, _ := bls12381.Generators()
	_, err := g1LinComb([]bls12381.G1Affine{g1Gen}, nil)
	require.ErrorIs(t, err, ErrMismatchedPointsAndScalars)
}
