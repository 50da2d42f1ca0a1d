package kzg

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func TestRootsOfUnity(t *testing.T) {
	domain := NewDomain(64)

	one := fr.One()
	require.True(t, domain.Roots[0].Equal(&one), "first root must be one")

	// Consecutive roots differ by one multiplication by the generator,
	// wrapping around at the end.
	var next fr.Element
	for i := uint64(0); i < domain.Cardinality; i++ {
		next.Mul(&domain.Roots[i], &domain.Generator)
		require.True(t, next.Equal(&domain.Roots[(i+1)%domain.Cardinality]))
	}

	// The generator has exactly order n.
	var genPow fr.Element
	genPow.Exp(domain.Generator, new(big.Int).SetUint64(domain.Cardinality))
	require.True(t, genPow.IsOne())
	genPow.Exp(domain.Generator, new(big.Int).SetUint64(domain.Cardinality/2))
	require.False(t, genPow.IsOne())

	var nTimesNInv fr.Element
	nTimesNInv.SetUint64(domain.Cardinality)
	nTimesNInv.Mul(&nTimesNInv, &domain.CardinalityInv)
	require.True(t, nTimesNInv.IsOne())

	var genTimesInv fr.Element
	genTimesInv.Mul(&domain.Generator, &domain.GeneratorInv)
	require.True(t, genTimesInv.IsOne())
}

func TestNewDomainPadsToPowerOfTwo(t *testing.T) {
	require.Equal(t, uint64(8), NewDomain(5).Cardinality)
	require.Equal(t, uint64(16), NewDomain(16).Cardinality)
}

func TestNewDomainTooLargePanics(t *testing.T) {
	require.Panics(t, func() {
		NewDomain(1 << 33)
	})
}

func TestReverseRootsIsInvolution(t *testing.T) {
	domain := NewDomain(32)

	expected := make([]fr.Element, len(domain.Roots))
	copy(expected, domain.Roots)

	domain.ReverseRoots()
	require.NotEqual(t, expected, domain.Roots)
	domain.ReverseRoots()
	require.Equal(t, expected, domain.Roots)
}

func TestFindRootIndex(t *testing.T) {
	domain := NewDomain(16)

	for i := range domain.Roots {
		require.Equal(t, i, domain.findRootIndex(domain.Roots[i]))
	}

	var notARoot fr.Element
	notARoot.SetUint64(12345)
	require.Equal(t, -1, domain.findRootIndex(notARoot))
	require.False(t, domain.isInDomain(notARoot))
}

func TestEvaluateInDomainIsLookup(t *testing.T) {
	domain := NewDomain(32)
	poly := randomPolynomial(t, int(domain.Cardinality))

	for i := range domain.Roots {
		got, err := domain.EvaluateLagrangePolynomial(poly, domain.Roots[i])
		require.NoError(t, err)
		require.True(t, poly[i].Equal(got))
	}
}

func TestEvaluateMatchesCoefficientForm(t *testing.T) {
	domain := NewDomain(16)

	// Build a polynomial from known coefficients and its evaluation form
	// over the domain.
	coeffs := make([]fr.Element, domain.Cardinality)
	for i := range coeffs {
		coeffs[i].SetUint64(uint64(i + 1))
	}
	evaluations := make(Polynomial, domain.Cardinality)
	for i := range evaluations {
		evaluations[i] = evalCoeffPoly(coeffs, domain.Roots[i])
	}

	// The barycentric formula must agree with direct evaluation at points
	// outside of the domain.
	var z fr.Element
	z.SetUint64(987654321)
	require.False(t, domain.isInDomain(z))

	got, err := domain.EvaluateLagrangePolynomial(evaluations, z)
	require.NoError(t, err)

	expected := evalCoeffPoly(coeffs, z)
	require.True(t, expected.Equal(got))
}

func TestEvaluateMismatchedSize(t *testing.T) {
	domain := NewDomain(16)
	poly := randomPolynomial(t, 8)

	var z fr.Element
	z.SetUint64(42)
	_, err := domain.EvaluateLagrangePolynomial(poly, z)
	require.ErrorIs(t, err, ErrPolynomialMismatchedSizeDomain)
}
