package kzg

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/crate-crypto/go-proto-danksharding-crypto/internal/utils"
)

// Domain is a multiplicative subgroup of the scalar field whose order is a
// power of two. Polynomials in Lagrange form are evaluations over the roots
// of unity of such a subgroup.
type Domain struct {
	// Size of the domain.
	Cardinality uint64
	// Inverse of the size of the domain as a field element.
	CardinalityInv fr.Element
	// Generator of the subgroup; it has order Cardinality.
	Generator fr.Element
	// Inverse of the generator, used for the inverse FFT.
	GeneratorInv fr.Element
	// Roots of unity [1, g, g^2, ..., g^(Cardinality-1)].
	//
	// After ReverseRoots has been applied the vector is in bit-reversed
	// order instead.
	Roots []fr.Element
}

// The scalar field of BLS12-381 has 2-adicity 32: it contains a
// multiplicative subgroup of order 2^32 and hence one of every power of two
// below that.
const maxOrderRoot uint64 = 32

// NewDomain returns a domain whose size is `m` rounded up to the next power
// of two. Panics if the required subgroup does not exist, i.e. if the padded
// size exceeds 2^32.
func NewDomain(m uint64) *Domain {
	domain := &Domain{}
	x := ecc.NextPowerOfTwo(m)
	domain.Cardinality = x

	// Generator of the largest power-of-two subgroup.
	var rootOfUnity fr.Element
	rootOfUnity.SetString("10238227357739495823651030575849232062558860180284477541189508159991286009131")

	logx := uint64(bits.TrailingZeros64(x))
	if logx > maxOrderRoot {
		panic(fmt.Sprintf("m (%d) is too big: the required root of unity does not exist", m))
	}

	// Raising to the power 2^(32-logx) produces an element of order 2^logx.
	expo := uint64(1 << (maxOrderRoot - logx))
	domain.Generator.Exp(rootOfUnity, new(big.Int).SetUint64(expo))
	domain.GeneratorInv.Inverse(&domain.Generator)
	domain.CardinalityInv.SetUint64(x).Inverse(&domain.CardinalityInv)

	// Populate the roots by repeated multiplication so that consecutive
	// entries differ by exactly one multiplication by the generator.
	domain.Roots = make([]fr.Element, x)
	current := fr.One()
	for i := uint64(0); i < x; i++ {
		domain.Roots[i] = current
		current.Mul(&current, &domain.Generator)
	}

	return domain
}

// ReverseRoots applies the bit-reversal permutation to the roots of unity.
func (d *Domain) ReverseRoots() {
	utils.BitReverse(d.Roots)
}

func (d *Domain) isInDomain(point fr.Element) bool {
	return d.findRootIndex(point) != -1
}

// findRootIndex returns the index of `point` in the domain, or -1 if it is
// not a root of unity. The scan is linear; domains are small enough that a
// lookup table is not worth carrying.
func (d *Domain) findRootIndex(point fr.Element) int {
	for i := 0; i < int(d.Cardinality); i++ {
		if point.Equal(&d.Roots[i]) {
			return i
		}
	}
	return -1
}

// EvaluateLagrangePolynomial returns the evaluation of the polynomial at
// `evalPoint`. The number of evaluations must equal the domain size.
func (d *Domain) EvaluateLagrangePolynomial(poly Polynomial, evalPoint fr.Element) (*fr.Element, error) {
	outputPoint, _, err := d.evaluateLagrangePolynomial(poly, evalPoint)
	return outputPoint, err
}

// evaluateLagrangePolynomial also returns the index of the evaluation point
// in the domain, or -1 when it lies outside.
func (d *Domain) evaluateLagrangePolynomial(poly Polynomial, evalPoint fr.Element) (*fr.Element, int, error) {
	if d.Cardinality != uint64(len(poly)) {
		return nil, -1, ErrPolynomialMismatchedSizeDomain
	}

	// Evaluating at a root of unity is a lookup.
	if index := d.findRootIndex(evalPoint); index != -1 {
		return &poly[index], index, nil
	}

	// Otherwise use the barycentric formula
	//
	//	p(z) = (z^n - 1)/n * sum_i evals[i] * roots[i] / (z - roots[i])
	//
	// No denominator can be zero here since z is not in the domain.
	denom := make([]fr.Element, d.Cardinality)
	for i := range denom {
		denom[i].Sub(&evalPoint, &d.Roots[i])
	}
	BatchInvert(denom)

	var result, tmp fr.Element
	for i := 0; i < int(d.Cardinality); i++ {
		tmp.Mul(&poly[i], &d.Roots[i])
		tmp.Mul(&tmp, &denom[i])
		result.Add(&result, &tmp)
	}

	tmp.Exp(evalPoint, new(big.Int).SetUint64(d.Cardinality))
	one := fr.One()
	tmp.Sub(&tmp, &one)
	tmp.Mul(&tmp, &d.CardinalityInv)
	result.Mul(&result, &tmp)

	return &result, -1, nil
}

// IfftG1 interpolates a vector of group elements over the domain: given
// {p(roots[i])} it returns the coefficients of p scaled into G1. Its one use
// is converting a monomial SRS {tau^i G1} into the Lagrange SRS
// {L_i(tau) G1}.
func (d *Domain) IfftG1(points []bls12381.G1Affine) ([]bls12381.G1Affine, error) {
	if uint64(len(points)) != d.Cardinality {
		return nil, ErrPolynomialMismatchedSizeDomain
	}

	jacPoints := make([]bls12381.G1Jac, len(points))
	for i := range points {
		jacPoints[i].FromAffine(&points[i])
	}

	output := fftG1(jacPoints, d.GeneratorInv)

	var nInv big.Int
	d.CardinalityInv.BigInt(&nInv)
	for i := range output {
		output[i].ScalarMultiplication(&output[i], &nInv)
	}

	return bls12381.BatchJacobianToAffineG1(output), nil
}

// fftG1 is a recursive radix-2 decimation-in-time FFT over G1.
func fftG1(points []bls12381.G1Jac, nthRootOfUnity fr.Element) []bls12381.G1Jac {
	n := len(points)
	if n == 1 {
		return []bls12381.G1Jac{points[0]}
	}

	even, odd := takeEvenOdd(points)

	// The even/odd halves are evaluated over the squared root, which has
	// half the order.
	var rootSquared fr.Element
	rootSquared.Square(&nthRootOfUnity)

	fftEven := fftG1(even, rootSquared)
	fftOdd := fftG1(odd, rootSquared)

	twiddle := fr.One()
	var twiddleBig big.Int
	evaluations := make([]bls12381.G1Jac, n)
	for k := 0; k < n/2; k++ {
		var tmp bls12381.G1Jac
		twiddle.BigInt(&twiddleBig)
		tmp.ScalarMultiplication(&fftOdd[k], &twiddleBig)

		evaluations[k].Set(&fftEven[k]).AddAssign(&tmp)
		evaluations[k+n/2].Set(&fftEven[k]).SubAssign(&tmp)

		twiddle.Mul(&twiddle, &nthRootOfUnity)
	}

	return evaluations
}

func takeEvenOdd(points []bls12381.G1Jac) ([]bls12381.G1Jac, []bls12381.G1Jac) {
	even := make([]bls12381.G1Jac, 0, len(points)/2)
	odd := make([]bls12381.G1Jac, 0, len(points)/2)
	for i := range points {
		if i%2 == 0 {
			even = append(even, points[i])
		} else {
			odd = append(odd, points[i])
		}
	}
	return even, odd
}
