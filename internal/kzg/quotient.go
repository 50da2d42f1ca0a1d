package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// computeQuotientPoly returns the quotient (poly(X) - y) / (X - z) in
// Lagrange form, where y = poly(z). The two cases, z inside and outside the
// domain, have different structure and are kept as separate code paths.
func computeQuotientPoly(domain *Domain, poly Polynomial, z, y fr.Element) (Polynomial, error) {
	if domain.Cardinality != uint64(len(poly)) {
		return nil, ErrPolynomialMismatchedSizeDomain
	}

	if index := domain.findRootIndex(z); index != -1 {
		return computeQuotientPolyOnDomain(domain, poly, index, y), nil
	}
	return computeQuotientPolyOutsideDomain(domain, poly, z, y), nil
}

// computeQuotientPolyOutsideDomain handles z outside the domain:
//
//	q[i] = (poly[i] - y) / (roots[i] - z)
//
// None of the denominators vanish since z is not a root of unity.
func computeQuotientPolyOutsideDomain(domain *Domain, poly Polynomial, z, y fr.Element) Polynomial {
	// Store the denominators in the quotient vector to avoid a second
	// allocation.
	quotient := make(Polynomial, len(poly))
	for i := range quotient {
		quotient[i].Sub(&domain.Roots[i], &z)
	}
	BatchInvert(quotient)

	var numerator fr.Element
	for i := range quotient {
		numerator.Sub(&poly[i], &y)
		quotient[i].Mul(&quotient[i], &numerator)
	}

	return quotient
}

// computeQuotientPolyOnDomain handles z = roots[m]. Off the diagonal the
// usual formula applies with roots[m] in place of z; the diagonal entry is
// the closed form
//
//	q[m] = sum_{i != m} (poly[i] - y) * roots[i] / (roots[m] * (roots[m] - roots[i]))
func computeQuotientPolyOnDomain(domain *Domain, poly Polynomial, m int, y fr.Element) Polynomial {
	root := domain.Roots[m]

	// Invert roots[i] - roots[m] for all i != m. Slot m is patched to one so
	// that the batch inversion never sees a zero.
	denoms := make([]fr.Element, len(poly))
	for i := range denoms {
		denoms[i].Sub(&domain.Roots[i], &root)
	}
	denoms[m].SetOne()
	BatchInvert(denoms)

	quotient := make(Polynomial, len(poly))
	var tmp, diagonal fr.Element
	for i := range quotient {
		if i == m {
			continue
		}
		tmp.Sub(&poly[i], &y)
		quotient[i].Mul(&tmp, &denoms[i])

		// Accumulate (poly[i] - y) * roots[i] / (roots[i] - roots[m]); the
		// shared factor -1/roots[m] is applied once below.
		tmp.Mul(&tmp, &domain.Roots[i])
		tmp.Mul(&tmp, &denoms[i])
		diagonal.Add(&diagonal, &tmp)
	}

	var rootInv fr.Element
	rootInv.Inverse(&root)
	diagonal.Mul(&diagonal, &rootInv)
	quotient[m].Neg(&diagonal)

	return quotient
}
