package kzg

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/crate-crypto/go-proto-danksharding-crypto/internal/utils"
)

// Commitment is a commitment to a polynomial: an element of G1.
type Commitment = bls12381.G1Affine

// CommitKey holds the monomial form of the structured reference string,
// group elements {tau^i G1}. It carries no commit method: polynomials are
// committed to in Lagrange form, so the only operation is the conversion.
type CommitKey struct {
	G1 []bls12381.G1Affine
}

// IntoLagrange converts the monomial SRS into the Lagrange SRS
// {L_i(tau) G1} with a G1 inverse FFT over the domain.
func (ck *CommitKey) IntoLagrange(domain *Domain) (*CommitKeyLagrange, error) {
	lagrangeG1, err := domain.IfftG1(ck.G1)
	if err != nil {
		return nil, err
	}
	return &CommitKeyLagrange{G1: lagrangeG1}, nil
}

// CommitKeyLagrange holds the Lagrange form of the structured reference
// string, group elements {L_i(tau) G1}.
type CommitKeyLagrange struct {
	G1 []bls12381.G1Affine
}

// Commit commits to a polynomial in Lagrange form.
func (ck *CommitKeyLagrange) Commit(p Polynomial) (*Commitment, error) {
	if len(p) == 0 || len(p) > len(ck.G1) {
		return nil, ErrInvalidPolynomialSize
	}
	return g1LinComb(ck.G1[:len(p)], p)
}

// ReverseG1Points applies the bit-reversal permutation to the key, matching
// a domain whose roots have been permuted the same way.
func (ck *CommitKeyLagrange) ReverseG1Points() {
	utils.BitReverse(ck.G1)
}

// OpeningKey holds the group elements needed to verify opening proofs.
type OpeningKey struct {
	// Generator of G1 used in the setup.
	GenG1 bls12381.G1Affine
	// Generator of G2 used in the setup.
	GenG2 bls12381.G2Affine
	// tau times the generator of G2.
	AlphaG2 bls12381.G2Affine
	// Precomputed Miller-loop lines for GenG2 and AlphaG2, in that order.
	// Verification pairs fixed G2 arguments only, so the lines are computed
	// once here.
	PairingLines [2][2][len(bls12381.LoopCounter) - 1]bls12381.LineEvaluationAff
}

// NewOpeningKey precomputes the pairing lines for the two fixed G2 points.
func NewOpeningKey(genG1 bls12381.G1Affine, genG2, alphaG2 bls12381.G2Affine) *OpeningKey {
	return &OpeningKey{
		GenG1:   genG1,
		GenG2:   genG2,
		AlphaG2: alphaG2,
		PairingLines: [2][2][len(bls12381.LoopCounter) - 1]bls12381.LineEvaluationAff{
			bls12381.PrecomputeLines(genG2),
			bls12381.PrecomputeLines(alphaG2),
		},
	}
}

// SRS couples the commitment key with the opening key. Both are derived from
// the same secret tau and domain size.
type SRS struct {
	CommitKey  CommitKeyLagrange
	OpeningKey OpeningKey
}

// NewSRSFromMonomial builds public parameters from a monomial SRS, running
// the G1 inverse FFT to obtain the Lagrange commitment key. The number of G1
// points must equal the domain size.
func NewSRSFromMonomial(domain *Domain, g1s []bls12381.G1Affine, g1Gen bls12381.G1Affine, g2Gen, alphaG2 bls12381.G2Affine) (*SRS, error) {
	monomialKey := CommitKey{G1: g1s}
	lagrangeKey, err := monomialKey.IntoLagrange(domain)
	if err != nil {
		return nil, err
	}

	return &SRS{
		CommitKey:  *lagrangeKey,
		OpeningKey: *NewOpeningKey(g1Gen, g2Gen, alphaG2),
	}, nil
}

// NewLagrangeSRSInsecure generates the SRS from a known secret. The secret
// being known to the caller makes the commitment scheme trivially breakable:
// this exists for tests and local development only.
func NewLagrangeSRSInsecure(domain *Domain, tau *big.Int) (*SRS, error) {
	var tauFr fr.Element
	tauFr.SetBigInt(tau)

	_, _, g1Gen, g2Gen := bls12381.Generators()

	var alphaG2 bls12381.G2Affine
	alphaG2.ScalarMultiplication(&g2Gen, tau)

	// Powers of tau in G1, computed directly from the secret.
	g1s := make([]bls12381.G1Affine, domain.Cardinality)
	power := fr.One()
	var powerBig big.Int
	for i := range g1s {
		power.BigInt(&powerBig)
		g1s[i].ScalarMultiplication(&g1Gen, &powerBig)
		power.Mul(&power, &tauFr)
	}

	return NewSRSFromMonomial(domain, g1s, g1Gen, g2Gen, alphaG2)
}
