package kzg

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// OpeningProof is a proof to the claim that a committed polynomial f
// evaluates at the point `z` to `f(z)`.
type OpeningProof struct {
	// Commitment to the quotient polynomial (f(X) - f(z)) / (X - z).
	QuotientCommitment bls12381.G1Affine

	// The point z that the polynomial is opened at.
	InputPoint fr.Element

	// The purported value f(z).
	ClaimedValue fr.Element
}

// Open creates an opening proof for `p` at `point`. The point may lie inside
// or outside the domain.
func Open(domain *Domain, p Polynomial, point fr.Element, ck *CommitKeyLagrange) (OpeningProof, error) {
	if len(p) == 0 || len(p) > len(ck.G1) {
		return OpeningProof{}, ErrInvalidPolynomialSize
	}

	outputPoint, err := domain.EvaluateLagrangePolynomial(p, point)
	if err != nil {
		return OpeningProof{}, err
	}

	quotientPoly, err := computeQuotientPoly(domain, p, point, *outputPoint)
	if err != nil {
		return OpeningProof{}, err
	}

	quotientCommitment, err := ck.Commit(quotientPoly)
	if err != nil {
		return OpeningProof{}, err
	}

	return OpeningProof{
		QuotientCommitment: *quotientCommitment,
		InputPoint:         point,
		ClaimedValue:       *outputPoint,
	}, nil
}

// Verify checks an opening proof against a commitment. It returns nil on
// success and ErrVerifyOpeningProof when the pairing identity does not hold.
//
// The identity checked is
//
//	e(C - [y]G1, G2) * e(q, -([tau]G2 - [z]G2)) == 1
//
// rearranged as
//
//	e([y - z*q]G1 - C, G2) * e(q, [tau]G2) == 1
//
// so that both G2 arguments are fixed and the precomputed pairing lines in
// the opening key apply.
func Verify(commitment *Commitment, proof *OpeningProof, openKey *OpeningKey) error {
	// [y]G1 + [-z]([q]G1) = [y - z*q]G1
	var totalG1 bls12381.G1Jac
	var pointNeg fr.Element
	var claimedBig, pointBig big.Int
	proof.ClaimedValue.BigInt(&claimedBig)
	pointNeg.Neg(&proof.InputPoint).BigInt(&pointBig)
	totalG1.JointScalarMultiplication(&openKey.GenG1, &proof.QuotientCommitment, &claimedBig, &pointBig)

	// [y - z*q]G1 - C
	var commitmentJac bls12381.G1Jac
	commitmentJac.FromAffine(commitment)
	totalG1.SubAssign(&commitmentJac)

	var totalG1Aff bls12381.G1Affine
	totalG1Aff.FromJacobian(&totalG1)
	check, err := bls12381.PairingCheckFixedQ(
		[]bls12381.G1Affine{totalG1Aff, proof.QuotientCommitment},
		openKey.PairingLines[:],
	)
	if err != nil {
		return err
	}
	if !check {
		return ErrVerifyOpeningProof
	}

	return nil
}
