package kzg

import (
	"errors"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/crate-crypto/go-proto-danksharding-crypto/internal/transcript"
	"github.com/crate-crypto/go-proto-danksharding-crypto/internal/utils"
)

// AggregatedKZG proves that a batch of polynomials is consistent with their
// stated commitments: p_j(z) = y_j for every j, at a single challenge point
// z derived from the transcript.
//
// The setting is unconventional for aggregation: the verifier holds the full
// polynomials and can evaluate them itself, but the polynomials may be
// corrupted, so the trusted commitments are what they are checked against.
// The prover therefore only returns the quotient commitment (the witness);
// the verifier recomputes everything else.
type AggregatedKZG struct {
	polys     []Polynomial
	polyComms []bls12381.G1Affine
}

// NewAggregatedKZG pairs a batch of polynomials with their commitments. The
// batch must be non-empty, and the slices must have equal length.
func NewAggregatedKZG(polys []Polynomial, polyComms []bls12381.G1Affine) (*AggregatedKZG, error) {
	if len(polys) != len(polyComms) {
		return nil, ErrMismatchedPolysAndComms
	}
	if len(polys) == 0 {
		return nil, ErrEmptyBatch
	}
	return &AggregatedKZG{polys: polys, polyComms: polyComms}, nil
}

// Create produces the aggregated opening proof: the commitment to the
// quotient of the aggregated polynomial at the challenge point.
func (a *AggregatedKZG) Create(ck *CommitKeyLagrange, domain *Domain) (*bls12381.G1Affine, error) {
	aggPoly, _, evalPoint, err := a.fold()
	if err != nil {
		return nil, err
	}

	proof, err := Open(domain, aggPoly, evalPoint, ck)
	if err != nil {
		return nil, err
	}

	// The verifier recomputes the aggregated commitment and the claimed
	// value on its own; only the witness needs to travel.
	return &proof.QuotientCommitment, nil
}

// Verify checks an aggregated opening proof. An invalid proof is a normal
// outcome and returns (false, nil); errors are reserved for malformed
// inputs.
func (a *AggregatedKZG) Verify(openKey *OpeningKey, witness bls12381.G1Affine, domain *Domain) (bool, error) {
	aggPoly, aggComm, evalPoint, err := a.fold()
	if err != nil {
		return false, err
	}

	outputPoint, err := domain.EvaluateLagrangePolynomial(aggPoly, evalPoint)
	if err != nil {
		return false, err
	}

	proof := OpeningProof{
		QuotientCommitment: witness,
		InputPoint:         evalPoint,
		ClaimedValue:       *outputPoint,
	}

	err = Verify(aggComm, &proof, openKey)
	if errors.Is(err, ErrVerifyOpeningProof) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// fold runs the shared prover/verifier prefix of the protocol: it absorbs
// the batch into a fresh transcript, squeezes the aggregation challenge r
// and the evaluation challenge z, and folds the batch with powers of r.
func (a *AggregatedKZG) fold() (Polynomial, *bls12381.G1Affine, fr.Element, error) {
	t := transcript.NewWithProtocolName(transcript.DomSepProtocol)
	t.AppendPolysAndPoints(a.polys, a.polyComms)

	challenges := t.ChallengeScalars(2)
	r, z := challenges[0], challenges[1]

	powers := utils.ComputePowers(r, uint(len(a.polys)))

	aggPoly, err := PolyLinComb(a.polys, powers)
	if err != nil {
		return nil, nil, fr.Element{}, err
	}

	aggComm, err := g1LinComb(a.polyComms, powers)
	if err != nil {
		return nil, nil, fr.Element{}, err
	}

	return aggPoly, aggComm, z, nil
}
