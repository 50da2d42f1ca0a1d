package danksharding

import (
	"errors"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"golang.org/x/sync/errgroup"

	"github.com/crate-crypto/go-proto-danksharding-crypto/internal/kzg"
)

// BlobToKZGCommitment commits to the polynomial a blob encodes. The result
// is the 48-byte compressed commitment.
func (c *Context) BlobToKZGCommitment(blob []byte) (KZGCommitmentBytes, error) {
	poly, err := deserializeBlob(blob)
	if err != nil {
		return KZGCommitmentBytes{}, err
	}

	commitment, err := c.commitKey.Commit(poly)
	if err != nil {
		return KZGCommitmentBytes{}, err
	}

	return serializeG1Point(*commitment), nil
}

// BlobsToKZGCommitments commits to a batch of blobs. Commitments are
// computed in parallel; a single undecodable blob rejects the whole batch.
func (c *Context) BlobsToKZGCommitments(blobs [][]byte) ([]KZGCommitmentBytes, error) {
	polys, err := deserializeBlobs(blobs)
	if err != nil {
		return nil, err
	}

	comms, err := c.commitToPolynomials(polys)
	if err != nil {
		return nil, err
	}

	return serializeG1Points(comms), nil
}

// ComputeAggregatedKZGProof commits to every blob and produces a single
// witness proving all blobs are consistent with those commitments. The
// commitments are returned alongside the witness so callers do not commit
// twice.
func (c *Context) ComputeAggregatedKZGProof(blobs [][]byte) (KZGWitnessBytes, []KZGCommitmentBytes, error) {
	polys, err := deserializeBlobs(blobs)
	if err != nil {
		return KZGWitnessBytes{}, nil, err
	}

	comms, err := c.commitToPolynomials(polys)
	if err != nil {
		return KZGWitnessBytes{}, nil, err
	}

	aggregatedKZG, err := kzg.NewAggregatedKZG(polys, comms)
	if err != nil {
		return KZGWitnessBytes{}, nil, err
	}

	witness, err := aggregatedKZG.Create(c.commitKey, c.domain)
	if err != nil {
		return KZGWitnessBytes{}, nil, err
	}

	return serializeG1Point(*witness), serializeG1Points(comms), nil
}

// VerifyAggregatedKZGProof checks a witness produced by
// ComputeAggregatedKZGProof against the blobs and their claimed
// commitments. An invalid proof returns (false, nil); an error means the
// inputs could not be decoded, or the batch is empty, or the number of blobs
// and commitments differ.
func (c *Context) VerifyAggregatedKZGProof(blobs [][]byte, serComms []KZGCommitmentBytes, serWitness KZGWitnessBytes) (bool, error) {
	polys, err := deserializeBlobs(blobs)
	if err != nil {
		return false, err
	}

	comms, err := deserializeG1Points(serComms)
	if err != nil {
		return false, err
	}

	witness, err := deserializeG1Point(serWitness)
	if err != nil {
		return false, err
	}

	aggregatedKZG, err := kzg.NewAggregatedKZG(polys, comms)
	if err != nil {
		return false, err
	}

	return aggregatedKZG.Verify(c.openKey, witness, c.domain)
}

// VerifyKZGProof checks a single opening proof: that the polynomial behind
// `serComm` evaluates to `serY` at `serZ`. An invalid proof returns
// (false, nil).
func (c *Context) VerifyKZGProof(serComm KZGCommitmentBytes, serZ, serY SerializedScalar, serProof KZGWitnessBytes) (bool, error) {
	z, err := deserializeScalar(serZ)
	if err != nil {
		return false, err
	}
	y, err := deserializeScalar(serY)
	if err != nil {
		return false, err
	}
	commitment, err := deserializeG1Point(serComm)
	if err != nil {
		return false, err
	}
	quotientCommitment, err := deserializeG1Point(serProof)
	if err != nil {
		return false, err
	}

	proof := kzg.OpeningProof{
		QuotientCommitment: quotientCommitment,
		InputPoint:         z,
		ClaimedValue:       y,
	}

	err = kzg.Verify(&commitment, &proof, c.openKey)
	if errors.Is(err, kzg.ErrVerifyOpeningProof) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *Context) commitToPolynomials(polys []kzg.Polynomial) ([]bls12381.G1Affine, error) {
	comms := make([]bls12381.G1Affine, len(polys))

	var group errgroup.Group
	for i := range polys {
		i := i
		group.Go(func() error {
			commitment, err := c.commitKey.Commit(polys[i])
			if err != nil {
				return err
			}
			comms[i] = *commitment
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return comms, nil
}
