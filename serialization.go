package danksharding

import (
	"errors"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/crate-crypto/go-proto-danksharding-crypto/internal/kzg"
	"github.com/crate-crypto/go-proto-danksharding-crypto/internal/utils"
)

// SerializedScalar is the canonical little-endian encoding of a field
// element.
type SerializedScalar = [SerializedScalarSize]byte

// SerializedG1Point is the compressed encoding of a G1 point.
type SerializedG1Point = [CompressedG1Size]byte

// KZGCommitmentBytes is a serialized commitment to a blob polynomial.
type KZGCommitmentBytes = SerializedG1Point

// KZGWitnessBytes is a serialized quotient commitment; the consensus specs
// call this a KZG proof.
type KZGWitnessBytes = SerializedG1Point

var (
	// ErrBlobLength is returned when a blob is empty or not a multiple of
	// the scalar size.
	ErrBlobLength = errors.New("blob length must be a non-zero multiple of 32")

	// ErrBlobElementCount is returned when a blob does not hold exactly
	// FieldElementsPerBlob scalars.
	ErrBlobElementCount = errors.New("blob must contain exactly 4096 field elements")
)

// deserializeBlob converts a blob into a polynomial in Lagrange form. Every
// 32-byte chunk must be a canonical scalar; a single bad chunk rejects the
// whole blob.
func deserializeBlob(blob []byte) (kzg.Polynomial, error) {
	if len(blob) == 0 || len(blob)%SerializedScalarSize != 0 {
		return nil, ErrBlobLength
	}

	numScalars := len(blob) / SerializedScalarSize
	if numScalars != FieldElementsPerBlob {
		return nil, ErrBlobElementCount
	}

	poly := make(kzg.Polynomial, numScalars)
	for i := 0; i < numScalars; i++ {
		chunk := (*[SerializedScalarSize]byte)(blob[i*SerializedScalarSize : (i+1)*SerializedScalarSize])
		scalar, err := utils.ScalarFromBytesLECanonical(*chunk)
		if err != nil {
			return nil, fmt.Errorf("blob element %d: %w", i, err)
		}
		poly[i] = scalar
	}

	return poly, nil
}

func deserializeBlobs(blobs [][]byte) ([]kzg.Polynomial, error) {
	polys := make([]kzg.Polynomial, len(blobs))
	for i, blob := range blobs {
		poly, err := deserializeBlob(blob)
		if err != nil {
			return nil, fmt.Errorf("blob %d: %w", i, err)
		}
		polys[i] = poly
	}
	return polys, nil
}

// serializeBlob is the inverse of deserializeBlob.
func serializeBlob(poly kzg.Polynomial) []byte {
	blob := make([]byte, 0, len(poly)*SerializedScalarSize)
	for i := range poly {
		serScalar := utils.ScalarToBytesLE(poly[i])
		blob = append(blob, serScalar[:]...)
	}
	return blob
}

// deserializeG1Point decodes a compressed G1 point, checking the compression
// flags and that the point is on the curve and in the prime-order subgroup.
func deserializeG1Point(serPoint SerializedG1Point) (bls12381.G1Affine, error) {
	var point bls12381.G1Affine
	if _, err := point.SetBytes(serPoint[:]); err != nil {
		return bls12381.G1Affine{}, fmt.Errorf("deserialize G1 point: %w", err)
	}
	return point, nil
}

func deserializeG1Points(serPoints []KZGCommitmentBytes) ([]bls12381.G1Affine, error) {
	points := make([]bls12381.G1Affine, len(serPoints))
	for i, serPoint := range serPoints {
		point, err := deserializeG1Point(serPoint)
		if err != nil {
			return nil, err
		}
		points[i] = point
	}
	return points, nil
}

func serializeG1Point(point bls12381.G1Affine) SerializedG1Point {
	return point.Bytes()
}

func serializeG1Points(points []bls12381.G1Affine) []KZGCommitmentBytes {
	serPoints := make([]KZGCommitmentBytes, len(points))
	for i := range points {
		serPoints[i] = serializeG1Point(points[i])
	}
	return serPoints
}

func deserializeScalar(serScalar SerializedScalar) (fr.Element, error) {
	scalar, err := utils.ScalarFromBytesLECanonical(serScalar)
	if err != nil {
		return fr.Element{}, fmt.Errorf("deserialize scalar: %w", err)
	}
	return scalar, nil
}
