package kzg

import "errors"

var (
	// ErrInvalidPolynomialSize is returned when the polynomial is empty or
	// larger than the commitment key.
	ErrInvalidPolynomialSize = errors.New("invalid polynomial size (larger than commit key or == 0)")

	// ErrPolynomialMismatchedSizeDomain is returned when the number of
	// evaluations in the polynomial does not equal the size of the domain.
	ErrPolynomialMismatchedSizeDomain = errors.New("domain size does not equal the number of evaluations in the polynomial")

	// ErrMismatchedPointsAndScalars is returned when a linear combination is
	// requested over slices of different lengths.
	ErrMismatchedPointsAndScalars = errors.New("number of points must equal the number of scalars")

	// ErrMismatchedPolysAndComms is returned when a batch of polynomials does
	// not line up with its commitments.
	ErrMismatchedPolysAndComms = errors.New("number of polynomials must equal the number of commitments")

	// ErrEmptyBatch is returned when an aggregated proof is requested over
	// zero polynomials.
	ErrEmptyBatch = errors.New("batch must contain at least one polynomial")

	// ErrVerifyOpeningProof signals that the pairing identity did not hold.
	ErrVerifyOpeningProof = errors.New("can't verify opening proof")
)
