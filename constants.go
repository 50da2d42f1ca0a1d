// Package danksharding implements the cryptography needed for EIP-4844 blob
// commitments: KZG polynomial commitments over BLS12-381 for polynomials in
// Lagrange form, with an aggregated opening protocol made non-interactive
// via Fiat-Shamir.
package danksharding

const (
	// FieldElementsPerBlob is the number of field elements a blob carries.
	FieldElementsPerBlob = 4096

	// SerializedScalarSize is the size of a serialized field element.
	SerializedScalarSize = 32

	// CompressedG1Size is the size of a compressed G1 point.
	CompressedG1Size = 48

	// CompressedG2Size is the size of a compressed G2 point.
	CompressedG2Size = 96

	// BlobSize is the size of a serialized blob.
	BlobSize = FieldElementsPerBlob * SerializedScalarSize

	// secretTau is the mock secret used by the insecure setup. It is public
	// by definition, so commitments made against that setup bind nothing.
	secretTau = 1337
)
