// Package transcript implements the Fiat-Shamir transcript of the blob
// verification protocol.
//
// To stay interoperable with other implementations the transcript carries no
// per-message domain separators: appends are plain concatenation, and only
// the protocol label at the front separates it from other protocols.
package transcript

import (
	"bytes"
	"crypto/sha256"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/protolambda/ztyp/codec"

	"github.com/crate-crypto/go-proto-danksharding-crypto/internal/utils"
)

// DomSepProtocol is the domain separator identifying the protocol. It is the
// first message of every transcript.
const DomSepProtocol = "FSBLOBVERIFY_V1_"

// Transcript is an append-only byte buffer from which challenge scalars are
// squeezed. One instance is scoped to a single prove or verify call; the
// prover and verifier build identical transcripts and therefore derive
// identical challenges.
type Transcript struct {
	buffer bytes.Buffer
}

// NewWithProtocolName returns a transcript with the protocol label already
// appended.
func NewWithProtocolName(label string) *Transcript {
	t := &Transcript{}
	t.buffer.WriteString(label)
	return t
}

func (t *Transcript) appendUint64(x uint64) {
	w := codec.NewEncodingWriter(&t.buffer)
	if err := w.WriteUint64(x); err != nil {
		panic(err)
	}
}

// AppendPolynomial appends every evaluation of the polynomial as its 32-byte
// little-endian encoding.
func (t *Transcript) AppendPolynomial(poly []fr.Element) {
	for i := range poly {
		serScalar := utils.ScalarToBytesLE(poly[i])
		t.buffer.Write(serScalar[:])
	}
}

// AppendG1Point appends the 48-byte compressed encoding of the point.
func (t *Transcript) AppendG1Point(point bls12381.G1Affine) {
	serPoint := point.Bytes()
	t.buffer.Write(serPoint[:])
}

// AppendPolysAndPoints appends a batch of polynomials together with their
// commitments: first the common polynomial length and the batch size, each
// as 8-byte little-endian integers, then all polynomials, then all points.
//
// The batch must be non-empty, the slices must have equal length and all
// polynomials must have the same number of evaluations; violations are
// programmer errors and panic.
func (t *Transcript) AppendPolysAndPoints(polys [][]fr.Element, points []bls12381.G1Affine) {
	if len(polys) != len(points) {
		panic("number of polynomials must equal the number of points")
	}
	if len(polys) == 0 {
		panic("number of polynomials/points must not be zero")
	}

	polyDegree := len(polys[0])
	t.appendUint64(uint64(polyDegree))
	t.appendUint64(uint64(len(polys)))

	for _, poly := range polys {
		if len(poly) != polyDegree {
			panic("all polynomials must have the same number of evaluations")
		}
		t.AppendPolynomial(poly)
	}
	for _, point := range points {
		t.AppendG1Point(point)
	}
}

// ChallengeScalars squeezes `numChallenges` scalars out of the transcript.
//
// The buffer is first compressed into a 32-byte state with SHA-256; each
// challenge is the little-endian reduction of SHA-256(state || i). The
// buffer is then replaced by the state, so later appends commit to the
// previous challenge state rather than the full message history.
func (t *Transcript) ChallengeScalars(numChallenges uint8) []fr.Element {
	state := sha256.Sum256(t.buffer.Bytes())

	challenges := make([]fr.Element, numChallenges)
	for i := uint8(0); i < numChallenges; i++ {
		digest := sha256.Sum256(append(state[:], i))
		challenges[i] = utils.ReduceBytesLE(digest)
	}

	t.buffer.Reset()
	t.buffer.Write(state[:])

	return challenges
}

// ChallengeScalar squeezes a single scalar out of the transcript.
func (t *Transcript) ChallengeScalar() fr.Element {
	return t.ChallengeScalars(1)[0]
}
