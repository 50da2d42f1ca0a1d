package danksharding

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/crate-crypto/go-proto-danksharding-crypto/internal/kzg"
	"github.com/crate-crypto/go-proto-danksharding-crypto/internal/logger"
)

// Context holds the domain and the public parameters every prove/verify
// call needs. It is built once, is immutable afterwards, and may be shared
// freely across goroutines.
type Context struct {
	domain    *kzg.Domain
	commitKey *kzg.CommitKeyLagrange
	openKey   *kzg.OpeningKey
}

// JSONTrustedSetup is the wire format of a trusted setup: hex-encoded
// compressed group elements, G1 in monomial form.
type JSONTrustedSetup struct {
	SetupG1 []string `json:"setup_G1"`
	SetupG2 []string `json:"setup_G2"`
}

var (
	// ErrTrustedSetupG1Length is returned when the setup does not carry one
	// G1 point per blob field element.
	ErrTrustedSetupG1Length = errors.New("trusted setup must contain exactly 4096 G1 points")

	// ErrTrustedSetupG2Length is returned when the setup carries fewer than
	// two G2 points; the generator and tau times the generator are needed.
	ErrTrustedSetupG2Length = errors.New("trusted setup must contain at least 2 G2 points")
)

// NewContext4096Insecure1337 builds a context from the mock secret tau=1337.
// The secret being public, proofs made against this context are worthless;
// it exists for tests and local development. NewContext4096FromJSON loads a
// real trusted setup.
func NewContext4096Insecure1337() (*Context, error) {
	domain := kzg.NewDomain(FieldElementsPerBlob)
	srs, err := kzg.NewLagrangeSRSInsecure(domain, big.NewInt(secretTau))
	if err != nil {
		return nil, fmt.Errorf("insecure srs: %w", err)
	}
	return newContext(domain, srs, "insecure"), nil
}

// NewContext4096FromJSON builds a context from a serialized trusted setup.
// The monomial G1 points are converted to Lagrange form with a G1 inverse
// FFT.
func NewContext4096FromJSON(trustedSetupJSON string) (*Context, error) {
	var setup JSONTrustedSetup
	if err := json.Unmarshal([]byte(trustedSetupJSON), &setup); err != nil {
		return nil, fmt.Errorf("parse trusted setup: %w", err)
	}
	if len(setup.SetupG1) != FieldElementsPerBlob {
		return nil, ErrTrustedSetupG1Length
	}
	if len(setup.SetupG2) < 2 {
		return nil, ErrTrustedSetupG2Length
	}

	g1s := make([]bls12381.G1Affine, len(setup.SetupG1))
	for i, serPoint := range setup.SetupG1 {
		point, err := parseG1Hex(serPoint)
		if err != nil {
			return nil, fmt.Errorf("setup G1 point %d: %w", i, err)
		}
		g1s[i] = point
	}

	g2Gen, err := parseG2Hex(setup.SetupG2[0])
	if err != nil {
		return nil, fmt.Errorf("setup G2 point 0: %w", err)
	}
	alphaG2, err := parseG2Hex(setup.SetupG2[1])
	if err != nil {
		return nil, fmt.Errorf("setup G2 point 1: %w", err)
	}

	domain := kzg.NewDomain(FieldElementsPerBlob)
	srs, err := kzg.NewSRSFromMonomial(domain, g1s, g1s[0], g2Gen, alphaG2)
	if err != nil {
		return nil, fmt.Errorf("srs from monomial setup: %w", err)
	}
	return newContext(domain, srs, "json"), nil
}

// newContext applies the bit-reversal permutation to the roots of unity and
// to the commitment key, so that blob field element i lines up with the
// bitrev(i)'th root of unity as the EIP-4844 serialization convention
// requires.
func newContext(domain *kzg.Domain, srs *kzg.SRS, setup string) *Context {
	start := time.Now()
	domain.ReverseRoots()
	srs.CommitKey.ReverseG1Points()

	log := logger.Logger()
	log.Info().
		Str("setup", setup).
		Uint64("cardinality", domain.Cardinality).
		Dur("took", time.Since(start)).
		Msg("kzg context initialised")

	return &Context{
		domain:    domain,
		commitKey: &srs.CommitKey,
		openKey:   &srs.OpeningKey,
	}
}

func parseG1Hex(s string) (bls12381.G1Affine, error) {
	var serPoint SerializedG1Point
	if err := decodeHexInto(serPoint[:], s); err != nil {
		return bls12381.G1Affine{}, err
	}
	return deserializeG1Point(serPoint)
}

func parseG2Hex(s string) (bls12381.G2Affine, error) {
	var serPoint [CompressedG2Size]byte
	if err := decodeHexInto(serPoint[:], s); err != nil {
		return bls12381.G2Affine{}, err
	}
	var point bls12381.G2Affine
	if _, err := point.SetBytes(serPoint[:]); err != nil {
		return bls12381.G2Affine{}, fmt.Errorf("deserialize G2 point: %w", err)
	}
	return point, nil
}

func decodeHexInto(dst []byte, s string) error {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != 2*len(dst) {
		return fmt.Errorf("expected %d hex characters, got %d", 2*len(dst), len(s))
	}
	_, err := hex.Decode(dst, []byte(s))
	return err
}
