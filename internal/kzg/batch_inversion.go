package kzg

import (
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"
)

// BatchInvert replaces every element of v with its inverse using
// Montgomery's trick: a single field inversion per chunk, amortised with three
// multiplications per element.
//
// Panics if any element is zero. Every call site guarantees non-zero entries
// by construction, so a zero here is a programmer error.
//
// The slice is split into independent chunks which are inverted in parallel.
// Chunking does not change the result.
func BatchInvert(v []fr.Element) {
	numChunks := runtime.NumCPU()
	chunkSize := len(v) / numChunks
	if chunkSize == 0 {
		serialBatchInvert(v)
		return
	}

	var group errgroup.Group
	for start := 0; start < len(v); start += chunkSize {
		end := start + chunkSize
		if end > len(v) {
			end = len(v)
		}
		chunk := v[start:end]
		group.Go(func() error {
			serialBatchInvert(chunk)
			return nil
		})
	}
	// The workers never return an error; failures surface as panics.
	_ = group.Wait()
}

// serialBatchInvert inverts the slice on a single core.
//
// Montgomery's Trick and Fast Implementation of Masked AES
// Genelle, Prouff and Quisquater
// Section 3.2
func serialBatchInvert(v []fr.Element) {
	if len(v) == 0 {
		return
	}

	// Forward pass: prefixProducts[i] holds v[0] * ... * v[i-1].
	prefixProducts := make([]fr.Element, len(v))
	acc := fr.One()
	for i := 0; i < len(v); i++ {
		if v[i].IsZero() {
			panic("inversion by zero is not allowed")
		}
		prefixProducts[i] = acc
		acc.Mul(&acc, &v[i])
	}

	acc.Inverse(&acc)

	// Backward pass: peel off one element at a time.
	var inv fr.Element
	for i := len(v) - 1; i >= 0; i-- {
		inv.Mul(&acc, &prefixProducts[i])
		acc.Mul(&acc, &v[i])
		v[i] = inv
	}
}
