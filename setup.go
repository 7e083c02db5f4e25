package kzg

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// Local aliases so the FK20 precompute/prove code (setup.go + fk20.go)
// reads closer to the algorithm's usual r/l/n/d notation.
const (
	fk20L    = KZGFieldElementsPerCell
	fk20CB   = KZGCellsPerBlob
	fk20TwoR = 2 * fk20CB // == KZGCellsPerExtBlob
	fk20D    = KZGFieldElementsPerBlob - 1
)

// KZGSettings is the immutable, once-constructed context threaded through
// every operation in this package. It is built once by
// LoadSetup/LoadSetupFromBytes and never mutated afterwards; concurrent
// reads from multiple goroutines are safe.
type KZGSettings struct {
	// RootsOfUnity holds the M-th roots of unity omega^0..omega^(M-1),
	// with a one-past entry RootsOfUnity[M] == 1 so that inverse lookups
	// roots[M-i] stay in range.
	RootsOfUnity []Fr
	// ReverseRootsOfUnity holds omega^0, omega^(M-1), omega^(M-2), ..., omega^0.
	ReverseRootsOfUnity []Fr
	// BRPRootsOfUnity is the bit-reversal permutation of RootsOfUnity[0:M].
	BRPRootsOfUnity []Fr

	// G1Monomial holds the N SRS G1 points in monomial (tau^i) basis.
	G1Monomial []G1
	// G1LagrangeBRP holds the N SRS G1 points in lagrange basis, bit-reversed.
	G1LagrangeBRP []G1
	// G2Monomial holds the first kzgG2PointsInSetup G2 SRS points.
	G2Monomial []G2

	// XExtFFTColumns holds the FK20 precomputed G1 columns: 2*CB columns
	// of L points each.
	XExtFFTColumns [][]G1

	// Precompute mirrors the reference implementation's wbits knob: zero
	// disables the fast (Pippenger) MSM path during FK20 proof generation
	// and forces the audited naive summation.
	Precompute uint64
}

// primitiveRootGenerator is "7", a generator of the full BLS12-381 scalar
// multiplicative group (consensus-specs polynomial-commitments.md
// PRIMITIVE_ROOT_OF_UNITY).
const primitiveRootGenerator = 7

// rootOfUnityForOrder computes a primitive root of unity of the given
// power-of-two order via generator^((r-1)/order), the same derivation the
// consensus spec uses to define ROOT_OF_UNITY for a given domain size.
func rootOfUnityForOrder(order uint64) Fr {
	exp := new(big.Int).Sub(frModulus(), big.NewInt(1))
	exp.Div(exp, new(big.Int).SetUint64(order))
	return frPowBig(FrFromUint64(primitiveRootGenerator), exp)
}

// expandRootsOfUnity derives the three root-of-unity orderings from the
// primitive M-th root: the forward sequence with its one-past entry, the
// reverse sequence used by the inverse FFT, and the bit-reversal
// permutation of the forward sequence used by barycentric evaluation.
func expandRootsOfUnity() (roots, reverse, brp []Fr, err error) {
	const m = KZGFieldElementsPerExtBlob
	root := rootOfUnityForOrder(m)

	roots = make([]Fr, m+1)
	roots[0] = FrOne()
	for i := 1; i < m; i++ {
		roots[i] = roots[i-1].Mul(root)
	}
	if !roots[m-1].Mul(root).IsOne() {
		return nil, nil, nil, badArgs("expandRootsOfUnity", fmt.Errorf("%w: wrong primitive root", ErrKZGMalformedSetup))
	}
	roots[m] = FrOne()

	reverse = make([]Fr, m+1)
	reverse[0] = roots[0]
	for i := 1; i <= m; i++ {
		reverse[i] = roots[m-i]
	}

	brp = append([]Fr(nil), roots[:m]...)
	if err := bitReversalPermutation(brp, uint64(m)); err != nil {
		return nil, nil, nil, internalErr("expandRootsOfUnity", err)
	}
	return roots, reverse, brp, nil
}

// LoadSetup parses the line-oriented trusted-setup text format from r
// and builds a ready-to-use KZGSettings. precompute selects the FK20 MSM
// window size; 0 disables the fast MSM path during proof generation.
func LoadSetup(r io.Reader, precompute uint64) (*KZGSettings, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024)

	readLine := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimSpace(sc.Text()), nil
	}

	n1Line, err := readLine()
	if err != nil {
		return nil, badArgs("LoadSetup", ErrKZGMalformedSetup)
	}
	n1, err := strconv.ParseUint(n1Line, 10, 64)
	if err != nil || n1 != KZGFieldElementsPerBlob {
		return nil, badArgs("LoadSetup", ErrKZGMalformedSetup)
	}

	n2Line, err := readLine()
	if err != nil {
		return nil, badArgs("LoadSetup", ErrKZGMalformedSetup)
	}
	n2, err := strconv.ParseUint(n2Line, 10, 64)
	if err != nil || n2 != kzgG2PointsInSetup {
		return nil, badArgs("LoadSetup", ErrKZGMalformedSetup)
	}

	readHexLines := func(count int, byteLen int) ([][]byte, error) {
		out := make([][]byte, count)
		for i := 0; i < count; i++ {
			line, err := readLine()
			if err != nil {
				return nil, badArgs("LoadSetup", ErrKZGMalformedSetup)
			}
			if len(line) != byteLen*2 {
				return nil, badArgs("LoadSetup", ErrKZGMalformedSetup)
			}
			b, err := hex.DecodeString(line)
			if err != nil {
				return nil, badArgs("LoadSetup", ErrKZGMalformedSetup)
			}
			out[i] = b
		}
		return out, nil
	}

	g1MonoBytes, err := readHexLines(KZGFieldElementsPerBlob, 48)
	if err != nil {
		return nil, err
	}
	g1LagBytes, err := readHexLines(KZGFieldElementsPerBlob, 48)
	if err != nil {
		return nil, err
	}
	g2MonoBytes, err := readHexLines(kzgG2PointsInSetup, 96)
	if err != nil {
		return nil, err
	}

	return buildSettings(g1MonoBytes, g1LagBytes, g2MonoBytes, precompute)
}

// LoadSetupFromBytes builds a KZGSettings directly from flat byte slices
// (48*N, 48*N and 96*65 bytes respectively), bypassing the text format.
func LoadSetupFromBytes(g1Mono, g1Lagrange, g2Mono []byte, precompute uint64) (*KZGSettings, error) {
	if len(g1Mono) != KZGFieldElementsPerBlob*48 || len(g1Lagrange) != KZGFieldElementsPerBlob*48 {
		return nil, badArgs("LoadSetupFromBytes", ErrKZGMalformedSetup)
	}
	if len(g2Mono) != kzgG2PointsInSetup*96 {
		return nil, badArgs("LoadSetupFromBytes", ErrKZGMalformedSetup)
	}
	split := func(buf []byte, n, sz int) [][]byte {
		out := make([][]byte, n)
		for i := 0; i < n; i++ {
			out[i] = buf[i*sz : (i+1)*sz]
		}
		return out
	}
	return buildSettings(
		split(g1Mono, KZGFieldElementsPerBlob, 48),
		split(g1Lagrange, KZGFieldElementsPerBlob, 48),
		split(g2Mono, kzgG2PointsInSetup, 96),
		precompute,
	)
}

func buildSettings(g1MonoBytes, g1LagBytes, g2MonoBytes [][]byte, precompute uint64) (*KZGSettings, error) {
	g1Mono := make([]G1, KZGFieldElementsPerBlob)
	for i, b := range g1MonoBytes {
		var arr [48]byte
		copy(arr[:], b)
		p, err := UncompressFromBytes48(arr)
		if err != nil {
			return nil, badArgs("buildSettings", fmt.Errorf("g1 monomial[%d]: %w", i, err))
		}
		g1Mono[i] = p
	}

	g1Lag := make([]G1, KZGFieldElementsPerBlob)
	for i, b := range g1LagBytes {
		var arr [48]byte
		copy(arr[:], b)
		p, err := UncompressFromBytes48(arr)
		if err != nil {
			return nil, badArgs("buildSettings", fmt.Errorf("g1 lagrange[%d]: %w", i, err))
		}
		g1Lag[i] = p
	}

	g2Mono := make([]G2, kzgG2PointsInSetup)
	for i, b := range g2MonoBytes {
		var arr [96]byte
		copy(arr[:], b)
		p, err := UncompressG2FromBytes(arr)
		if err != nil {
			return nil, badArgs("buildSettings", fmt.Errorf("g2 monomial[%d]: %w", i, err))
		}
		g2Mono[i] = p
	}

	rootsOfUnity, reverseRootsOfUnity, brpRootsOfUnity, err := expandRootsOfUnity()
	if err != nil {
		return nil, err
	}

	g1LagBRP := append([]G1(nil), g1Lag...)
	if err := bitReversalPermutation(g1LagBRP, KZGFieldElementsPerBlob); err != nil {
		return nil, internalErr("buildSettings", err)
	}

	s := &KZGSettings{
		RootsOfUnity:        rootsOfUnity,
		ReverseRootsOfUnity: reverseRootsOfUnity,
		BRPRootsOfUnity:     brpRootsOfUnity,
		G1Monomial:          g1Mono,
		G1LagrangeBRP:       g1LagBRP,
		G2Monomial:          g2Mono,
		Precompute:          precompute,
	}

	cols, err := computeFK20ExtFFTColumns(g1Mono, s)
	if err != nil {
		return nil, err
	}
	s.XExtFFTColumns = cols

	return s, nil
}

// computeFK20ExtFFTColumns builds the FK20 precompute: for each of the L
// offsets, takes the strided slice of SRS monomial G1 points that
// multiplies the circulant embedding of the offset's Toeplitz matrix,
// zero-extends it to length 2*CB, FFTs it, and stores the result
// transposed into 2*CB columns of L points each. The identity point doubles
// as the "slot is empty" marker.
func computeFK20ExtFFTColumns(g1Mono []G1, s *KZGSettings) ([][]G1, error) {
	cols := make([][]G1, fk20TwoR)
	for j := range cols {
		cols[j] = make([]G1, fk20L)
	}

	for offset := 0; offset < fk20L; offset++ {
		xExt := make([]G1, fk20TwoR)
		for k := range xExt {
			xExt[k] = G1Identity()
		}
		start := KZGFieldElementsPerBlob - fk20L - 1 - offset
		for i := 0; i < fk20CB-1; i++ {
			xExt[i] = g1Mono[start-i*fk20L]
		}

		w, err := FFTG1(xExt, s)
		if err != nil {
			return nil, internalErr("computeFK20ExtFFTColumns", err)
		}
		for j := 0; j < fk20TwoR; j++ {
			cols[j][offset] = w[j]
		}
	}
	return cols, nil
}

// FreeSetup exists only to mirror the reference implementation's
// free_trusted_setup entry point for binding layers that track explicit
// lifetimes; in Go, KZGSettings is reclaimed by the garbage collector once
// unreferenced, so this is a no-op.
func FreeSetup(s *KZGSettings) {}
