package kzg

// computeFK20CellProofs runs the FK20 circulant-matrix multi-proof
// algorithm over a length-N monomial polynomial,
// producing exactly CELLS_PER_EXT_BLOB proofs in natural (pre-bit-reversal)
// order.
func computeFK20CellProofs(pMono []Fr, s *KZGSettings) ([]G1, error) {
	if len(pMono) != KZGFieldElementsPerBlob {
		return nil, internalErr("computeFK20CellProofs", ErrKZGLengthMismatch)
	}

	// Phase 1: per-offset circulant vectors, transposed into 2*CB columns
	// of L coefficients each.
	coeffs := make([][]Fr, fk20TwoR)
	for j := range coeffs {
		coeffs[j] = make([]Fr, fk20L)
	}

	for i := 0; i < fk20L; i++ {
		// Toeplitz coefficients for offset i: the top coefficient first,
		// then a zero gap of CB+1, then every stride-th coefficient from
		// p[2L-1-i] upward. p[L-1-i] and below never enter the matrix.
		c := make([]Fr, fk20TwoR)
		for k := range c {
			c[k] = FrZero()
		}
		c[0] = pMono[fk20D-i]
		for j := 1; j <= fk20CB-2; j++ {
			c[2*fk20CB-j] = pMono[fk20D-j*fk20L-i]
		}

		w, err := FFTFr(c, s)
		if err != nil {
			return nil, internalErr("computeFK20CellProofs", err)
		}
		for j := 0; j < fk20TwoR; j++ {
			coeffs[j][i] = w[j]
		}
	}

	// u[j] = MSM(coeffs[j], x_ext_fft_columns[j]); the fast MSM path is
	// gated by Precompute.
	u := make([]G1, fk20TwoR)
	auditedOnly := s.Precompute == 0
	for j := 0; j < fk20TwoR; j++ {
		u[j] = msmFast(s.XExtFFTColumns[j], coeffs[j], auditedOnly)
	}

	v, err := IFFTG1(u, s)
	if err != nil {
		return nil, internalErr("computeFK20CellProofs", err)
	}
	for i := fk20CB; i < fk20TwoR; i++ {
		v[i] = G1Identity()
	}

	out, err := FFTG1(v, s)
	if err != nil {
		return nil, internalErr("computeFK20CellProofs", err)
	}
	return out, nil
}
