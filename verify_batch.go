package kzg

// deduplicateCommitments produces the unique commitment list in first-seen
// order plus, for every input row, the index of its commitment in that
// list. Applying the index map to the unique list reproduces the input.
func deduplicateCommitments(commitments []Bytes48) ([]Bytes48, []uint64) {
	unique := make([]Bytes48, 0, len(commitments))
	indices := make([]uint64, len(commitments))
	seen := make(map[Bytes48]uint64, len(commitments))
	for i, c := range commitments {
		idx, ok := seen[c]
		if !ok {
			idx = uint64(len(unique))
			unique = append(unique, c)
			seen[c] = idx
		}
		indices[i] = idx
	}
	return unique, indices
}

// VerifyCellKZGProofBatch implements verify_cell_kzg_proof_batch: checks
// many (commitment, cell_index, cell, proof) rows with one
// pairing. Commitments are deduplicated and weighted by Fiat-Shamir powers;
// the cells are aggregated column-wise into a single interpolation
// polynomial whose commitment closes the aggregated opening identity.
// Returns (false, nil) for well-formed rows that fail the check, and an
// error only when inputs cannot be parsed.
func VerifyCellKZGProofBatch(commitments []Bytes48, cellIndices []uint64, cells []*Cell, proofs []Bytes48, s *KZGSettings) (bool, error) {
	n := len(commitments)
	if len(cellIndices) != n || len(cells) != n || len(proofs) != n {
		return false, badArgs("VerifyCellKZGProofBatch", ErrKZGLengthMismatch)
	}
	if n == 0 {
		return true, nil
	}
	for _, idx := range cellIndices {
		if idx >= KZGCellsPerExtBlob {
			return false, badArgs("VerifyCellKZGProofBatch", ErrKZGInvalidCellIndex)
		}
	}

	uniqueCommitments, commitmentIndices := deduplicateCommitments(commitments)

	proofPoints := make([]G1, n)
	for i, p := range proofs {
		pp, err := UncompressFromBytes48(p)
		if err != nil {
			return false, badArgs("VerifyCellKZGProofBatch", ErrKZGInvalidProof)
		}
		proofPoints[i] = pp
	}
	commitmentPoints := make([]G1, len(uniqueCommitments))
	for k, c := range uniqueCommitments {
		cp, err := UncompressFromBytes48(c)
		if err != nil {
			return false, badArgs("VerifyCellKZGProofBatch", ErrKZGInvalidCommitment)
		}
		commitmentPoints[k] = cp
	}

	rows := make([]cellBatchTuple, n)
	for i := 0; i < n; i++ {
		rows[i] = cellBatchTuple{
			commitmentIndex: commitmentIndices[i],
			cellIndex:       cellIndices[i],
			cell:            cells[i],
			proof:           proofs[i],
		}
	}
	r := computeCellBatchChallenge(uniqueCommitments, rows)
	rPowers := ComputePowers(r, n)

	// Weighted proof sum; the Pippenger path is fine here, the audit
	// constraint binds curve primitives only.
	proofLincomb := msmFast(proofPoints, rPowers, false)

	// Weighted commitment sum: each unique commitment weighted by the sum
	// of the challenge powers of the rows that reference it.
	weights := make([]Fr, len(uniqueCommitments))
	for i := range weights {
		weights[i] = FrZero()
	}
	for i := 0; i < n; i++ {
		k := commitmentIndices[i]
		weights[k] = weights[k].Add(rPowers[i])
	}
	finalSum := msmFast(commitmentPoints, weights, false)

	interpCommit, err := commitToAggregatedInterpolationPoly(rPowers, cellIndices, cells, s)
	if err != nil {
		return false, err
	}
	finalSum = finalSum.AddOrDouble(interpCommit.CNeg())

	weightedProofSum := weightedSumOfProofs(proofPoints, rPowers, cellIndices, s)
	finalSum = finalSum.AddOrDouble(weightedProofSum)

	return pairingEq(finalSum, G2Generator(), proofLincomb, s.G2Monomial[KZGFieldElementsPerCell]), nil
}

// commitToAggregatedInterpolationPoly aggregates all cells sharing a column
// into one weighted column each, interpolates every used column over its
// coset, sums the interpolation polynomials and commits to the result with
// the monomial SRS.
func commitToAggregatedInterpolationPoly(rPowers []Fr, cellIndices []uint64, cells []*Cell, s *KZGSettings) (G1, error) {
	const l = KZGFieldElementsPerCell

	aggColumns := make([]Fr, KZGCellsPerExtBlob*l)
	for i := range aggColumns {
		aggColumns[i] = FrZero()
	}
	used := make([]bool, KZGCellsPerExtBlob)
	for i, cell := range cells {
		col := cellIndices[i]
		elems, err := parseCell(cell)
		if err != nil {
			return G1{}, err
		}
		for j := 0; j < l; j++ {
			scaled := elems[j].Mul(rPowers[i])
			aggColumns[col*l+uint64(j)] = aggColumns[col*l+uint64(j)].Add(scaled)
		}
		used[col] = true
	}

	aggPoly := make([]Fr, l)
	for i := range aggPoly {
		aggPoly[i] = FrZero()
	}
	for c := uint64(0); c < KZGCellsPerExtBlob; c++ {
		if !used[c] {
			continue
		}
		column := aggColumns[c*l : (c+1)*l]
		if err := bitReversalPermutation(column, l); err != nil {
			return G1{}, internalErr("commitToAggregatedInterpolationPoly", err)
		}
		colPoly, err := IFFTFr(column, s)
		if err != nil {
			return G1{}, internalErr("commitToAggregatedInterpolationPoly", err)
		}
		// Undo the column's coset shift: the cell's evaluation points are
		// h_c * (L-th roots), so the interpolated coefficients carry h_c^i.
		pos := reverseBitsLimited(KZGCellsPerExtBlob, c)
		invCosetFactor := s.RootsOfUnity[KZGFieldElementsPerExtBlob-pos]
		shiftPoly(colPoly, invCosetFactor)
		for j := 0; j < l; j++ {
			aggPoly[j] = aggPoly[j].Add(colPoly[j])
		}
	}

	return msmFast(s.G1Monomial[:l], aggPoly, false), nil
}

// weightedSumOfProofs scales each proof by its challenge power times
// h_c^L, the coset factor of its cell raised to the cell size, and sums.
func weightedSumOfProofs(proofPoints []G1, rPowers []Fr, cellIndices []uint64, s *KZGSettings) G1 {
	weighted := make([]Fr, len(proofPoints))
	for i := range proofPoints {
		pos := reverseBitsLimited(KZGCellsPerExtBlob, cellIndices[i])
		hPow := s.RootsOfUnity[pos*KZGFieldElementsPerCell]
		weighted[i] = rPowers[i].Mul(hPow)
	}
	return msmFast(proofPoints, weighted, false)
}
