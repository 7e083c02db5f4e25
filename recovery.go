package kzg

import "sort"

// RecoverCellsAndKZGProofs implements recover_cells_and_kzg_proofs:
// reconstructs every cell of the extended blob (and optionally
// every proof) from any subset of at least CELLS_PER_BLOB distinct cells,
// via vanishing-polynomial division over a coset.
func RecoverCellsAndKZGProofs(cellIndices []uint64, cells []*Cell, wantProofs bool, s *KZGSettings) (*[KZGCellsPerExtBlob]Cell, *[KZGCellsPerExtBlob]KZGProof, error) {
	numCells := len(cellIndices)
	if numCells != len(cells) {
		return nil, nil, badArgs("RecoverCellsAndKZGProofs", ErrKZGLengthMismatch)
	}
	if numCells < KZGCellsPerBlob {
		return nil, nil, badArgs("RecoverCellsAndKZGProofs", ErrKZGNotEnoughCells)
	}
	if numCells > KZGCellsPerExtBlob {
		return nil, nil, badArgs("RecoverCellsAndKZGProofs", ErrKZGTooManyCells)
	}
	for i, idx := range cellIndices {
		if idx >= KZGCellsPerExtBlob {
			return nil, nil, badArgs("RecoverCellsAndKZGProofs", ErrKZGInvalidCellIndex)
		}
		if i > 0 && cellIndices[i-1] >= idx {
			return nil, nil, badArgs("RecoverCellsAndKZGProofs", ErrKZGDuplicateOrUnsorted)
		}
	}

	// Step 1-2: scatter the provided cells into a length-M array, the rest
	// marked FR_NULL.
	data := make([]Fr, KZGFieldElementsPerExtBlob)
	for i := range data {
		data[i] = FrNull()
	}
	present := make([]bool, KZGCellsPerExtBlob)
	for i, idx := range cellIndices {
		elems, err := parseCell(cells[i])
		if err != nil {
			return nil, nil, err
		}
		for j := 0; j < KZGFieldElementsPerCell; j++ {
			data[idx*KZGFieldElementsPerCell+uint64(j)] = elems[j]
		}
		present[idx] = true
	}

	var extended []Fr
	if numCells == KZGCellsPerExtBlob {
		extended = data
	} else {
		var err error
		extended, err = recoverExtendedEvaluations(data, present, s)
		if err != nil {
			return nil, nil, err
		}
	}

	var outCells [KZGCellsPerExtBlob]Cell
	for c := 0; c < KZGCellsPerExtBlob; c++ {
		outCells[c] = cellFromFr(extended[c*KZGFieldElementsPerCell : (c+1)*KZGFieldElementsPerCell])
	}

	if !wantProofs {
		return &outCells, nil, nil
	}

	pMono, err := polyLagrangeToMonomial(extended, s)
	if err != nil {
		return nil, nil, err
	}
	proofPoints, err := computeFK20CellProofs(pMono[:KZGFieldElementsPerBlob], s)
	if err != nil {
		return nil, nil, err
	}
	if err := bitReversalPermutation(proofPoints, KZGCellsPerExtBlob); err != nil {
		return nil, nil, err
	}
	var outProofs [KZGCellsPerExtBlob]KZGProof
	for i, p := range proofPoints {
		outProofs[i] = p.CompressToBytes48()
	}

	return &outCells, &outProofs, nil
}

// recoverExtendedEvaluations reconstructs the full extended evaluation
// vector by vanishing-polynomial division over a coset.
func recoverExtendedEvaluations(data []Fr, present []bool, s *KZGSettings) ([]Fr, error) {
	const m = KZGFieldElementsPerExtBlob
	const stride = KZGFieldElementsPerCell

	dataBRP := append([]Fr(nil), data...)
	if err := bitReversalPermutation(dataBRP, m); err != nil {
		return nil, internalErr("recoverExtendedEvaluations", err)
	}

	var missingRaw []uint64
	for c := uint64(0); c < KZGCellsPerExtBlob; c++ {
		if !present[c] {
			missingRaw = append(missingRaw, reverseBitsLimited(KZGCellsPerExtBlob, c))
		}
	}
	sort.Slice(missingRaw, func(i, j int) bool { return missingRaw[i] < missingRaw[j] })

	roots := make([]Fr, len(missingRaw))
	for i, raw := range missingRaw {
		roots[i] = s.RootsOfUnity[raw*stride]
	}

	shortZ := vanishingPolynomial(roots)

	z := make([]Fr, m)
	for i := range z {
		z[i] = FrZero()
	}
	for k, coeff := range shortZ {
		z[k*stride] = coeff
	}

	zEval, err := FFTFr(z, s)
	if err != nil {
		return nil, internalErr("recoverExtendedEvaluations", err)
	}

	ez := make([]Fr, m)
	for i := 0; i < m; i++ {
		if dataBRP[i].IsNull() {
			ez[i] = FrZero()
		} else {
			ez[i] = dataBRP[i].Mul(zEval[i])
		}
	}

	ezMono, err := IFFTFr(ez, s)
	if err != nil {
		return nil, internalErr("recoverExtendedEvaluations", err)
	}

	cosetEZ, err := CosetFFTFr(ezMono, s)
	if err != nil {
		return nil, internalErr("recoverExtendedEvaluations", err)
	}
	cosetZ, err := CosetFFTFr(z, s)
	if err != nil {
		return nil, internalErr("recoverExtendedEvaluations", err)
	}
	invCosetZ := BatchInvert(cosetZ)

	quotientCoset := make([]Fr, m)
	for i := 0; i < m; i++ {
		quotientCoset[i] = cosetEZ[i].Mul(invCosetZ[i])
	}

	quotientMono, err := CosetIFFTFr(quotientCoset, s)
	if err != nil {
		return nil, internalErr("recoverExtendedEvaluations", err)
	}

	recoveredEval, err := FFTFr(quotientMono, s)
	if err != nil {
		return nil, internalErr("recoverExtendedEvaluations", err)
	}
	if err := bitReversalPermutation(recoveredEval, m); err != nil {
		return nil, internalErr("recoverExtendedEvaluations", err)
	}

	return recoveredEval, nil
}

// vanishingPolynomial builds the monic polynomial (in coefficient/monomial
// form, ascending degree) whose roots are exactly roots, via iterative
// (X - r) multiplication.
func vanishingPolynomial(roots []Fr) []Fr {
	poly := []Fr{FrOne()}
	for _, r := range roots {
		next := make([]Fr, len(poly)+1)
		for i := range next {
			next[i] = FrZero()
		}
		for i, c := range poly {
			next[i] = next[i].Add(c.Mul(r.Neg()))
			next[i+1] = next[i+1].Add(c)
		}
		poly = next
	}
	return poly
}
