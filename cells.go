package kzg

// ComputeCellsAndKZGProofs implements compute_cells_and_kzg_proofs. At
// least one of wantCells/wantProofs must be true. Cells are
// produced by Reed-Solomon-extending the blob's monomial polynomial via a
// length-M forward FFT; proofs are produced by the FK20 algorithm over the
// unpadded length-N monomial polynomial. Both results are returned in
// natural cell order (bit-reversal already applied).
func ComputeCellsAndKZGProofs(blob *Blob, wantCells, wantProofs bool, s *KZGSettings) (*[KZGCellsPerExtBlob]Cell, *[KZGCellsPerExtBlob]KZGProof, error) {
	if !wantCells && !wantProofs {
		return nil, nil, badArgs("ComputeCellsAndKZGProofs", ErrKZGNoOutputRequested)
	}

	lagrange, err := blobToPolynomial(blob)
	if err != nil {
		return nil, nil, err
	}
	pMono, err := polyLagrangeToMonomial(lagrange[:], s)
	if err != nil {
		return nil, nil, err
	}

	var cells *[KZGCellsPerExtBlob]Cell
	if wantCells {
		padded := make([]Fr, KZGFieldElementsPerExtBlob)
		copy(padded, pMono)

		extended, err := FFTFr(padded, s)
		if err != nil {
			return nil, nil, err
		}
		if err := bitReversalPermutation(extended, KZGFieldElementsPerExtBlob); err != nil {
			return nil, nil, err
		}

		var out [KZGCellsPerExtBlob]Cell
		for c := 0; c < KZGCellsPerExtBlob; c++ {
			for j := 0; j < KZGFieldElementsPerCell; j++ {
				b := extended[c*KZGFieldElementsPerCell+j].ToBEndian()
				copy(out[c][j*KZGBytesPerFieldElement:(j+1)*KZGBytesPerFieldElement], b[:])
			}
		}
		cells = &out
	}

	var proofs *[KZGCellsPerExtBlob]KZGProof
	if wantProofs {
		proofPoints, err := computeFK20CellProofs(pMono, s)
		if err != nil {
			return nil, nil, err
		}
		if err := bitReversalPermutation(proofPoints, KZGCellsPerExtBlob); err != nil {
			return nil, nil, err
		}
		var out [KZGCellsPerExtBlob]KZGProof
		for i, p := range proofPoints {
			out[i] = p.CompressToBytes48()
		}
		proofs = &out
	}

	return cells, proofs, nil
}

// parseCell canonically parses the L field elements of a Cell.
func parseCell(cell *Cell) ([KZGFieldElementsPerCell]Fr, error) {
	var out [KZGFieldElementsPerCell]Fr
	for j := 0; j < KZGFieldElementsPerCell; j++ {
		var b [KZGBytesPerFieldElement]byte
		copy(b[:], cell[j*KZGBytesPerFieldElement:(j+1)*KZGBytesPerFieldElement])
		f, err := FrFromBEndian(b)
		if err != nil {
			return out, badArgs("parseCell", ErrKZGFieldElementOutOfRange)
		}
		out[j] = f
	}
	return out, nil
}

func cellFromFr(elems []Fr) Cell {
	var c Cell
	for j, f := range elems {
		b := f.ToBEndian()
		copy(c[j*KZGBytesPerFieldElement:(j+1)*KZGBytesPerFieldElement], b[:])
	}
	return c
}
