package kzg

// BlobToKZGCommitment implements blob_to_kzg_commitment:
// parse the blob as a lagrange polynomial and commit via MSM against the
// bit-reversed lagrange SRS.
func BlobToKZGCommitment(blob *Blob, s *KZGSettings) (KZGCommitment, error) {
	poly, err := blobToPolynomial(blob)
	if err != nil {
		return KZGCommitment{}, err
	}
	commitment := msmFast(s.G1LagrangeBRP, poly[:], false)
	return commitment.CompressToBytes48(), nil
}

// ComputeKZGProof implements compute_kzg_proof: evaluate
// the blob's polynomial at z and compute the quotient-polynomial opening
// proof via the barycentric-derivative trick at domain points and direct
// division elsewhere, with a single batch inversion pass.
func ComputeKZGProof(blob *Blob, zBytes Bytes32, s *KZGSettings) (KZGProof, Bytes32, error) {
	poly, err := blobToPolynomial(blob)
	if err != nil {
		return KZGProof{}, Bytes32{}, err
	}
	z, err := FrFromBEndian(zBytes)
	if err != nil {
		return KZGProof{}, Bytes32{}, badArgs("ComputeKZGProof", ErrKZGFieldElementOutOfRange)
	}

	y, err := evaluatePolynomialInEvaluationForm(poly[:], z, s)
	if err != nil {
		return KZGProof{}, Bytes32{}, err
	}

	proofPoint, err := computeKZGProofQuotient(poly[:], z, y, s)
	if err != nil {
		return KZGProof{}, Bytes32{}, err
	}

	return proofPoint.CompressToBytes48(), y.ToBEndian(), nil
}

// computeKZGProofQuotient builds q(X) = (p(X) - y) / (X - z) in lagrange
// form over the N domain points and commits to it.
func computeKZGProofQuotient(p []Fr, z, y Fr, s *KZGSettings) (G1, error) {
	n := len(p)
	q := make([]Fr, n)

	// inv[i] = 1/(omega_i - z) for every domain point not equal to z.
	denom := make([]Fr, n)
	matchIdx := -1
	for i := 0; i < n; i++ {
		omega := s.BRPRootsOfUnity[i]
		if omega.Equal(z) {
			matchIdx = i
			denom[i] = FrOne() // placeholder, never used
			continue
		}
		denom[i] = omega.Sub(z)
	}
	invDenom := BatchInvert(denom)

	for i := 0; i < n; i++ {
		if i == matchIdx {
			continue
		}
		q[i] = p[i].Sub(y).Mul(invDenom[i])
	}

	if matchIdx >= 0 {
		// z is a domain point, so (p(z) - y)/(z - z) is 0/0; recover the
		// quotient's value there by the barycentric-derivative trick:
		// q[m] = sum_{i!=m} (p[i] - y) * omega_i / (z * (z - omega_i)).
		m := matchIdx
		for i := 0; i < n; i++ {
			if i == m {
				denom[i] = FrOne()
				continue
			}
			denom[i] = z.Sub(s.BRPRootsOfUnity[i]).Mul(z)
		}
		invDenom = BatchInvert(denom)
		sum := FrZero()
		for i := 0; i < n; i++ {
			if i == m {
				continue
			}
			term := p[i].Sub(y).Mul(s.BRPRootsOfUnity[i]).Mul(invDenom[i])
			sum = sum.Add(term)
		}
		q[m] = sum
	}

	point := msmFast(s.G1LagrangeBRP, q, false)
	return point, nil
}

// VerifyKZGProof implements verify_kzg_proof: checks
// e(commitment - [y]G1, G2) == e(proof, [tau]G2 - [z]G2).
func VerifyKZGProof(commitmentBytes Bytes48, zBytes, yBytes Bytes32, proofBytes Bytes48, s *KZGSettings) (bool, error) {
	commitment, err := UncompressFromBytes48(commitmentBytes)
	if err != nil {
		return false, err
	}
	proof, err := UncompressFromBytes48(proofBytes)
	if err != nil {
		return false, err
	}
	z, err := FrFromBEndian(zBytes)
	if err != nil {
		return false, badArgs("VerifyKZGProof", ErrKZGFieldElementOutOfRange)
	}
	y, err := FrFromBEndian(yBytes)
	if err != nil {
		return false, badArgs("VerifyKZGProof", ErrKZGFieldElementOutOfRange)
	}

	pMinusY := commitment.AddOrDouble(G1Generator().Mul(y).CNeg())
	qPoint := s.G2Monomial[1].AddOrDouble(G2Generator().Mul(z).CNeg())

	return pairingEq(proof, qPoint, pMinusY, G2Generator()), nil
}

// ComputeBlobKZGProof implements compute_blob_kzg_proof:
// derive the Fiat-Shamir evaluation point from the blob and commitment,
// then return only the G1 proof part (no claimed y).
func ComputeBlobKZGProof(blob *Blob, commitmentBytes Bytes48, s *KZGSettings) (KZGProof, error) {
	if _, err := UncompressFromBytes48(commitmentBytes); err != nil {
		return KZGProof{}, err
	}
	z := computeBlobChallenge(blob, commitmentBytes)
	proof, _, err := ComputeKZGProof(blob, z.ToBEndian(), s)
	return proof, err
}

// VerifyBlobKZGProof implements verify_blob_kzg_proof.
func VerifyBlobKZGProof(blob *Blob, commitmentBytes Bytes48, proofBytes Bytes48, s *KZGSettings) (bool, error) {
	poly, err := blobToPolynomial(blob)
	if err != nil {
		return false, err
	}
	if _, err := UncompressFromBytes48(commitmentBytes); err != nil {
		return false, err
	}
	z := computeBlobChallenge(blob, commitmentBytes)
	y, err := evaluatePolynomialInEvaluationForm(poly[:], z, s)
	if err != nil {
		return false, err
	}
	return VerifyKZGProof(commitmentBytes, z.ToBEndian(), y.ToBEndian(), proofBytes, s)
}

// VerifyBlobKZGProofBatch implements verify_blob_kzg_proof_batch: derives
// per-blob challenges/evaluations, a batch randomizer r, and checks a
// single combined pairing equation.
func VerifyBlobKZGProofBatch(blobs []*Blob, commitments, proofs []Bytes48, s *KZGSettings) (bool, error) {
	n := len(blobs)
	if len(commitments) != n || len(proofs) != n {
		return false, badArgs("VerifyBlobKZGProofBatch", ErrKZGLengthMismatch)
	}
	if n == 0 {
		return true, nil
	}

	commitmentPoints := make([]G1, n)
	proofPoints := make([]G1, n)
	ys := make([]Fr, n)
	zs := make([]Fr, n)
	for i := 0; i < n; i++ {
		cp, err := UncompressFromBytes48(commitments[i])
		if err != nil {
			return false, err
		}
		pp, err := UncompressFromBytes48(proofs[i])
		if err != nil {
			return false, err
		}
		commitmentPoints[i] = cp
		proofPoints[i] = pp

		poly, err := blobToPolynomial(blobs[i])
		if err != nil {
			return false, err
		}
		zs[i] = computeBlobChallenge(blobs[i], commitments[i])
		y, err := evaluatePolynomialInEvaluationForm(poly[:], zs[i], s)
		if err != nil {
			return false, err
		}
		ys[i] = y
	}

	r := computeBlobBatchChallenge(blobs, commitments, proofs)
	rPowers := ComputePowers(r, n)

	// P = sum r_i * (commitment_i - [y_i]G1 + [z_i]*proof_i)
	pAcc := G1Identity()
	piAcc := G1Identity()
	for i := 0; i < n; i++ {
		term := commitmentPoints[i].
			AddOrDouble(G1Generator().Mul(ys[i]).CNeg()).
			AddOrDouble(proofPoints[i].Mul(zs[i]))
		pAcc = pAcc.AddOrDouble(term.Mul(rPowers[i]))
		piAcc = piAcc.AddOrDouble(proofPoints[i].Mul(rPowers[i]))
	}

	return pairingEq(pAcc, G2Generator(), piAcc, s.G2Monomial[1]), nil
}
