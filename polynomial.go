package kzg

// blobToPolynomial parses a Blob into N canonical field elements in
// lagrange (bit-reversed evaluation domain) form, rejecting any
// non-canonical element.
func blobToPolynomial(blob *Blob) ([KZGFieldElementsPerBlob]Fr, error) {
	var poly [KZGFieldElementsPerBlob]Fr
	for i := 0; i < KZGFieldElementsPerBlob; i++ {
		var b [KZGBytesPerFieldElement]byte
		copy(b[:], blob[i*KZGBytesPerFieldElement:(i+1)*KZGBytesPerFieldElement])
		f, err := FrFromBEndian(b)
		if err != nil {
			return poly, badArgs("blobToPolynomial", ErrKZGFieldElementOutOfRange)
		}
		poly[i] = f
	}
	return poly, nil
}

// polyLagrangeToMonomial converts a lagrange-basis polynomial given in
// bit-reversed order (the order blobs use) to monomial form: bit-reverse the
// input back to natural order, then inverse-FFT.
func polyLagrangeToMonomial(lagrange []Fr, s *KZGSettings) ([]Fr, error) {
	n := uint64(len(lagrange))
	brp := append([]Fr(nil), lagrange...)
	if err := bitReversalPermutation(brp, n); err != nil {
		return nil, err
	}
	return IFFTFr(brp, s)
}

// shiftPoly scales p[i] *= k^i in place.
func shiftPoly(p []Fr, k Fr) {
	acc := FrOne()
	for i := range p {
		p[i] = p[i].Mul(acc)
		acc = acc.Mul(k)
	}
}

// evaluatePolynomialInEvaluationForm evaluates a length-N polynomial given
// in bit-reversed-lagrange form at z, via direct lookup when z is itself a
// domain point, else the barycentric formula with a single batch
// inversion pass.
func evaluatePolynomialInEvaluationForm(p []Fr, z Fr, s *KZGSettings) (Fr, error) {
	n := len(p)
	if n != KZGFieldElementsPerBlob {
		return Fr{}, internalErr("evaluatePolynomialInEvaluationForm", ErrKZGLengthMismatch)
	}

	for i := 0; i < n; i++ {
		if z.Equal(s.BRPRootsOfUnity[i]) {
			return p[i], nil
		}
	}

	denom := make([]Fr, n)
	for i := 0; i < n; i++ {
		denom[i] = z.Sub(s.BRPRootsOfUnity[i])
	}
	invDenom := BatchInvert(denom)

	sum := FrZero()
	for i := 0; i < n; i++ {
		term := p[i].Mul(s.BRPRootsOfUnity[i]).Mul(invDenom[i])
		sum = sum.Add(term)
	}

	// (z^n - 1) / n
	zN := z.Pow(uint64(n))
	factor := zN.Sub(FrOne()).Mul(FrFromUint64(uint64(n)).Inv())

	return factor.Mul(sum), nil
}
