package kzg

// Radix-2 Cooley-Tukey FFT/IFFT over Fr and over G1, recursive and
// parameterized by a stride into the settings' precomputed roots array.
// The stride lets every sub-call index straight into the shared
// roots-of-unity table instead of copying a scaled-down root list at each
// recursion level.

func fftFrRec(vals []Fr, roots []Fr, stride uint64) []Fr {
	n := uint64(len(vals))
	if n == 1 {
		return vals
	}
	half := n / 2
	even := make([]Fr, half)
	odd := make([]Fr, half)
	for i := uint64(0); i < half; i++ {
		even[i] = vals[2*i]
		odd[i] = vals[2*i+1]
	}
	l := fftFrRec(even, roots, stride*2)
	r := fftFrRec(odd, roots, stride*2)

	out := make([]Fr, n)
	for i := uint64(0); i < half; i++ {
		yTimesRoot := r[i].Mul(roots[i*stride])
		out[i] = l[i].Add(yTimesRoot)
		out[i+half] = l[i].Sub(yTimesRoot)
	}
	return out
}

func fftG1Rec(vals []G1, roots []Fr, stride uint64) []G1 {
	n := uint64(len(vals))
	if n == 1 {
		return vals
	}
	half := n / 2
	even := make([]G1, half)
	odd := make([]G1, half)
	for i := uint64(0); i < half; i++ {
		even[i] = vals[2*i]
		odd[i] = vals[2*i+1]
	}
	l := fftG1Rec(even, roots, stride*2)
	r := fftG1Rec(odd, roots, stride*2)

	out := make([]G1, n)
	for i := uint64(0); i < half; i++ {
		root := roots[i*stride]
		yTimesRoot := r[i]
		if !root.IsOne() {
			yTimesRoot = r[i].Mul(root)
		}
		out[i] = l[i].AddOrDouble(yTimesRoot)
		out[i+half] = l[i].AddOrDouble(yTimesRoot.CNeg())
	}
	return out
}

func checkFFTLength(n uint64) error {
	if n > KZGFieldElementsPerExtBlob || !isPowerOfTwo(n) {
		return badArgs("fft", ErrKZGLengthMismatch)
	}
	return nil
}

// FFTFr computes the forward FFT of vals (length a power of two, <= M)
// using s.RootsOfUnity with stride M/n.
func FFTFr(vals []Fr, s *KZGSettings) ([]Fr, error) {
	n := uint64(len(vals))
	if n == 0 {
		return nil, nil
	}
	if err := checkFFTLength(n); err != nil {
		return nil, err
	}
	stride := uint64(KZGFieldElementsPerExtBlob) / n
	out := fftFrRec(append([]Fr(nil), vals...), s.RootsOfUnity, stride)
	return out, nil
}

// IFFTFr computes the inverse FFT of vals using s.ReverseRootsOfUnity,
// scaling the result by n^-1.
func IFFTFr(vals []Fr, s *KZGSettings) ([]Fr, error) {
	n := uint64(len(vals))
	if n == 0 {
		return nil, nil
	}
	if err := checkFFTLength(n); err != nil {
		return nil, err
	}
	stride := uint64(KZGFieldElementsPerExtBlob) / n
	out := fftFrRec(append([]Fr(nil), vals...), s.ReverseRootsOfUnity, stride)
	nInv := FrFromUint64(n).Inv()
	for i := range out {
		out[i] = out[i].Mul(nInv)
	}
	return out, nil
}

// FFTG1 computes the forward FFT of a G1 vector, analogous to FFTFr.
func FFTG1(vals []G1, s *KZGSettings) ([]G1, error) {
	n := uint64(len(vals))
	if n == 0 {
		return nil, nil
	}
	if err := checkFFTLength(n); err != nil {
		return nil, err
	}
	stride := uint64(KZGFieldElementsPerExtBlob) / n
	out := fftG1Rec(append([]G1(nil), vals...), s.RootsOfUnity, stride)
	return out, nil
}

// IFFTG1 computes the inverse FFT of a G1 vector, scaling by n^-1.
func IFFTG1(vals []G1, s *KZGSettings) ([]G1, error) {
	n := uint64(len(vals))
	if n == 0 {
		return nil, nil
	}
	if err := checkFFTLength(n); err != nil {
		return nil, err
	}
	stride := uint64(KZGFieldElementsPerExtBlob) / n
	out := fftG1Rec(append([]G1(nil), vals...), s.ReverseRootsOfUnity, stride)
	nInv := FrFromUint64(n).Inv()
	for i := range out {
		out[i] = out[i].Mul(nInv)
	}
	return out, nil
}

// recoveryShiftFactor returns k=7, the coset shift used by recovery so the
// vanishing-polynomial division never hits a zero denominator at a missing
// evaluation point.
func recoveryShiftFactor() Fr { return FrFromUint64(recoveryShiftFactorUint64) }

// CosetFFTFr shifts vals by k^i then runs the forward FFT.
func CosetFFTFr(vals []Fr, s *KZGSettings) ([]Fr, error) {
	shifted := make([]Fr, len(vals))
	k := recoveryShiftFactor()
	acc := FrOne()
	for i := range vals {
		shifted[i] = vals[i].Mul(acc)
		acc = acc.Mul(k)
	}
	return FFTFr(shifted, s)
}

// CosetIFFTFr runs the inverse FFT then shifts by k^-i.
func CosetIFFTFr(vals []Fr, s *KZGSettings) ([]Fr, error) {
	out, err := IFFTFr(vals, s)
	if err != nil {
		return nil, err
	}
	kInv := recoveryShiftFactor().Inv()
	acc := FrOne()
	for i := range out {
		out[i] = out[i].Mul(acc)
		acc = acc.Mul(kInv)
	}
	return out, nil
}
