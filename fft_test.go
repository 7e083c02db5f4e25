package kzg

import "testing"

func TestFFTFrRoundTrip(t *testing.T) {
	s := testDomain()
	for _, n := range []int{1, 2, 4, 64, 256} {
		in := testFrs(uint64(n)+3, n)
		freq, err := FFTFr(in, s)
		if err != nil {
			t.Fatalf("n=%d fft: %v", n, err)
		}
		back, err := IFFTFr(freq, s)
		if err != nil {
			t.Fatalf("n=%d ifft: %v", n, err)
		}
		for i := range in {
			if !back[i].Equal(in[i]) {
				t.Fatalf("n=%d round trip mismatch at %d", n, i)
			}
		}
	}
}

// TestFFTFrMatchesNaiveDFT pins the FFT output against the direct
// out[k] = sum_j in[j] * omega^(jk) evaluation on a small input.
func TestFFTFrMatchesNaiveDFT(t *testing.T) {
	s := testDomain()
	const n = 8
	const stride = KZGFieldElementsPerExtBlob / n

	in := testFrs(21, n)
	out, err := FFTFr(in, s)
	if err != nil {
		t.Fatal(err)
	}

	for k := 0; k < n; k++ {
		sum := FrZero()
		for j := 0; j < n; j++ {
			root := s.RootsOfUnity[(j*k*stride)%KZGFieldElementsPerExtBlob]
			sum = sum.Add(in[j].Mul(root))
		}
		if !out[k].Equal(sum) {
			t.Fatalf("fft differs from naive DFT at %d", k)
		}
	}
}

func TestFFTFrLengthChecks(t *testing.T) {
	s := testDomain()
	if out, err := FFTFr(nil, s); err != nil || out != nil {
		t.Fatal("n=0 should be a successful no-op")
	}
	if _, err := FFTFr(make([]Fr, 3), s); err == nil {
		t.Fatal("non-power-of-two length should be rejected")
	}
	if _, err := FFTFr(make([]Fr, 2*KZGFieldElementsPerExtBlob), s); err == nil {
		t.Fatal("length above M should be rejected")
	}
}

func TestFFTG1RoundTrip(t *testing.T) {
	s := testDomain()
	const n = 16
	gen := G1Generator()
	in := make([]G1, n)
	for i := range in {
		in[i] = gen.Mul(FrFromUint64(uint64(i + 1)))
	}
	freq, err := FFTG1(in, s)
	if err != nil {
		t.Fatal(err)
	}
	back, err := IFFTG1(freq, s)
	if err != nil {
		t.Fatal(err)
	}
	for i := range in {
		if back[i].CompressToBytes48() != in[i].CompressToBytes48() {
			t.Fatalf("G1 round trip mismatch at %d", i)
		}
	}
}

// TestFFTG1MatchesFr checks the group/field FFT homomorphism:
// FFT_G1([x_i]G) == [FFT_Fr(x)_i]G.
func TestFFTG1MatchesFr(t *testing.T) {
	s := testDomain()
	const n = 8
	scalars := testFrs(987, n)

	gen := G1Generator()
	points := make([]G1, n)
	for i := range points {
		points[i] = gen.Mul(scalars[i])
	}

	freqPoints, err := FFTG1(points, s)
	if err != nil {
		t.Fatal(err)
	}
	freqScalars, err := FFTFr(scalars, s)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		want := gen.Mul(freqScalars[i])
		if freqPoints[i].CompressToBytes48() != want.CompressToBytes48() {
			t.Fatalf("G1 FFT disagrees with Fr FFT at %d", i)
		}
	}
}

func TestCosetFFTRoundTrip(t *testing.T) {
	s := testDomain()
	in := testFrs(4242, 64)
	shifted, err := CosetFFTFr(in, s)
	if err != nil {
		t.Fatal(err)
	}
	back, err := CosetIFFTFr(shifted, s)
	if err != nil {
		t.Fatal(err)
	}
	for i := range in {
		if !back[i].Equal(in[i]) {
			t.Fatalf("coset round trip mismatch at %d", i)
		}
	}
}

// TestCosetFFTAvoidsDomain checks the point of the coset shift: the coset
// evaluation of X - omega^0 has no zero entries even though omega^0 is a
// domain root.
func TestCosetFFTAvoidsDomain(t *testing.T) {
	s := testDomain()
	poly := make([]Fr, 64)
	poly[0] = FrOne().Neg() // X - 1
	poly[1] = FrOne()
	evals, err := CosetFFTFr(poly, s)
	if err != nil {
		t.Fatal(err)
	}
	for i, e := range evals {
		if e.IsZero() {
			t.Fatalf("coset evaluation hit a root of X-1 at %d", i)
		}
	}
}
