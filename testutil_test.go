package kzg

import (
	"sync"
	"testing"
)

// testSetupSecret is the insecure trusted-setup secret tau used by tests.
// Everything downstream (monomial and lagrange SRS, G2 powers) is derived
// from it, so commitments, proofs and pairings are mutually consistent.
const testSetupSecret = 424242

var (
	domainOnce     sync.Once
	domainSettings *KZGSettings

	setupOnce     sync.Once
	setupSettings *KZGSettings
	setupErr      error
)

// testDomain returns a roots-of-unity-only KZGSettings, enough for the FFT
// and polynomial helpers that never touch the SRS.
func testDomain() *KZGSettings {
	domainOnce.Do(func() {
		roots, reverse, brp, err := expandRootsOfUnity()
		if err != nil {
			panic(err)
		}
		domainSettings = &KZGSettings{
			RootsOfUnity:        roots,
			ReverseRootsOfUnity: reverse,
			BRPRootsOfUnity:     brp,
		}
	})
	return domainSettings
}

// testSettings builds a full KZGSettings from the insecure tau-derived SRS
// through the real LoadSetupFromBytes path, and caches it for the whole
// test run (the FK20 precompute is expensive).
func testSettings(t *testing.T) *KZGSettings {
	t.Helper()
	setupOnce.Do(func() {
		g1Mono, g1Lag, g2Mono := generateInsecureSetup()
		setupSettings, setupErr = LoadSetupFromBytes(g1Mono, g1Lag, g2Mono, 0)
	})
	if setupErr != nil {
		t.Fatalf("building test setup: %v", setupErr)
	}
	return setupSettings
}

// generateInsecureSetup derives [tau^i]G1 for i < N, the matching lagrange
// G1 points via an inverse G1 FFT over the N-sized domain, and [tau^i]G2
// for i < 65, all serialized the way LoadSetupFromBytes expects them.
func generateInsecureSetup() (g1Mono, g1Lag, g2Mono []byte) {
	tau := FrFromUint64(testSetupSecret)
	powers := ComputePowers(tau, KZGFieldElementsPerBlob)

	monoPoints := make([]G1, KZGFieldElementsPerBlob)
	gen := G1Generator()
	for i, p := range powers {
		monoPoints[i] = gen.Mul(p)
	}

	// The i-th lagrange basis polynomial has coefficients omega^(-ij)/N, so
	// the lagrange SRS is exactly the inverse FFT of the monomial SRS.
	lagPoints, err := IFFTG1(monoPoints, testDomain())
	if err != nil {
		panic(err)
	}

	g2Gen := G2Generator()
	g2Points := make([]G2, kzgG2PointsInSetup)
	for i := 0; i < kzgG2PointsInSetup; i++ {
		g2Points[i] = g2Gen.Mul(powers[i])
	}

	g1Mono = make([]byte, 0, KZGFieldElementsPerBlob*KZGBytesPerCommitment)
	g1Lag = make([]byte, 0, KZGFieldElementsPerBlob*KZGBytesPerCommitment)
	for i := 0; i < KZGFieldElementsPerBlob; i++ {
		mb := monoPoints[i].CompressToBytes48()
		lb := lagPoints[i].CompressToBytes48()
		g1Mono = append(g1Mono, mb[:]...)
		g1Lag = append(g1Lag, lb[:]...)
	}
	g2Mono = make([]byte, 0, kzgG2PointsInSetup*96)
	for i := 0; i < kzgG2PointsInSetup; i++ {
		gb := g2Points[i].CompressToBytes()
		g2Mono = append(g2Mono, gb[:]...)
	}
	return g1Mono, g1Lag, g2Mono
}

// testBlob returns a deterministic blob whose i-th field element is
// seed+i*step reduced into the field.
func testBlob(seed, step uint64) *Blob {
	var blob Blob
	for i := 0; i < KZGFieldElementsPerBlob; i++ {
		f := FrFromUint64(seed + uint64(i)*step)
		b := f.ToBEndian()
		copy(blob[i*KZGBytesPerFieldElement:(i+1)*KZGBytesPerFieldElement], b[:])
	}
	return &blob
}

// testFrs returns n deterministic field elements derived from seed.
func testFrs(seed uint64, n int) []Fr {
	out := make([]Fr, n)
	acc := FrFromUint64(seed)
	mult := FrFromUint64(6364136223846793005)
	for i := range out {
		out[i] = acc
		acc = acc.Mul(mult).Add(FrFromUint64(1442695040888963407))
	}
	return out
}
