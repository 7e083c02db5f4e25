package kzg

import "testing"

func TestIsPowerOfTwo(t *testing.T) {
	cases := []struct {
		n    uint64
		want bool
	}{
		{0, true}, // documented quirk: callers must not pass 0 where it matters
		{1, true},
		{2, true},
		{3, false},
		{4, true},
		{6, false},
		{4096, true},
		{8192, true},
		{8193, false},
		{1 << 63, true},
	}
	for _, c := range cases {
		if got := isPowerOfTwo(c.n); got != c.want {
			t.Errorf("isPowerOfTwo(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestLog2PowTwo(t *testing.T) {
	for i := uint64(0); i < 64; i++ {
		if got := log2PowTwo(1 << i); got != i {
			t.Errorf("log2PowTwo(1<<%d) = %d", i, got)
		}
	}
}

func TestReverseBitsInvolution(t *testing.T) {
	values := []uint64{0, 1, 2, 0xdeadbeef, 0x0123456789abcdef, ^uint64(0)}
	for _, v := range values {
		if got := reverseBits(reverseBits(v)); got != v {
			t.Errorf("reverseBits twice of %#x = %#x", v, got)
		}
	}
	if reverseBits(1) != 1<<63 {
		t.Error("reverseBits(1) should move the low bit to the top")
	}
}

func TestReverseBitsLimited(t *testing.T) {
	cases := []struct {
		n, v, want uint64
	}{
		{16, 0, 0},
		{16, 1, 8},
		{16, 2, 4},
		{16, 3, 12},
		{16, 15, 15},
		{128, 1, 64},
		{8192, 1, 4096},
	}
	for _, c := range cases {
		if got := reverseBitsLimited(c.n, c.v); got != c.want {
			t.Errorf("reverseBitsLimited(%d, %d) = %d, want %d", c.n, c.v, got, c.want)
		}
	}
}

func TestBitReversalPermutationInvolution(t *testing.T) {
	const n = 64
	arr := make([]uint64, n)
	for i := range arr {
		arr[i] = uint64(i) * 3
	}
	orig := append([]uint64(nil), arr...)

	if err := bitReversalPermutation(arr, n); err != nil {
		t.Fatalf("first permutation: %v", err)
	}
	if err := bitReversalPermutation(arr, n); err != nil {
		t.Fatalf("second permutation: %v", err)
	}
	for i := range arr {
		if arr[i] != orig[i] {
			t.Fatalf("double permutation is not the identity at %d", i)
		}
	}
}

func TestBitReversalPermutationRejectsNonPowerOfTwo(t *testing.T) {
	arr := make([]uint64, 12)
	if err := bitReversalPermutation(arr, 12); err == nil {
		t.Fatal("expected error for non-power-of-two length")
	}
	if err := bitReversalPermutation(arr[:5], 16); err == nil {
		t.Fatal("expected error for mismatched slice length")
	}
}

func TestBitReversalPermutationSmallLengths(t *testing.T) {
	if err := bitReversalPermutation([]int{}, 0); err != nil {
		t.Fatalf("n=0 should be a no-op, got %v", err)
	}
	one := []int{7}
	if err := bitReversalPermutation(one, 1); err != nil || one[0] != 7 {
		t.Fatalf("n=1 should be a no-op, got %v %v", one, err)
	}
}

// TestBitReversalCosetGrouping checks the coset structure property: with
// x[i] = i mod 16 over length 256, every run of 16 consecutive entries is
// constant after the permutation.
func TestBitReversalCosetGrouping(t *testing.T) {
	const n = 256
	arr := make([]uint64, n)
	for i := range arr {
		arr[i] = uint64(i % 16)
	}
	if err := bitReversalPermutation(arr, n); err != nil {
		t.Fatal(err)
	}
	for g := 0; g < n/16; g++ {
		first := arr[g*16]
		for j := 1; j < 16; j++ {
			if arr[g*16+j] != first {
				t.Fatalf("group %d not constant: %v", g, arr[g*16:g*16+16])
			}
		}
	}
}
