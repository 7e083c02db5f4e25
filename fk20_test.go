package kzg

import "testing"

// TestFK20ZeroPolynomial: the zero polynomial opens to zero everywhere, so
// every cell proof is the identity.
func TestFK20ZeroPolynomial(t *testing.T) {
	s := testSettings(t)
	zero := make([]Fr, KZGFieldElementsPerBlob)
	for i := range zero {
		zero[i] = FrZero()
	}
	proofs, err := computeFK20CellProofs(zero, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(proofs) != KZGCellsPerExtBlob {
		t.Fatalf("proof count = %d", len(proofs))
	}
	for i, p := range proofs {
		if !p.IsIdentity() {
			t.Fatalf("proof %d for the zero polynomial should be the identity", i)
		}
	}
}

// TestFK20ConstantBlob: a constant polynomial equals its own interpolation
// on every coset, so all quotients - and therefore all proofs - are zero,
// while every cell carries the constant.
func TestFK20ConstantBlob(t *testing.T) {
	s := testSettings(t)
	blob := testBlob(77, 0) // every field element is 77

	cells, proofs, err := ComputeCellsAndKZGProofs(blob, true, true, s)
	if err != nil {
		t.Fatal(err)
	}
	want := FrFromUint64(77).ToBEndian()
	for j := 0; j < KZGFieldElementsPerCell; j++ {
		var got Bytes32
		copy(got[:], cells[100][j*KZGBytesPerFieldElement:(j+1)*KZGBytesPerFieldElement])
		if got != want {
			t.Fatalf("constant blob cell element %d differs", j)
		}
	}
	identity := G1Identity().CompressToBytes48()
	for i, p := range proofs {
		if p != identity {
			t.Fatalf("proof %d for a constant blob should be the identity", i)
		}
	}
}

func TestFK20RejectsWrongLength(t *testing.T) {
	s := testSettings(t)
	if _, err := computeFK20CellProofs(make([]Fr, 100), s); err == nil {
		t.Fatal("wrong polynomial length should be rejected")
	}
}
