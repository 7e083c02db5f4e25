package kzg

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// pairingEq checks e(a1,a2) == e(b1,b2) via a single Miller-loop/final-
// exponentiation pass over {(-a1,a2), (b1,b2)}.
func pairingEq(a1 G1, a2 G2, b1 G1, b2 G2) bool {
	negA1 := a1.CNeg()
	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{negA1.inner, b1.inner},
		[]bls12381.G2Affine{a2.inner, b2.inner},
	)
	if err != nil {
		return false
	}
	return ok
}
