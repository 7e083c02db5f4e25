package kzg

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G2 is a point on the BLS12-381 G2 curve.
type G2 struct {
	inner bls12381.G2Affine
}

var g2GenAffine = func() bls12381.G2Affine {
	_, _, _, g2aff := bls12381.Generators()
	return g2aff
}()

// G2Generator returns the standard BLS12-381 G2 generator.
func G2Generator() G2 { return G2{inner: g2GenAffine} }

func (p G2) AddOrDouble(q G2) G2 {
	var pj, qj bls12381.G2Jac
	pj.FromAffine(&p.inner)
	qj.FromAffine(&q.inner)
	pj.AddAssign(&qj)
	var r G2
	r.inner.FromJacobian(&pj)
	return r
}

func (p G2) CNeg() G2 {
	var r G2
	r.inner.Neg(&p.inner)
	return r
}

func (p G2) Mul(s Fr) G2 {
	var sb big.Int
	s.inner.BigInt(&sb)
	var r G2
	r.inner.ScalarMultiplication(&p.inner, &sb)
	return r
}

func (p G2) CompressToBytes() [96]byte {
	return p.inner.Bytes()
}

// UncompressG2FromBytes deserializes and subgroup-checks a compressed G2
// point, used only while loading the trusted setup.
func UncompressG2FromBytes(b [96]byte) (G2, error) {
	var p G2
	if _, err := p.inner.SetBytes(b[:]); err != nil {
		return G2{}, badArgs("UncompressG2FromBytes", ErrKZGMalformedSetup)
	}
	if !p.inner.IsInSubGroup() {
		return G2{}, badArgs("UncompressG2FromBytes", ErrKZGMalformedSetup)
	}
	return p, nil
}
