package kzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// G1 is a point on the BLS12-381 G1 curve, always held in affine form
// between operations.
type G1 struct {
	inner bls12381.G1Affine
}

var g1GenAffine = func() bls12381.G1Affine {
	_, _, g1aff, _ := bls12381.Generators()
	return g1aff
}()

// G1Generator returns the standard BLS12-381 G1 generator.
func G1Generator() G1 { return G1{inner: g1GenAffine} }

// G1Identity returns the point at infinity, also used as the FK20 "slot is
// empty" sentinel.
func G1Identity() G1 {
	var z G1
	z.inner.X.SetZero()
	z.inner.Y.SetZero()
	return z
}

func (p G1) IsIdentity() bool { return p.inner.IsInfinity() }

// AddOrDouble adds two (possibly equal) G1 points.
func (p G1) AddOrDouble(q G1) G1 {
	var pj, qj bls12381.G1Jac
	pj.FromAffine(&p.inner)
	qj.FromAffine(&q.inner)
	pj.AddAssign(&qj)
	var r G1
	r.inner.FromJacobian(&pj)
	return r
}

// CNeg returns -p.
func (p G1) CNeg() G1 {
	var r G1
	r.inner.Neg(&p.inner)
	return r
}

// Mul computes [s]p.
func (p G1) Mul(s Fr) G1 {
	var sb big.Int
	s.inner.BigInt(&sb)
	var r G1
	r.inner.ScalarMultiplication(&p.inner, &sb)
	return r
}

// CompressToBytes48 serializes p using the standard BLS12-381 compressed
// encoding.
func (p G1) CompressToBytes48() [KZGBytesPerCommitment]byte {
	return p.inner.Bytes()
}

// UncompressFromBytes48 deserializes and subgroup-checks a compressed G1
// point. Every caller of an untrusted Bytes48 must go through this, never
// skip the subgroup test.
func UncompressFromBytes48(b [KZGBytesPerCommitment]byte) (G1, error) {
	var p G1
	if _, err := p.inner.SetBytes(b[:]); err != nil {
		return G1{}, badArgs("UncompressFromBytes48", ErrKZGInvalidCommitment)
	}
	if !p.inner.IsInSubGroup() {
		return G1{}, badArgs("UncompressFromBytes48", ErrKZGInvalidCommitment)
	}
	return p, nil
}

// msmFast computes sum(scalars[i] * points[i]). Callers on
// security-critical verification paths must force the naive summation path
// (auditedOnly=true); otherwise the Pippenger path in gnark-crypto's
// MultiExp is used from msmNaiveThreshold inputs upward.
func msmFast(points []G1, scalars []Fr, auditedOnly bool) G1 {
	if len(points) != len(scalars) {
		panic("kzg: msmFast length mismatch")
	}
	if len(points) == 0 {
		return G1Identity()
	}
	if auditedOnly || len(points) < msmNaiveThreshold {
		acc := G1Identity()
		for i := range points {
			if scalars[i].IsZero() || points[i].IsIdentity() {
				continue
			}
			acc = acc.AddOrDouble(points[i].Mul(scalars[i]))
		}
		return acc
	}

	affs := make([]bls12381.G1Affine, len(points))
	frs := make([]fr.Element, len(scalars))
	for i := range points {
		affs[i] = points[i].inner
		frs[i] = scalars[i].inner
	}
	var acc bls12381.G1Affine
	if _, err := acc.MultiExp(affs, frs, ecc.MultiExpConfig{}); err != nil {
		// MultiExp only errors on a length mismatch, already ruled out above.
		panic("kzg: msm: " + err.Error())
	}
	return G1{inner: acc}
}
