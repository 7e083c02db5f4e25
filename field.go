package kzg

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Fr is a BLS12-381 scalar field element. It wraps gnark-crypto's
// fr.Element, which already carries arithmetic in Montgomery form; this
// façade exists so the rest of the package never imports gnark-crypto
// directly and never duplicates a backend primitive.
type Fr struct {
	inner fr.Element
	// null marks the missing-cell sentinel slot used during recovery.
	// A null Fr carries no meaningful inner value.
	null bool
}

// frNullMarker is the serialized form of the missing-cell sentinel:
// all-0xFF bytes, never a valid residue mod r, so it can't collide with
// any real scalar including zero.
var frNullMarker = [KZGBytesPerFieldElement]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// FrNull returns the sentinel "missing" scalar. It must never be fed into
// real arithmetic; recovery code must check IsNull explicitly before
// touching a slot.
func FrNull() Fr {
	var f Fr
	f.null = true
	return f
}

// IsNull reports whether a is the missing-cell sentinel. The flag rides
// alongside inner rather than being encoded as a magic residue.
func (a Fr) IsNull() bool { return a.null }

func FrZero() Fr {
	var f Fr
	f.inner.SetZero()
	return f
}

func FrOne() Fr {
	var f Fr
	f.inner.SetOne()
	return f
}

func FrFromUint64(v uint64) Fr {
	var f Fr
	f.inner.SetUint64(v)
	return f
}

// FrFromBEndian parses a big-endian Bytes32 as a canonical field element,
// rejecting values >= the scalar modulus.
func FrFromBEndian(b [KZGBytesPerFieldElement]byte) (Fr, error) {
	var f Fr
	if err := f.inner.SetBytesCanonical(b[:]); err != nil {
		return Fr{}, badArgs("FrFromBEndian", ErrKZGFieldElementOutOfRange)
	}
	return f, nil
}

// ToBEndian serializes a field element as a canonical Bytes32, emitting the
// all-0xFF sentinel if a is the null/missing marker.
func (a Fr) ToBEndian() [KZGBytesPerFieldElement]byte {
	if a.null {
		return frNullMarker
	}
	return a.inner.Bytes()
}

// HashToField reduces an arbitrary Bytes32 modulo r without validating
// canonicity; used only for Fiat-Shamir challenges, never
// for untrusted blob/cell data.
func HashToField(b [32]byte) Fr {
	var f Fr
	f.inner.SetBytes(b[:])
	return f
}

func (a Fr) Add(b Fr) Fr {
	var r Fr
	r.inner.Add(&a.inner, &b.inner)
	return r
}

func (a Fr) Sub(b Fr) Fr {
	var r Fr
	r.inner.Sub(&a.inner, &b.inner)
	return r
}

func (a Fr) Mul(b Fr) Fr {
	var r Fr
	r.inner.Mul(&a.inner, &b.inner)
	return r
}

func (a Fr) Sqr() Fr {
	var r Fr
	r.inner.Square(&a.inner)
	return r
}

func (a Fr) Neg() Fr {
	var r Fr
	r.inner.Neg(&a.inner)
	return r
}

// Inv returns the multiplicative inverse of a. Callers must not invoke this
// on a zero element; use EuclInv when a may be zero and zero-on-zero is the
// desired behavior.
func (a Fr) Inv() Fr {
	var r Fr
	r.inner.Inverse(&a.inner)
	return r
}

// EuclInv is the extended-Euclidean inverse that returns zero for a zero
// input instead of undefined behavior.
func (a Fr) EuclInv() Fr {
	if a.IsZero() {
		return FrZero()
	}
	return a.Inv()
}

// Div returns a / b; panics semantics are avoided by callers never passing
// b == 0 on a hot path without checking first (mirrors the backend's
// "no undefined division" contract).
func (a Fr) Div(b Fr) Fr {
	return a.Mul(b.Inv())
}

// Pow raises base to an arbitrary uint64 exponent via square-and-multiply.
func (a Fr) Pow(exp uint64) Fr {
	var r Fr
	k := new(big.Int).SetUint64(exp)
	r.inner.Exp(a.inner, k)
	return r
}

func (a Fr) Equal(b Fr) bool {
	if a.null || b.null {
		return a.null == b.null
	}
	return a.inner.Equal(&b.inner)
}

func (a Fr) IsZero() bool { return !a.null && a.inner.IsZero() }

func (a Fr) IsOne() bool { return !a.null && a.inner.IsOne() }

// BatchInvert inverts every element of xs in one pass (one field inversion
// plus O(n) multiplications), used by the barycentric-evaluation and
// quotient-polynomial code.
func BatchInvert(xs []Fr) []Fr {
	inners := make([]fr.Element, len(xs))
	for i, x := range xs {
		inners[i] = x.inner
	}
	invInners := fr.BatchInvert(inners)
	out := make([]Fr, len(xs))
	for i, v := range invInners {
		out[i] = Fr{inner: v}
	}
	return out
}

// frModulus returns the BLS12-381 scalar field modulus r.
func frModulus() *big.Int {
	return fr.Modulus()
}

// frPowBig raises a to an arbitrary big.Int exponent; used only to derive
// the trusted-setup root of unity, whose exponent (r-1)/order does not fit
// the uint64 exponent Pow takes.
func frPowBig(a Fr, exp *big.Int) Fr {
	var r Fr
	r.inner.Exp(a.inner, exp)
	return r
}

// ComputePowers returns [1, x, x^2, ..., x^(n-1)].
func ComputePowers(x Fr, n int) []Fr {
	out := make([]Fr, n)
	if n == 0 {
		return out
	}
	out[0] = FrOne()
	for i := 1; i < n; i++ {
		out[i] = out[i-1].Mul(x)
	}
	return out
}
