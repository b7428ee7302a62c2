package field

import "math/bits"

// Fp2 represents an element a + b*i of GF(p747^2), i^2 = -1.
type Fp2 struct {
	A, B Elt
}

// Zero sets z to 0 + 0*i.
func (z *Fp2) Zero() {
	z.A = Elt{}
	z.B = Elt{}
}

// Set copies x into z.
func (z *Fp2) Set(x *Fp2) {
	*z = *x
}

// Correction2 reduces both coordinates of x to their canonical [0,p747)
// representatives.
func Correction2(x *Fp2) {
	Correction(&x.A)
	Correction(&x.B)
}

// CondSwap2 conditionally swaps x and y in constant time, per the same mask
// convention as CondSwap.
func CondSwap2(x, y *Fp2, mask uint64) {
	CondSwap(&x.A, &y.A, mask)
	CondSwap(&x.B, &y.B, mask)
}

// Add2 computes z = x + y in GF(p747^2).
func Add2(z, x, y *Fp2) {
	Add(&z.A, &x.A, &y.A)
	Add(&z.B, &x.B, &y.B)
}

// Sub2 computes z = x - y in GF(p747^2).
func Sub2(z, x, y *Fp2) {
	Sub(&z.A, &x.A, &y.A)
	Sub(&z.B, &x.B, &y.B)
}

// Neg2 computes z = -x in GF(p747^2).
func Neg2(z, x *Fp2) {
	var zero Elt
	Sub(&z.A, &zero, &x.A)
	Sub(&z.B, &zero, &x.B)
}

// Div2 computes z = x/2 in GF(p747^2) by adding p747 when x's coordinate is
// odd and then halving.
func Div2(z, x *Fp2) {
	div2 := func(out, in *Elt) {
		var t Elt
		mask := uint64(0) - (in[0] & 1)
		var carry uint64
		for i := 0; i < Words; i++ {
			t[i], carry = bits.Add64(in[i], P747[i]&mask, carry)
		}
		var borrow uint64
		for i := Words - 1; i >= 0; i-- {
			out[i] = (t[i] >> 1) | (borrow << 63)
			borrow = t[i] & 1
		}
	}
	div2(&z.A, &x.A)
	div2(&z.B, &x.B)
}

// MulMont2 computes z = x*y in GF(p747^2) via Karatsuba's trick, reducing
// three single-width multiplications to the product (a+bi)(c+di):
//
//	(a+bi)(c+di) = (ac-bd) + (ad+bc)i
//	ad+bc = (b-a)(c-d) + ac + bd
func MulMont2(z, x, y *Fp2) {
	a, b := &x.A, &x.B
	c, d := &y.A, &y.B

	var ac, bd WideElt
	Mul(&ac, a, c)
	Mul(&bd, b, d)

	var bMinusA, cMinusD Elt
	Sub(&bMinusA, b, a)
	Sub(&cMinusD, c, d)

	var adPlusBc WideElt
	Mul(&adPlusBc, &bMinusA, &cMinusD)
	wideAdd(&adPlusBc, &adPlusBc, &ac)
	wideAdd(&adPlusBc, &adPlusBc, &bd)
	montgomeryReduce(&z.B, &adPlusBc)

	var acMinusBd WideElt
	wideSub(&acMinusBd, &ac, &bd)
	montgomeryReduce(&z.A, &acMinusBd)
}

// SqrMont2 computes z = x*x in GF(p747^2): (a+bi)^2 = (a^2-b^2) + 2abi.
func SqrMont2(z, x *Fp2) {
	a, b := &x.A, &x.B

	var a2, aPlusB, aMinusB Elt
	Add(&a2, a, a)
	Add(&aPlusB, a, b)
	Sub(&aMinusB, a, b)

	var a2MinusB2, ab2 WideElt
	Mul(&a2MinusB2, &aPlusB, &aMinusB)
	Mul(&ab2, &a2, b)

	montgomeryReduce(&z.A, &a2MinusB2)
	montgomeryReduce(&z.B, &ab2)
}

// InvMont2 computes z = x^-1 in GF(p747^2) via
//
//	1/(a+bi) = (a-bi) / (a^2+b^2).
func InvMont2(z, x *Fp2) {
	a, b := &x.A, &x.B

	var asq, bsq WideElt
	Mul(&asq, a, a)
	Mul(&bsq, b, b)
	wideAdd(&asq, &asq, &bsq)

	var norm Elt
	montgomeryReduce(&norm, &asq)

	var normInv Elt
	Inv(&normInv, &norm)

	var negB Elt
	var zero Elt
	Sub(&negB, &zero, b)

	MulMont(&z.A, a, &normInv)
	MulMont(&z.B, &negB, &normInv)
}

// ToMont2 converts x into the Montgomery domain coordinate-wise.
func ToMont2(z, x *Fp2) {
	ToMont(&z.A, &x.A)
	ToMont(&z.B, &x.B)
}

// FromMont2 converts x out of the Montgomery domain coordinate-wise.
func FromMont2(z, x *Fp2) {
	FromMont(&z.A, &x.A)
	FromMont(&z.B, &x.B)
}

// Equal2 reports, in non-constant time, whether x and y are the same
// GF(p747^2) element after reduction to canonical form. Intended for tests
// and for comparing public (non-secret) values such as decoded keys.
func Equal2(x, y *Fp2) bool {
	xa, xb, ya, yb := x.A, x.B, y.A, y.B
	Correction(&xa)
	Correction(&xb)
	Correction(&ya)
	Correction(&yb)
	return xa == ya && xb == yb
}
