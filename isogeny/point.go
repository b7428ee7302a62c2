// Package isogeny implements the projective Montgomery-curve point
// arithmetic, kernel-point ladder, and degree 2/3/5-isogeny construction and
// evaluation that the three-party supersingular-isogeny group key protocol
// walks over GF(p747^2).
package isogeny

import "github.com/amirjalali65/sigkp747/field"

// Point is a projective Montgomery x-coordinate (X:Z); the affine
// x-coordinate is X/Z.
type Point struct {
	X, Z field.Fp2
}

// CondSwap conditionally swaps P and Q in constant time (mask all-zero:
// no-op, all-one: swap), matching field.CondSwap2's convention.
func CondSwap(P, Q *Point, mask uint64) {
	field.CondSwap2(&P.X, &Q.X, mask)
	field.CondSwap2(&P.Z, &Q.Z, mask)
}

// DoubleA24C24 computes Q = 2*P on the curve with projective constants
// A24plus = A+2C, C24 = 4C.
func DoubleA24C24(P *Point, Q *Point, A24plus, C24 *field.Fp2) {
	var t0, t1 field.Fp2
	field.Sub2(&t0, &P.X, &P.Z)
	field.Add2(&t1, &P.X, &P.Z)
	field.SqrMont2(&t0, &t0)
	field.SqrMont2(&t1, &t1)
	field.MulMont2(&Q.Z, C24, &t0)
	field.MulMont2(&Q.X, &t1, &Q.Z)
	field.Sub2(&t1, &t1, &t0)
	field.MulMont2(&t0, A24plus, &t1)
	field.Add2(&Q.Z, &Q.Z, &t0)
	field.MulMont2(&Q.Z, &Q.Z, &t1)
}

// DoubleIterA24C24 computes Q = (2^e)*P via e repeated doublings.
func DoubleIterA24C24(P *Point, Q *Point, A24plus, C24 *field.Fp2, e int) {
	*Q = *P
	for i := 0; i < e; i++ {
		DoubleA24C24(Q, Q, A24plus, C24)
	}
}

// TripleA24 computes Q = 3*P on the curve with projective constants
// A24minus = A-2C, A24plus = A+2C.
func TripleA24(P *Point, Q *Point, A24minus, A24plus *field.Fp2) {
	var t0, t1, t2, t3, t4, t5, t6 field.Fp2

	field.Sub2(&t0, &P.X, &P.Z)
	field.SqrMont2(&t2, &t0)
	field.Add2(&t1, &P.X, &P.Z)
	field.SqrMont2(&t3, &t1)
	field.Add2(&t4, &t0, &t1)
	field.Sub2(&t0, &t1, &t0)
	field.SqrMont2(&t1, &t4)
	field.Sub2(&t1, &t1, &t3)
	field.Sub2(&t1, &t1, &t2)
	field.MulMont2(&t5, &t3, A24plus)
	field.MulMont2(&t3, &t3, &t5)
	field.MulMont2(&t6, A24minus, &t2)
	field.MulMont2(&t2, &t2, &t6)
	field.Sub2(&t3, &t2, &t3)
	field.Sub2(&t2, &t5, &t6)
	field.MulMont2(&t1, &t1, &t2)
	field.Add2(&t2, &t3, &t1)
	field.SqrMont2(&t2, &t2)
	field.MulMont2(&Q.X, &t4, &t2)
	field.Sub2(&t1, &t3, &t1)
	field.SqrMont2(&t1, &t1)
	field.MulMont2(&Q.Z, &t0, &t1)
}

// TripleIterA24 computes Q = (3^e)*P via e repeated triplings.
func TripleIterA24(P *Point, Q *Point, A24minus, A24plus *field.Fp2, e int) {
	*Q = *P
	for i := 0; i < e; i++ {
		TripleA24(Q, Q, A24minus, A24plus)
	}
}

// DoubleAdd simultaneously doubles P and adds P+Q (differential addition),
// given the affine difference xPQ = x(P-Q) and curve constant A24 = (A+2)/4.
func DoubleAdd(P, Q *Point, xPQ *field.Fp2, A24 *field.Fp2) {
	var t0, t1, t2 field.Fp2

	field.Add2(&t0, &P.X, &P.Z)
	field.Sub2(&t1, &P.X, &P.Z)
	field.SqrMont2(&P.X, &t0)
	field.Sub2(&t2, &Q.X, &Q.Z)
	field.Correction2(&t2)
	field.Add2(&Q.X, &Q.X, &Q.Z)
	field.MulMont2(&t0, &t0, &t2)
	field.SqrMont2(&P.Z, &t1)
	field.MulMont2(&t1, &t1, &Q.X)
	field.Sub2(&t2, &P.X, &P.Z)
	field.MulMont2(&P.X, &P.X, &P.Z)
	field.MulMont2(&Q.X, &t2, A24)
	field.Sub2(&Q.Z, &t0, &t1)
	field.Add2(&P.Z, &Q.X, &P.Z)
	field.Add2(&Q.X, &t0, &t1)
	field.MulMont2(&P.Z, &P.Z, &t2)
	field.SqrMont2(&Q.Z, &Q.Z)
	field.SqrMont2(&Q.X, &Q.X)
	field.MulMont2(&Q.Z, &Q.Z, xPQ)
}

// DoubleAddA24C24 is DoubleAdd's variant for curves carried by projective
// constants A24plus = A+2C, C24 = 4C, with the kernel-point difference PQ
// itself given projectively rather than as an affine constant.
func DoubleAddA24C24(P, Q *Point, PQ *Point, A24plus, C24 *field.Fp2) {
	var t0, t1, t2, px, pz field.Fp2
	px = PQ.X
	pz = PQ.Z

	field.Add2(&t0, &P.X, &P.Z)
	field.Sub2(&t1, &P.X, &P.Z)
	field.SqrMont2(&P.X, &t0)
	field.Sub2(&t2, &Q.X, &Q.Z)
	field.Correction2(&t2)
	field.Add2(&Q.X, &Q.X, &Q.Z)
	field.MulMont2(&t0, &t0, &t2)
	field.SqrMont2(&P.Z, &t1)
	field.MulMont2(&t1, &t1, &Q.X)
	field.Sub2(&t2, &P.X, &P.Z)
	field.MulMont2(&P.X, &P.X, &P.Z)
	field.MulMont2(&P.X, &P.X, C24)
	field.MulMont2(&Q.X, &t2, A24plus)
	field.Sub2(&Q.Z, &t0, &t1)
	field.MulMont2(&P.Z, &P.Z, C24)
	field.Add2(&P.Z, &Q.X, &P.Z)
	field.Add2(&Q.X, &t0, &t1)
	field.MulMont2(&P.Z, &P.Z, &t2)
	field.SqrMont2(&Q.Z, &Q.Z)
	field.SqrMont2(&Q.X, &Q.X)
	field.MulMont2(&Q.X, &Q.X, &pz)
	field.MulMont2(&Q.Z, &Q.Z, &px)
}

// Quintuple computes R = 5*P on the curve with projective constants A24plus,
// C24, via one doubling and two projective double-adds (Q = 2P then Q = 5P,
// discarding the intermediate 3P/4P values).
func Quintuple(P *Point, R *Point, A24plus, C24 *field.Fp2) {
	var Q, R0 Point
	R0 = *P
	DoubleA24C24(&R0, &Q, A24plus, C24)
	DoubleAddA24C24(&R0, &Q, P, A24plus, C24)
	DoubleAddA24C24(&R0, &Q, P, A24plus, C24)
	*R = Q
}

// QuintupleIter computes Q = (5^e)*P via e repeated quintuplings.
func QuintupleIter(P *Point, Q *Point, A24plus, C24 *field.Fp2, e int) {
	*Q = *P
	for i := 0; i < e; i++ {
		Quintuple(Q, Q, A24plus, C24)
	}
}
