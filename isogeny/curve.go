package isogeny

import "github.com/amirjalali65/sigkp747/field"

// GetA recovers the Montgomery coefficient A of the curve y^2=x^3+A*x^2+x
// such that R=Q-P, given the affine x-coordinates of P, Q and R.
func GetA(xP, xQ, xR *field.Fp2, A *field.Fp2) {
	var t0, t1, one field.Fp2
	one.A = field.MontgomeryOne

	field.Add2(&t1, xP, xQ)
	field.MulMont2(&t0, xP, xQ)
	field.MulMont2(A, xR, &t1)
	field.Add2(A, A, &t0)
	field.MulMont2(&t0, &t0, xR)
	field.Sub2(A, A, &one)
	field.Add2(&t0, &t0, &t0)
	field.Add2(&t1, &t1, xR)
	field.Add2(&t0, &t0, &t0)
	field.SqrMont2(A, A)
	var t0inv field.Fp2
	field.InvMont2(&t0inv, &t0)
	field.MulMont2(A, A, &t0inv)
	field.Sub2(A, A, &t1)
}

// GetAFromAlpha recovers the projective curve coefficients A24plus = A+2C,
// C24 = 4C from the image of a 2-torsion witness point alpha on the curve.
func GetAFromAlpha(alpha *Point, A24plus, C24 *field.Fp2) {
	field.Sub2(A24plus, &alpha.X, &alpha.Z)
	field.SqrMont2(A24plus, A24plus)
	field.Correction2(A24plus)
	field.Add2(C24, &alpha.X, &alpha.Z)
	field.SqrMont2(C24, C24)
	field.Sub2(C24, A24plus, C24)
	field.Correction2(C24)
}

// GetAProjective recovers the projective curve coefficients A24plus = A+2C,
// C24 = 4C from three projective points P, Q, R with R = Q - P, without
// requiring a dedicated 2-torsion witness (the projective analogue of
// GetA, used whenever no alpha witness survives on the current curve).
func GetAProjective(P, Q, R *Point, A24plus, C24 *field.Fp2) {
	var t0, t1, t2, t3, t4, t5, t6, t7, t8 field.Fp2

	field.MulMont2(&t0, &P.X, &Q.X)
	field.MulMont2(&t0, &t0, &R.X)
	field.MulMont2(&t1, &P.Z, &Q.Z)
	field.MulMont2(&t1, &t1, &R.Z)
	field.Add2(&t0, &t0, &t0)
	field.Add2(&t8, &t1, &t1)
	field.MulMont2(C24, &t8, &t0)

	field.MulMont2(&t2, &P.X, &R.Z)
	field.MulMont2(&t3, &Q.X, &P.Z)
	field.MulMont2(&t4, &R.X, &Q.Z)
	field.MulMont2(&t5, &t2, &Q.Z)
	field.MulMont2(&t6, &t3, &R.Z)
	field.MulMont2(&t7, &t4, &P.Z)
	field.Add2(&t6, &t5, &t6)
	field.Add2(&t6, &t6, &t7)
	field.Add2(&t0, &t0, &t0)
	field.MulMont2(&t6, &t0, &t6)
	field.Neg2(&t6, &t6)

	field.MulMont2(&t2, &t2, &Q.X)
	field.MulMont2(&t3, &t3, &R.X)
	field.MulMont2(&t4, &t4, &P.X)
	field.Add2(&t2, &t2, &t3)
	field.Add2(&t2, &t2, &t4)
	field.Sub2(&t2, &t2, &t1)
	field.SqrMont2(&t2, &t2)
	field.Add2(&t2, &t2, &t6)
	field.Add2(&t0, C24, C24)
	field.Add2(A24plus, &t2, &t0)
	field.Add2(C24, &t0, &t0)
	field.Correction2(A24plus)
	field.Correction2(C24)
}

// JInv computes the j-invariant j = 256*(A^2-3*C^2)^3 / (C^4*(A^2-4*C^2)) of
// the Montgomery curve with projective coefficient A/C.
func JInv(A, C *field.Fp2, jinv *field.Fp2) {
	var t0, t1 field.Fp2

	field.SqrMont2(jinv, A)
	field.SqrMont2(&t1, C)
	field.Add2(&t0, &t1, &t1)
	field.Sub2(&t0, jinv, &t0)
	field.Sub2(&t0, &t0, &t1)
	field.Sub2(jinv, &t0, &t1)
	field.SqrMont2(&t1, &t1)
	field.MulMont2(jinv, jinv, &t1)
	field.Add2(&t0, &t0, &t0)
	field.Add2(&t0, &t0, &t0)
	field.SqrMont2(&t1, &t0)
	field.MulMont2(&t0, &t0, &t1)
	field.Add2(&t0, &t0, &t0)
	field.Add2(&t0, &t0, &t0)
	var jinvInv field.Fp2
	field.InvMont2(&jinvInv, jinv)
	field.MulMont2(jinv, &jinvInv, &t0)
}
