package isogeny

import "github.com/amirjalali65/sigkp747/field"

// Coeff4 holds the three GF(p747^2) coefficients Get4Isogeny derives from a
// kernel point of order 4, consumed by Eval4Isogeny.
type Coeff4 [3]field.Fp2

// Get4Isogeny computes the codomain curve's projective coefficients
// A24plus = A+2C, C24 = 4C of the 4-isogeny with kernel generated by the
// order-4 point P, along with the coefficients needed to evaluate the
// isogeny at other points via Eval4Isogeny.
func Get4Isogeny(P *Point, A24plus, C24 *field.Fp2, coeff *Coeff4) {
	field.Sub2(&coeff[1], &P.X, &P.Z)
	field.Add2(&coeff[2], &P.X, &P.Z)
	field.SqrMont2(&coeff[0], &P.Z)
	field.Add2(&coeff[0], &coeff[0], &coeff[0])
	field.SqrMont2(C24, &coeff[0])
	field.Add2(&coeff[0], &coeff[0], &coeff[0])
	field.SqrMont2(A24plus, &P.X)
	field.Add2(A24plus, A24plus, A24plus)
	field.SqrMont2(A24plus, A24plus)
}

// Eval4Isogeny evaluates the 4-isogeny phi defined by coeff (as produced by
// Get4Isogeny) at P, replacing P with phi(P).
func Eval4Isogeny(P *Point, coeff *Coeff4) {
	var t0, t1 field.Fp2
	field.Add2(&t0, &P.X, &P.Z)
	field.Sub2(&t1, &P.X, &P.Z)
	field.MulMont2(&P.X, &t0, &coeff[1])
	field.MulMont2(&P.Z, &t1, &coeff[2])
	field.MulMont2(&t0, &t0, &t1)
	field.MulMont2(&t0, &t0, &coeff[0])
	field.Add2(&t1, &P.X, &P.Z)
	field.Sub2(&P.Z, &P.X, &P.Z)
	field.SqrMont2(&t1, &t1)
	field.SqrMont2(&P.Z, &P.Z)
	field.Add2(&P.X, &t1, &t0)
	field.Sub2(&t0, &P.Z, &t0)
	field.MulMont2(&P.X, &P.X, &t1)
	field.MulMont2(&P.Z, &P.Z, &t0)
}
