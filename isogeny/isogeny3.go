package isogeny

import "github.com/amirjalali65/sigkp747/field"

// Coeff3 holds the two GF(p747^2) coefficients Get3Isogeny derives from a
// kernel point of order 3, consumed by Eval3Isogeny.
type Coeff3 [2]field.Fp2

// Get3Isogeny computes the codomain curve's projective coefficients
// A24minus = A-2C, A24plus = A+2C of the 3-isogeny with kernel generated by
// the order-3 point P, along with the coefficients needed to evaluate the
// isogeny at other points via Eval3Isogeny.
func Get3Isogeny(P *Point, A24minus, A24plus *field.Fp2, coeff *Coeff3) {
	var t0, t1, t2, t3, t4 field.Fp2

	field.Sub2(&coeff[0], &P.X, &P.Z)
	field.SqrMont2(&t0, &coeff[0])
	field.Add2(&coeff[1], &P.X, &P.Z)
	field.SqrMont2(&t1, &coeff[1])
	field.Add2(&t2, &t0, &t1)
	field.Add2(&t3, &coeff[0], &coeff[1])
	field.SqrMont2(&t3, &t3)
	field.Sub2(&t3, &t3, &t2)
	field.Add2(&t2, &t1, &t3)
	field.Add2(&t3, &t3, &t0)
	field.Add2(&t4, &t0, &t3)
	field.Add2(&t4, &t4, &t4)
	field.Add2(&t4, &t1, &t4)
	field.MulMont2(A24minus, &t2, &t4)
	field.Add2(&t4, &t1, &t2)
	field.Add2(&t4, &t4, &t4)
	field.Add2(&t4, &t0, &t4)
	field.MulMont2(&t4, &t3, &t4)
	field.Sub2(&t0, &t4, A24minus)
	field.Add2(A24plus, A24minus, &t0)
}

// Eval3Isogeny evaluates the 3-isogeny phi defined by coeff (as produced by
// Get3Isogeny) at Q, replacing Q with phi(Q).
func Eval3Isogeny(Q *Point, coeff *Coeff3) {
	var t0, t1, t2 field.Fp2

	field.Add2(&t0, &Q.X, &Q.Z)
	field.Sub2(&t1, &Q.X, &Q.Z)
	field.MulMont2(&t0, &t0, &coeff[0])
	field.MulMont2(&t1, &t1, &coeff[1])
	field.Add2(&t2, &t0, &t1)
	field.Sub2(&t0, &t1, &t0)
	field.SqrMont2(&t2, &t2)
	field.SqrMont2(&t0, &t0)
	field.MulMont2(&Q.X, &Q.X, &t2)
	field.MulMont2(&Q.Z, &Q.Z, &t0)
}
