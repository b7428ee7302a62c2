package isogeny

import "github.com/amirjalali65/sigkp747/field"

// CrissCross computes the Costello-Hisil "criss-cross" update used to
// evaluate a degree-5 isogeny:
//
//	alpha' = alpha*delta + beta*gamma
//	beta'  = alpha*delta - beta*gamma
func CrissCross(alpha, beta, gamma, delta *field.Fp2) {
	var t0, t1 field.Fp2
	field.MulMont2(&t0, alpha, delta)
	field.MulMont2(&t1, beta, gamma)
	field.Add2(alpha, &t0, &t1)
	field.Sub2(beta, &t0, &t1)
}

// Eval5Isogeny evaluates the 5-isogeny with kernel generator P (given
// alongside Pdbl = [2]P) at Q, replacing Q with phi(Q), using Costello and
// Hisil's criss-cross formulation (no coefficient precomputation step: the
// kernel points themselves parameterize every evaluation).
func Eval5Isogeny(P, Pdbl *Point, Q *Point) {
	var xHat, zHat, t0, t1, t2, t3, t4, t5 field.Fp2

	field.Add2(&t2, &P.X, &P.Z)
	field.Sub2(&t3, &P.X, &P.Z)
	field.Add2(&t4, &Pdbl.X, &Pdbl.Z)
	field.Sub2(&t5, &Pdbl.X, &Pdbl.Z)

	field.Add2(&xHat, &Q.X, &Q.Z)
	field.Sub2(&zHat, &Q.X, &Q.Z)
	CrissCross(&t2, &t3, &xHat, &zHat)
	CrissCross(&t4, &t5, &xHat, &zHat)
	field.MulMont2(&t0, &t4, &t2)
	field.MulMont2(&t1, &t5, &t3)
	field.SqrMont2(&t0, &t0)
	field.SqrMont2(&t1, &t1)
	field.MulMont2(&Q.X, &t0, &Q.X)
	field.MulMont2(&Q.Z, &t1, &Q.Z)
}
