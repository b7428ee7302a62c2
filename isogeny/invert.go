package isogeny

import "github.com/amirjalali65/sigkp747/field"

// Inv3Way inverts z1, z2, z3 in place using a single field inversion, per
// Montgomery's simultaneous-inversion trick.
func Inv3Way(z1, z2, z3 *field.Fp2) {
	var t0, t1, t2, t3 field.Fp2

	field.MulMont2(&t0, z1, z2)
	field.MulMont2(&t1, z3, &t0)
	field.InvMont2(&t1, &t1)
	field.MulMont2(&t2, z3, &t1)
	field.MulMont2(&t3, &t2, z2)
	field.MulMont2(z2, &t2, z1)
	field.MulMont2(z3, &t0, &t1)
	*z1 = t3
}

// Inv6Way inverts z1..z6 in place using a single field inversion.
func Inv6Way(z1, z2, z3, z4, z5, z6 *field.Fp2) {
	var t0, t1, t2, t3, t4, t5, t6, t8, t9, t10 field.Fp2

	field.MulMont2(&t0, z1, z2)
	field.MulMont2(&t1, z3, &t0)
	field.MulMont2(&t2, z4, &t1)
	field.MulMont2(&t3, z5, &t2)
	field.MulMont2(&t4, z6, &t3)
	field.InvMont2(&t4, &t4)
	field.MulMont2(&t5, &t4, &t3)
	field.MulMont2(&t4, &t4, z6)
	field.MulMont2(&t6, &t4, &t2)
	field.MulMont2(&t4, &t4, z5)
	field.MulMont2(&t8, &t4, &t1)
	field.MulMont2(&t4, &t4, z4)
	field.MulMont2(&t9, &t4, &t0)
	field.MulMont2(&t4, &t4, z3)
	field.MulMont2(&t10, &t4, z2)
	field.MulMont2(z2, &t4, z1)
	*z1 = t10
	*z3 = t9
	*z4 = t8
	*z5 = t6
	*z6 = t5
}
