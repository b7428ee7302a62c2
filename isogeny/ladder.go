package isogeny

import "github.com/amirjalali65/sigkp747/field"

// Ladder3Pt recovers the kernel point R = P + [m]Q from the three-point
// basis {xP, xQ, xPQ=x(Q-P)} and a little-endian bit scalar m of the given
// bit length, walking a constant-time Montgomery ladder whose swap decision
// depends only on scalar bits, never on field-element values.
func Ladder3Pt(xP, xQ, xPQ *field.Fp2, scalarBits []uint8, A *field.Fp2, R *Point) {
	var R0, R2 Point
	var A24 field.Fp2

	A24.A = field.MontgomeryOne
	field.Add2(&A24, &A24, &A24)
	field.Add2(&A24, A, &A24)
	field.Div2(&A24, &A24)
	field.Div2(&A24, &A24) // A24 = (A+2)/4

	R0.X = *xQ
	R0.Z.A = field.MontgomeryOne
	R2.X = *xPQ
	R2.Z.A = field.MontgomeryOne
	R.X = *xP
	R.Z.A = field.MontgomeryOne
	R.Z.B = field.Elt{}

	prevBit := uint8(0)
	for _, bit := range scalarBits {
		swap := bit ^ prevBit
		prevBit = bit
		mask := uint64(0) - uint64(swap)

		CondSwap(R, &R2, mask)
		DoubleAdd(&R0, &R2, &R.X, &A24)
		field.MulMont2(&R2.X, &R2.X, &R.Z)
	}
}

// ScalarBits unpacks the low nbits bits of a little-endian scalar byte
// string into a slice of single bits, least significant first, matching the
// bit-extraction order LADDER3PT walks over.
func ScalarBits(scalar []byte, nbits int) []uint8 {
	out := make([]uint8, nbits)
	for i := 0; i < nbits; i++ {
		out[i] = (scalar[i/8] >> uint(i%8)) & 1
	}
	return out
}
