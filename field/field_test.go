package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMontgomeryRoundTrip(t *testing.T) {
	for i, x := range sampleElements(t) {
		var mont, back Elt
		ToMont(&mont, &x)
		FromMont(&back, &mont)
		Correction(&back)
		require.Equalf(t, x, back, "round-trip mismatch at sample %d", i)
	}
}

func TestInvIdentity(t *testing.T) {
	for i, x := range sampleElements(t) {
		if x.IsZero() {
			continue
		}
		var mont, inv, prod, one Elt
		ToMont(&mont, &x)
		Inv(&inv, &mont)
		MulMont(&prod, &mont, &inv)
		FromMont(&one, &prod)
		Correction(&one)
		require.Equalf(t, uint64(1), one[0], "sample %d: x*x^-1 != 1", i)
		for j := 1; j < Words; j++ {
			require.Zerof(t, one[j], "sample %d: x*x^-1 != 1 (limb %d)", i, j)
		}
	}
}

func TestFp2InvIdentity(t *testing.T) {
	a := Elt{2}
	b := Elt{3}
	var x Fp2
	ToMont(&x.A, &a)
	ToMont(&x.B, &b)

	var inv, prod Fp2
	InvMont2(&inv, &x)
	MulMont2(&prod, &x, &inv)

	var one Fp2
	FromMont2(&one, &prod)
	Correction2(&one)
	require.Equal(t, uint64(1), one.A[0])
	require.True(t, one.B.IsZero())
}

func TestAddSubInverse(t *testing.T) {
	elems := sampleElements(t)
	x, y := elems[1], elems[2]
	var sum, diff Elt
	Add(&sum, &x, &y)
	Sub(&diff, &sum, &y)
	Correction(&diff)
	xc := x
	Correction(&xc)
	require.Equal(t, xc, diff)
}

func sampleElements(t *testing.T) []Elt {
	t.Helper()
	return []Elt{
		{},
		{1},
		{2},
		{0xDEADBEEF, 0x1, 0x2, 0x3},
		func() Elt { e := P747; e[0]--; return e }(),
	}
}
