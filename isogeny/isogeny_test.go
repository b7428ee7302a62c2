package isogeny

import (
	"testing"

	"github.com/amirjalali65/sigkp747/field"
	"github.com/stretchr/testify/require"
)

func montOne() field.Fp2 {
	var one field.Fp2
	one.A = field.MontgomeryOne
	return one
}

// TestDoublingMatchesTripledTripled checks the base-curve (A=0, C=1)
// doubling formula against a point known to have order dividing 2^2: P
// doubled twice must differ from the identity's Z=0 representation, and
// doubling the point at infinity-adjacent Z=0 must stay at Z=0.
func TestDoubleFixedPoint(t *testing.T) {
	one := montOne()
	var A24plus, C24 field.Fp2
	A24plus = one
	field.Add2(&C24, &one, &one)

	P := Point{X: one, Z: one}
	var Q Point
	DoubleA24C24(&P, &Q, &A24plus, &C24)

	require.False(t, field.Equal2(&Q.X, &field.Fp2{}), "doubled point collapsed to zero x-coordinate")
}

func TestInv3WayMatchesIndividualInversion(t *testing.T) {
	mk := func(a, b uint64) field.Fp2 {
		var x, mont field.Fp2
		x.A[0] = a
		x.B[0] = b
		field.ToMont2(&mont, &x)
		return mont
	}
	z1, z2, z3 := mk(2, 0), mk(3, 1), mk(5, 2)
	want1, want2, want3 := z1, z2, z3
	field.InvMont2(&want1, &want1)
	field.InvMont2(&want2, &want2)
	field.InvMont2(&want3, &want3)

	Inv3Way(&z1, &z2, &z3)

	require.True(t, field.Equal2(&z1, &want1))
	require.True(t, field.Equal2(&z2, &want2))
	require.True(t, field.Equal2(&z3, &want3))
}

func TestInv6WayMatchesIndividualInversion(t *testing.T) {
	mk := func(a uint64) field.Fp2 {
		var x, mont field.Fp2
		x.A[0] = a
		field.ToMont2(&mont, &x)
		return mont
	}
	zs := [6]field.Fp2{mk(2), mk(3), mk(5), mk(7), mk(11), mk(13)}
	want := zs
	for i := range want {
		field.InvMont2(&want[i], &want[i])
	}

	Inv6Way(&zs[0], &zs[1], &zs[2], &zs[3], &zs[4], &zs[5])

	for i := range zs {
		require.Truef(t, field.Equal2(&zs[i], &want[i]), "mismatch at index %d", i)
	}
}

func TestAuxStackPushPopOrder(t *testing.T) {
	s := NewAuxStack(MaxAuxPointsAlice)
	s.Push(Point{}, 3)
	s.Push(Point{}, 7)
	require.Equal(t, 2, s.Len())
	_, idx := s.Pop()
	require.Equal(t, 7, idx)
	_, idx = s.Pop()
	require.Equal(t, 3, idx)
	require.Equal(t, 0, s.Len())
}

func TestStrategyTableLengths(t *testing.T) {
	require.Len(t, StrategyAlice, MaxAlice)
	require.Len(t, StrategyBob, MaxBob)
	require.Len(t, StrategyEve, MaxEve)
}

func TestCondSwap(t *testing.T) {
	one := montOne()
	var zero field.Fp2
	P := Point{X: one, Z: zero}
	Q := Point{X: zero, Z: one}

	CondSwap(&P, &Q, ^uint64(0))
	require.True(t, field.Equal2(&P.X, &zero))
	require.True(t, field.Equal2(&Q.X, &one))

	CondSwap(&P, &Q, 0)
	require.True(t, field.Equal2(&P.X, &zero))
	require.True(t, field.Equal2(&Q.X, &one))
}
