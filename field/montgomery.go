package field

import "math/big"

// p34Exponent holds the bits of (p747-3)/4, most significant bit first,
// computed once at package init. p747 is a public system parameter, so
// branching on these bits during exponentiation leaks nothing about any
// secret value being inverted; only x itself is field data.
var p34Exponent []uint8

func init() {
	p := new(big.Int)
	for i := Words - 1; i >= 0; i-- {
		p.Lsh(p, 64)
		p.Or(p, new(big.Int).SetUint64(P747[i]))
	}
	e := new(big.Int).Sub(p, big.NewInt(3))
	e.Rsh(e, 2)
	p34Exponent = make([]uint8, e.BitLen())
	for i := range p34Exponent {
		p34Exponent[len(p34Exponent)-1-i] = uint8(e.Bit(i))
	}
}

// Pow34 computes dest = x^((p747-3)/4) via left-to-right square-and-multiply
// over the public exponent. For x a nonzero quadratic residue this produces
// 1/sqrt(x); chained through Inv below it yields the field inverse.
// x and dest must be in the Montgomery domain; dest may alias x.
func Pow34(dest, x *Elt) {
	var acc Elt
	acc = *x
	for _, bit := range p34Exponent[1:] {
		SqrMont(&acc, &acc)
		if bit == 1 {
			MulMont(&acc, &acc, x)
		}
	}
	*dest = acc
}

// Inv computes dest = x^-1 mod p747 using Fermat's little theorem:
// x^-1 = x^(p-2) = (x^((p-3)/4))^4 * x, since p747 = 3 mod 4.
// x must be nonzero and in the Montgomery domain.
func Inv(dest, x *Elt) {
	var t Elt
	Pow34(&t, x)
	SqrMont(&t, &t)
	SqrMont(&t, &t)
	MulMont(dest, &t, x)
}
