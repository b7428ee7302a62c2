package field

import "math/bits"

// Zero sets z to the additive identity.
func (z *Elt) Zero() {
	*z = Elt{}
}

// Set copies x into z.
func (z *Elt) Set(x *Elt) {
	*z = *x
}

// IsZero reports, in non-constant time, whether z is the zero element.
// Only ever called on public data (e.g. validating a decoded key), never on
// secret-dependent values.
func (z *Elt) IsZero() bool {
	return *z == Elt{}
}

// Add computes z = x + y (mod 2*p747), leaving the result in [0, 2p747).
func Add(z, x, y *Elt) {
	var carry, borrow uint64
	for i := 0; i < Words; i++ {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	var t Elt
	borrow = 0
	for i := 0; i < Words; i++ {
		t[i], borrow = bits.Sub64(z[i], P747x2[i], borrow)
	}
	mask := uint64(0) - borrow
	carry = 0
	for i := 0; i < Words; i++ {
		z[i], carry = bits.Add64(t[i], P747x2[i]&mask, carry)
	}
}

// Sub computes z = x - y (mod 2*p747), leaving the result in [0, 2p747).
func Sub(z, x, y *Elt) {
	var borrow, carry uint64
	for i := 0; i < Words; i++ {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	mask := uint64(0) - borrow
	borrow = 0
	for i := 0; i < Words; i++ {
		z[i], carry = bits.Add64(z[i], P747x2[i]&mask, borrow)
		borrow = carry
	}
}

// Correction reduces x held in [0, 2*p747) down to the canonical [0, p747)
// representative.
func Correction(x *Elt) {
	var borrow, carry uint64
	var t Elt
	for i := 0; i < Words; i++ {
		t[i], borrow = bits.Sub64(x[i], P747[i], borrow)
	}
	mask := uint64(0) - borrow
	borrow = 0
	for i := 0; i < Words; i++ {
		t[i], carry = bits.Add64(t[i], P747[i]&mask, borrow)
		borrow = carry
	}
	*x = t
}

// CondSwap conditionally swaps x and y in constant time. mask must be
// either all-zero (no swap) or all-one (swap) bits; it must never depend on
// secret data in any way other than through this intended selection.
func CondSwap(x, y *Elt, mask uint64) {
	for i := 0; i < Words; i++ {
		t := mask & (x[i] ^ y[i])
		x[i] ^= t
		y[i] ^= t
	}
}

// Mul computes the double-width product z = x*y, without any reduction.
func Mul(z *WideElt, x, y *Elt) {
	var u, v, t uint64
	var carry uint64

	for i := 0; i < Words; i++ {
		for j := 0; j <= i; j++ {
			hi, lo := bits.Mul64(x[j], y[i-j])
			var c0, c1 uint64
			v, c0 = bits.Add64(lo, v, 0)
			u, c1 = bits.Add64(hi, u, c0)
			t += c1
		}
		z[i] = v
		v = u
		u = t
		t = 0
	}
	for i := Words; i < 2*Words-1; i++ {
		for j := i - Words + 1; j < Words; j++ {
			hi, lo := bits.Mul64(x[j], y[i-j])
			var c0, c1 uint64
			v, c0 = bits.Add64(lo, v, 0)
			u, c1 = bits.Add64(hi, u, c0)
			t += c1
		}
		z[i] = v
		v = u
		u = t
		t = 0
	}
	z[2*Words-1] = v
	_ = carry
}

// wideAdd computes z = x + y over 2*Words limbs, without reduction.
func wideAdd(z, x, y *WideElt) {
	var carry uint64
	for i := 0; i < 2*Words; i++ {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
}

// wideSub computes z = x - y over 2*Words limbs, adding p747 back into the
// high half when the subtraction underflows (matches the teacher's
// fp2Sub shortcut of only correcting the upper Words limbs).
func wideSub(z, x, y *WideElt) {
	var borrow, carry uint64
	for i := 0; i < 2*Words; i++ {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	mask := uint64(0) - borrow
	borrow = 0
	for i := Words; i < 2*Words; i++ {
		z[i], carry = bits.Add64(z[i], P747[i-Words]&mask, borrow)
		borrow = carry
	}
}

// montgomeryReduce performs Montgomery reduction, folding the double-width
// x down to a single-width z = x*R^-1 mod p747, where R=2^768. Destroys x.
func montgomeryReduce(z *Elt, x *WideElt) {
	var carry, t, u, v uint64
	count := ZeroWords

	for i := 0; i < Words; i++ {
		for j := 0; j < i; j++ {
			if j < i-count+1 {
				hi, lo := bits.Mul64(x[j], P747p1[i-j])
				var c0, c1 uint64
				v, c0 = bits.Add64(lo, v, 0)
				u, c1 = bits.Add64(hi, u, c0)
				t += c1
			}
		}
		var c0, c1 uint64
		v, c0 = bits.Add64(v, x[i], 0)
		u, c1 = bits.Add64(u, 0, c0)
		t += c1

		x[i] = v
		v = u
		u = t
		t = 0
		_ = carry
	}

	for i := Words; i < 2*Words-1; i++ {
		if count > 0 {
			count--
		}
		for j := i - Words + 1; j < Words; j++ {
			if j < Words-count {
				hi, lo := bits.Mul64(x[j], P747p1[i-j])
				var c0, c1 uint64
				v, c0 = bits.Add64(lo, v, 0)
				u, c1 = bits.Add64(hi, u, c0)
				t += c1
			}
		}
		var c0, c1 uint64
		v, c0 = bits.Add64(v, x[i], 0)
		u, c1 = bits.Add64(u, 0, c0)
		t += c1

		x[i-Words] = v
		v = u
		u = t
		t = 0
	}
	var c0 uint64
	v, c0 = bits.Add64(v, x[2*Words-1], 0)
	_ = c0
	x[Words-1] = v
	copy(z[:], x[:Words])
}

// MulMont computes z = x*y*R^-1 mod p747, i.e. Montgomery multiplication;
// x and y must already be in the Montgomery domain.
func MulMont(z, x, y *Elt) {
	var wide WideElt
	Mul(&wide, x, y)
	montgomeryReduce(z, &wide)
}

// SqrMont computes z = x*x*R^-1 mod p747.
func SqrMont(z, x *Elt) {
	MulMont(z, x, x)
}

// ToMont converts x from the standard representation into the Montgomery
// domain: z = x*R mod p747.
func ToMont(z, x *Elt) {
	MulMont(z, x, &MontgomeryR2)
}

// FromMont converts x out of the Montgomery domain: z = x*R^-1 mod p747.
func FromMont(z, x *Elt) {
	var one Elt
	one[0] = 1
	MulMont(z, x, &one)
}
