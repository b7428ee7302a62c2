package field

import "math/big"

// InvBinGCD computes dest = x^-1 mod p747 via math/big's ModInverse (an
// extended Euclidean GCD), as an alternate to the Fermat-exponentiation path
// in Inv.
// x and dest are in the Montgomery domain; the conversion out of and back
// into Montgomery form happens internally.
//
// TODO: this walks big.Int's variable-time GCD rather than a bounded
// divstep loop, so unlike Inv it is not constant-time in the bit length of
// x. It exists to match the reference library's two-inversion-path surface
// and is only safe to call on public field elements (e.g. curve-parameter
// recovery in tests), never on a secret scalar's blinding factor.
func InvBinGCD(dest, x *Elt) {
	var std Elt
	FromMont(&std, x)

	xb := new(big.Int)
	for i := Words - 1; i >= 0; i-- {
		xb.Lsh(xb, 64)
		xb.Or(xb, new(big.Int).SetUint64(std[i]))
	}

	pb := new(big.Int)
	for i := Words - 1; i >= 0; i-- {
		pb.Lsh(pb, 64)
		pb.Or(pb, new(big.Int).SetUint64(P747[i]))
	}

	inv := new(big.Int).ModInverse(xb, pb)
	var res Elt
	if inv != nil {
		bytesLE := inv.Bits()
		for i, w := range bytesLE {
			if i < Words {
				res[i] = uint64(w)
			}
		}
	}
	ToMont(dest, &res)
}
