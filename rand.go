package sigkp747

import "io"

// Byte lengths of the entropy actually consumed for each participant's
// scalar, before the top byte is masked: ceil(aliceOrderBits/8) for Alice,
// ceil((bobOrderBits-1)/8) and ceil((eveOrderBits-1)/8) for Bob and Eve,
// matching random_mod_order_A/B/C's NBITS_TO_NBYTES call.
const (
	aliceEntropyBytes = (aliceOrderBits + 7) / 8
	bobEntropyBytes   = (bobOrderBits - 1 + 7) / 8
	eveEntropyBytes   = (eveOrderBits - 1 + 7) / 8
)

func fillScalar(rnd io.Reader, nbytes int, mask byte, out *[SecretKeyBytes]byte) error {
	*out = [SecretKeyBytes]byte{}
	if _, err := io.ReadFull(rnd, out[:nbytes]); err != nil {
		*out = [SecretKeyBytes]byte{}
		return ErrRNGFailure
	}
	out[nbytes-1] &= mask
	return nil
}

// GeneratePrivateKeyAlice draws a fresh secret scalar for Alice's ℓ=4 walk
// from rnd. The last drawn byte is masked with maskAlice (0x00), so the
// scalar lies in [0, 2^256 - 1].
func GeneratePrivateKeyAlice(rnd io.Reader) (*PrivateKeyAlice, error) {
	k := &PrivateKeyAlice{}
	if err := fillScalar(rnd, aliceEntropyBytes, maskAlice, &k.scalar); err != nil {
		return nil, err
	}
	return k, nil
}

// GeneratePrivateKeyBob draws a fresh secret scalar for Bob's ℓ=3 walk from
// rnd. The last drawn byte is masked with maskBob (0x00), so the scalar lies
// in [0, 2^240 - 1].
func GeneratePrivateKeyBob(rnd io.Reader) (*PrivateKeyBob, error) {
	k := &PrivateKeyBob{}
	if err := fillScalar(rnd, bobEntropyBytes, maskBob, &k.scalar); err != nil {
		return nil, err
	}
	return k, nil
}

// GeneratePrivateKeyEve draws a fresh secret scalar for Eve's ℓ=5 walk from
// rnd. The last drawn byte is masked with maskEve (0x00), so the scalar lies
// in [0, 2^240 - 1].
func GeneratePrivateKeyEve(rnd io.Reader) (*PrivateKeyEve, error) {
	k := &PrivateKeyEve{}
	if err := fillScalar(rnd, eveEntropyBytes, maskEve, &k.scalar); err != nil {
		return nil, err
	}
	return k, nil
}
