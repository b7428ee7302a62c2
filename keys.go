package sigkp747

import "github.com/amirjalali65/sigkp747/field"

// PrivateKeyAlice, PrivateKeyBob and PrivateKeyEve hold one participant's
// secret isogeny-walk scalar, stored in the wire-format byte length shared
// by all three participants (see SecretKeyBytes); only the low
// aliceSecretBytes/bobSecretBytes/eveSecretBytes bytes of each ever carry
// entropy, the remainder staying zero.
type PrivateKeyAlice struct{ scalar [SecretKeyBytes]byte }
type PrivateKeyBob struct{ scalar [SecretKeyBytes]byte }
type PrivateKeyEve struct{ scalar [SecretKeyBytes]byte }

func (k *PrivateKeyAlice) Bytes() []byte { b := k.scalar; return b[:] }
func (k *PrivateKeyBob) Bytes() []byte   { b := k.scalar; return b[:] }
func (k *PrivateKeyEve) Bytes() []byte   { b := k.scalar; return b[:] }

// ParsePrivateKeyAlice, ParsePrivateKeyBob and ParsePrivateKeyEve decode a
// SecretKeyBytes-length scalar produced by the matching GeneratePrivateKey*
// function or Bytes method.
func ParsePrivateKeyAlice(b []byte) (*PrivateKeyAlice, error) {
	if len(b) != SecretKeyBytes {
		return nil, ErrInvalidLength
	}
	k := &PrivateKeyAlice{}
	copy(k.scalar[:], b)
	return k, nil
}

func ParsePrivateKeyBob(b []byte) (*PrivateKeyBob, error) {
	if len(b) != SecretKeyBytes {
		return nil, ErrInvalidLength
	}
	k := &PrivateKeyBob{}
	copy(k.scalar[:], b)
	return k, nil
}

func ParsePrivateKeyEve(b []byte) (*PrivateKeyEve, error) {
	if len(b) != SecretKeyBytes {
		return nil, ErrInvalidLength
	}
	k := &PrivateKeyEve{}
	copy(k.scalar[:], b)
	return k, nil
}

// PublicKeyAlice carries the images, under Alice's isogeny walk, of Bob's
// basis {PB,QB,RB} and Eve's basis {PC,QC,RC}.
type PublicKeyAlice struct {
	PB, QB, RB field.Fp2
	PC, QC, RC field.Fp2
}

// PublicKeyBob carries the images, under Bob's isogeny walk, of Alice's
// basis {PA,QA,RA} and Eve's basis {PC,QC,RC}.
type PublicKeyBob struct {
	PA, QA, RA field.Fp2
	PC, QC, RC field.Fp2
}

// PublicKeyEve carries the images, under Eve's isogeny walk, of Alice's
// basis {PA,QA,RA} and Bob's basis {PB,QB,RB}.
type PublicKeyEve struct {
	PA, QA, RA field.Fp2
	PB, QB, RB field.Fp2
}

const publicKeyPadding = PublicKeyBytes - 6*(2*field.EncodedBytes)

func encodeSix(a, b, c, d, e, f *field.Fp2) []byte {
	out := make([]byte, PublicKeyBytes)
	n := 2 * field.EncodedBytes
	copy(out[0*n:], a.Bytes())
	copy(out[1*n:], b.Bytes())
	copy(out[2*n:], c.Bytes())
	copy(out[3*n:], d.Bytes())
	copy(out[4*n:], e.Bytes())
	copy(out[5*n:], f.Bytes())
	return out
}

func decodeSix(buf []byte, a, b, c, d, e, f *field.Fp2) error {
	if len(buf) != PublicKeyBytes {
		return ErrInvalidLength
	}
	n := 2 * field.EncodedBytes
	elts := [6]*field.Fp2{a, b, c, d, e, f}
	for i, elt := range elts {
		if !elt.SetBytes(buf[i*n : (i+1)*n]) {
			return ErrInvalidPublicKey
		}
	}
	return nil
}

func (p *PublicKeyAlice) Bytes() []byte {
	return encodeSix(&p.PB, &p.QB, &p.RB, &p.PC, &p.QC, &p.RC)
}

func ParsePublicKeyAlice(b []byte) (*PublicKeyAlice, error) {
	p := &PublicKeyAlice{}
	if err := decodeSix(b, &p.PB, &p.QB, &p.RB, &p.PC, &p.QC, &p.RC); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PublicKeyBob) Bytes() []byte {
	return encodeSix(&p.PA, &p.QA, &p.RA, &p.PC, &p.QC, &p.RC)
}

func ParsePublicKeyBob(b []byte) (*PublicKeyBob, error) {
	p := &PublicKeyBob{}
	if err := decodeSix(b, &p.PA, &p.QA, &p.RA, &p.PC, &p.QC, &p.RC); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PublicKeyEve) Bytes() []byte {
	return encodeSix(&p.PA, &p.QA, &p.RA, &p.PB, &p.QB, &p.RB)
}

func ParsePublicKeyEve(b []byte) (*PublicKeyEve, error) {
	p := &PublicKeyEve{}
	if err := decodeSix(b, &p.PA, &p.QA, &p.RA, &p.PB, &p.QB, &p.RB); err != nil {
		return nil, err
	}
	return p, nil
}

// SharedPublic carries the three encoded images produced midway through the
// hexagon: phi_AB's evaluation of Eve's basis, phi_BC's evaluation of
// Alice's basis, or phi_AC's evaluation of Bob's basis, depending on which
// step produced it.
type SharedPublic struct {
	X0, X1, X2 field.Fp2
}

func (s *SharedPublic) Bytes() []byte {
	out := make([]byte, SharedPublicBytes)
	n := 2 * field.EncodedBytes
	copy(out[0*n:], s.X0.Bytes())
	copy(out[1*n:], s.X1.Bytes())
	copy(out[2*n:], s.X2.Bytes())
	return out
}

func ParseSharedPublic(b []byte) (*SharedPublic, error) {
	if len(b) != SharedPublicBytes {
		return nil, ErrInvalidLength
	}
	n := 2 * field.EncodedBytes
	s := &SharedPublic{}
	elts := [3]*field.Fp2{&s.X0, &s.X1, &s.X2}
	for i, elt := range elts {
		if !elt.SetBytes(b[i*n : (i+1)*n]) {
			return nil, ErrInvalidPublicKey
		}
	}
	return s, nil
}

// SharedSecret is the terminal j-invariant all three participants arrive at,
// regardless of which composition order they walked the hexagon in.
type SharedSecret struct {
	J field.Fp2
}

func (s *SharedSecret) Bytes() []byte {
	out := make([]byte, SharedSecretBytes)
	copy(out, s.J.Bytes())
	return out
}

func ParseSharedSecret(b []byte) (*SharedSecret, error) {
	if len(b) != SharedSecretBytes {
		return nil, ErrInvalidLength
	}
	s := &SharedSecret{}
	if !s.J.SetBytes(b[:2*field.EncodedBytes]) {
		return nil, ErrInvalidPublicKey
	}
	return s, nil
}

// Equal reports whether two shared secrets encode the same j-invariant.
// Intended for comparing the terminal output of independent walks around
// the hexagon in tests, not for secret-dependent branching.
func (s *SharedSecret) Equal(other *SharedSecret) bool {
	return field.Equal2(&s.J, &other.J)
}
