package sigkp747

import (
	"bytes"
	"testing"

	"github.com/amirjalali65/sigkp747/internal/drbg"
	"github.com/stretchr/testify/require"
)

// runHexagon walks all six operations for one triple of private keys and
// returns the three terminal shared secrets, one as computed by each
// participant.
func runHexagon(t *testing.T, skA *PrivateKeyAlice, skB *PrivateKeyBob, skC *PrivateKeyEve) (*SharedSecret, *SharedSecret, *SharedSecret) {
	t.Helper()

	pkA, err := KeyGenAlice(skA)
	require.NoError(t, err)
	pkB, err := KeyGenBob(skB)
	require.NoError(t, err)
	pkC, err := KeyGenEve(skC)
	require.NoError(t, err)

	sharedAB, err := SharedPublicBobFromAlice(skB, pkA)
	require.NoError(t, err)

	sharedBC, secretC, err := SharedSecretEveFromBob(skC, pkB, sharedAB)
	require.NoError(t, err)

	sharedAC, secretA, err := SharedSecretAliceFromEve(skA, pkC, sharedBC)
	require.NoError(t, err)

	secretB, err := SharedSecretBobFromAlice(skB, sharedAC)
	require.NoError(t, err)

	return secretA, secretB, secretC
}

// TestHexagonAgreesOnSharedSecret exercises all six protocol operations
// end to end and checks that Alice, Bob and Eve converge on the same
// j-invariant regardless of which leg of the hexagon computed it last.
func TestHexagonAgreesOnSharedSecret(t *testing.T) {
	rnd := drbg.New([]byte("sigkp747 hexagon test seed"))

	skA, err := GeneratePrivateKeyAlice(rnd)
	require.NoError(t, err)
	skB, err := GeneratePrivateKeyBob(rnd)
	require.NoError(t, err)
	skC, err := GeneratePrivateKeyEve(rnd)
	require.NoError(t, err)

	secretA, secretB, secretC := runHexagon(t, skA, skB, skC)

	require.True(t, secretA.Equal(secretB), "Alice and Bob disagree on the shared secret")
	require.True(t, secretB.Equal(secretC), "Bob and Eve disagree on the shared secret")
}

// TestZeroSeededDRBGIsDeterministic checks that two independent runs of
// key generation fed from drbg streams seeded with the same all-zero
// bytes produce byte-identical keys, establishing a known-answer
// baseline for regression testing.
func TestZeroSeededDRBGIsDeterministic(t *testing.T) {
	seed := make([]byte, 32)

	gen := func() (*PublicKeyAlice, *PublicKeyBob, *PublicKeyEve) {
		rnd := drbg.New(seed)
		skA, err := GeneratePrivateKeyAlice(rnd)
		require.NoError(t, err)
		skB, err := GeneratePrivateKeyBob(rnd)
		require.NoError(t, err)
		skC, err := GeneratePrivateKeyEve(rnd)
		require.NoError(t, err)

		pkA, err := KeyGenAlice(skA)
		require.NoError(t, err)
		pkB, err := KeyGenBob(skB)
		require.NoError(t, err)
		pkC, err := KeyGenEve(skC)
		require.NoError(t, err)
		return pkA, pkB, pkC
	}

	a1, b1, c1 := gen()
	a2, b2, c2 := gen()

	require.True(t, bytes.Equal(a1.Bytes(), a2.Bytes()))
	require.True(t, bytes.Equal(b1.Bytes(), b2.Bytes()))
	require.True(t, bytes.Equal(c1.Bytes(), c2.Bytes()))
}

// TestBitFlipDivergesSharedSecret checks that flipping a single bit of
// Bob's secret scalar before the hexagon runs changes the terminal
// shared secret, i.e. that the protocol is sensitive to its inputs
// rather than collapsing to a fixed point.
func TestBitFlipDivergesSharedSecret(t *testing.T) {
	rnd := drbg.New([]byte("sigkp747 bit flip test seed"))

	skA, err := GeneratePrivateKeyAlice(rnd)
	require.NoError(t, err)
	skB, err := GeneratePrivateKeyBob(rnd)
	require.NoError(t, err)
	skC, err := GeneratePrivateKeyEve(rnd)
	require.NoError(t, err)

	secretA, _, _ := runHexagon(t, skA, skB, skC)

	flipped := skB.Bytes()
	flipped[0] ^= 0x01
	skBFlipped, err := ParsePrivateKeyBob(flipped)
	require.NoError(t, err)

	secretAFlipped, _, _ := runHexagon(t, skA, skBFlipped, skC)

	require.False(t, secretA.Equal(secretAFlipped), "flipping a bit of Bob's scalar did not change the shared secret")
}

// TestKeySerializationRoundTrips checks that every wire-format type
// round-trips through Bytes/Parse without loss, at the declared byte
// lengths.
func TestKeySerializationRoundTrips(t *testing.T) {
	rnd := drbg.New([]byte("sigkp747 serialization test seed"))

	skA, err := GeneratePrivateKeyAlice(rnd)
	require.NoError(t, err)
	require.Len(t, skA.Bytes(), SecretKeyBytes)
	gotA, err := ParsePrivateKeyAlice(skA.Bytes())
	require.NoError(t, err)
	require.Equal(t, skA.Bytes(), gotA.Bytes())

	pkA, err := KeyGenAlice(skA)
	require.NoError(t, err)
	require.Len(t, pkA.Bytes(), PublicKeyBytes)
	gotPKA, err := ParsePublicKeyAlice(pkA.Bytes())
	require.NoError(t, err)
	require.Equal(t, pkA.Bytes(), gotPKA.Bytes())

	skB, err := GeneratePrivateKeyBob(rnd)
	require.NoError(t, err)
	pkA2, err := KeyGenAlice(skA)
	require.NoError(t, err)
	sharedAB, err := SharedPublicBobFromAlice(skB, pkA2)
	require.NoError(t, err)
	require.Len(t, sharedAB.Bytes(), SharedPublicBytes)
	gotShared, err := ParseSharedPublic(sharedAB.Bytes())
	require.NoError(t, err)
	require.Equal(t, sharedAB.Bytes(), gotShared.Bytes())
}

// TestParsePublicKeyRejectsWrongLength checks that decoding a buffer of the
// wrong length (a public key one byte short, a shared secret one byte long)
// fails with ErrInvalidLength rather than panicking, zero-filling the
// remainder or ignoring the extra byte.
func TestParsePublicKeyRejectsWrongLength(t *testing.T) {
	_, err := ParsePublicKeyAlice(make([]byte, PublicKeyBytes-1))
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = ParseSharedSecret(make([]byte, SharedSecretBytes+1))
	require.ErrorIs(t, err, ErrInvalidLength)
}

// TestReorderedCompositionAgrees checks that generating the three public
// keys in reverse order (Eve, Bob, Alice) still lands on the same shared
// secret. Only key generation is reordered: the second-round operations
// run in their one valid order (SharedPublicBobFromAlice,
// SharedSecretEveFromBob, SharedSecretAliceFromEve,
// SharedSecretBobFromAlice), since each needs the previous one's output.
func TestReorderedCompositionAgrees(t *testing.T) {
	rnd := drbg.New([]byte("sigkp747 reordered test seed"))

	skA, err := GeneratePrivateKeyAlice(rnd)
	require.NoError(t, err)
	skB, err := GeneratePrivateKeyBob(rnd)
	require.NoError(t, err)
	skC, err := GeneratePrivateKeyEve(rnd)
	require.NoError(t, err)

	pkC, err := KeyGenEve(skC)
	require.NoError(t, err)
	pkB, err := KeyGenBob(skB)
	require.NoError(t, err)
	pkA, err := KeyGenAlice(skA)
	require.NoError(t, err)

	sharedAB, err := SharedPublicBobFromAlice(skB, pkA)
	require.NoError(t, err)
	sharedBC, secretC, err := SharedSecretEveFromBob(skC, pkB, sharedAB)
	require.NoError(t, err)
	sharedAC, secretA, err := SharedSecretAliceFromEve(skA, pkC, sharedBC)
	require.NoError(t, err)
	secretB, err := SharedSecretBobFromAlice(skB, sharedAC)
	require.NoError(t, err)

	require.True(t, secretA.Equal(secretB))
	require.True(t, secretB.Equal(secretC))
}
