package sigkp747

import "errors"

var (
	// ErrRNGFailure is returned when the configured entropy source fails to
	// fill a secret scalar.
	ErrRNGFailure = errors.New("sigkp747: random source failed")

	// ErrInvalidLength is returned when an encoded value does not match the
	// expected wire length for its type.
	ErrInvalidLength = errors.New("sigkp747: invalid encoded length")

	// ErrInvalidPublicKey is returned when a decoded public key, shared
	// public value or shared secret contains a coordinate that is not a
	// canonical residue mod p747.
	ErrInvalidPublicKey = errors.New("sigkp747: invalid public value encoding")
)
