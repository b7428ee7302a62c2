// Package drbg implements a minimal HMAC-SHA256 deterministic generator
// used by tests that need reproducible key-generation output, in place
// of an entropy source.
package drbg

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"
)

// expand is the domain-separation tag mixed into every block, following
// the same 2-byte customization-string convention used elsewhere for
// HMAC-SHA256 domain separation.
var expand = []byte{0x03, 0x00}

type reader struct {
	seed    []byte
	counter uint32
	buf     []byte
}

// New returns an io.Reader that produces an unbounded deterministic
// byte stream derived from seed: block i is HMAC-SHA256(seed, expand ||
// be32(i)). It is not a cryptographically sound DRBG (no reseeding, no
// security-strength accounting) and must only be used to build
// known-answer test vectors, never to generate a real secret key.
func New(seed []byte) io.Reader {
	return &reader{seed: append([]byte(nil), seed...)}
}

func (r *reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.buf) == 0 {
			r.buf = r.nextBlock()
		}
		c := copy(p[n:], r.buf)
		r.buf = r.buf[c:]
		n += c
	}
	return n, nil
}

func (r *reader) nextBlock() []byte {
	h := hmac.New(sha256.New, r.seed)
	h.Write(expand)
	var be [4]byte
	binary.BigEndian.PutUint32(be[:], r.counter)
	h.Write(be[:])
	r.counter++
	return h.Sum(nil)
}
