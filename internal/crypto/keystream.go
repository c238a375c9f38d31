package crypto

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// Stream yields pseudo-random 64-bit values from ChaCha20 keyed by a seed.
// The same seed always yields the same sequence.
type Stream struct {
	c   *chacha20.Cipher
	buf [8]byte
}

// NewStream returns a Stream for seed.
func NewStream(seed uint64) *Stream {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	binary.BigEndian.PutUint64(key[:8], seed)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// Only reachable with wrong key or nonce sizes.
		panic(err)
	}
	return &Stream{c: c}
}

// Uint64 returns the next value in the stream.
func (s *Stream) Uint64() uint64 {
	var zero [8]byte
	s.c.XORKeyStream(s.buf[:], zero[:])
	return binary.BigEndian.Uint64(s.buf[:])
}
