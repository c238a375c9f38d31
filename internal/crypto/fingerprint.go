package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Fingerprint returns a short hex fingerprint of a master key so logs can
// identify which key is in use without printing it.
//
// It hashes the 8-byte big-endian key with SHA-256 and truncates to 10 bytes
// (20 hex chars).
func Fingerprint(key uint64) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], key)
	sum := sha256.Sum256(b[:])
	return hex.EncodeToString(sum[:10])
}
