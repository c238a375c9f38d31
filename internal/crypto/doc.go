// Package crypto holds the small helpers shared by the analysis tools.
//
// # Contents
//
//   - Fixed-width hex encoding for 56- and 64-bit values (Hex64, ParseHex64)
//   - A seeded ChaCha20 keystream for reproducible plaintext sampling (Stream)
//   - Short key fingerprints for logs (Fingerprint)
//
// # Notes
//
// Stream is deterministic by construction and must never be used to generate
// key material.
package crypto
