package types

// Vector is one known plaintext/ciphertext pair.
type Vector struct {
	Plaintext  uint64 `json:"plaintext"`
	Ciphertext uint64 `json:"ciphertext"`
}

// Corpus is a set of vectors produced under a single key. Key is zero when the
// producer does not disclose it (e.g. an external oracle).
type Corpus struct {
	Key     uint64   `json:"key"`
	Vectors []Vector `json:"vectors"`
}

// Mismatch records a plaintext on which two encryption sources disagree.
type Mismatch struct {
	Plaintext uint64
	Want      uint64
	Got       uint64
}
