package vectors

import (
	"context"
	"fmt"

	"twodes/internal/crypto"
	"twodes/internal/des"
	"twodes/internal/domain"
)

// Plaintexts returns the first n values of the stream for seed. n < 0 is
// treated as 0.
func Plaintexts(seed uint64, n int) []uint64 {
	if n < 0 {
		n = 0
	}
	s := crypto.NewStream(seed)
	out := make([]uint64, n)
	for i := range out {
		out[i] = s.Uint64()
	}
	return out
}

// Generate encrypts n seeded plaintexts under key.
func Generate(key, seed uint64, n int) domain.Corpus {
	plaintexts := Plaintexts(seed, n)
	c := domain.Corpus{Key: key & des.Mask56, Vectors: make([]domain.Vector, len(plaintexts))}
	for i, p := range plaintexts {
		c.Vectors[i] = domain.Vector{Plaintext: p, Ciphertext: des.EncryptBlock(key, p)}
	}
	return c
}

// Collect asks o for the ciphertexts of n seeded plaintexts. The returned
// corpus has no key.
func Collect(ctx context.Context, o domain.Oracle, seed uint64, n int) (domain.Corpus, error) {
	plaintexts := Plaintexts(seed, n)
	c := domain.Corpus{Vectors: make([]domain.Vector, 0, len(plaintexts))}
	for _, p := range plaintexts {
		ct, err := o.Encrypt(ctx, p)
		if err != nil {
			return c, fmt.Errorf("collect %s: %w", crypto.Hex64(p), err)
		}
		c.Vectors = append(c.Vectors, domain.Vector{Plaintext: p, Ciphertext: ct})
	}
	return c, nil
}

// Check replays every vector in c against o and returns the disagreements.
func Check(ctx context.Context, o domain.Oracle, c domain.Corpus) ([]domain.Mismatch, error) {
	var out []domain.Mismatch
	for _, v := range c.Vectors {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		got, err := o.Encrypt(ctx, v.Plaintext)
		if err != nil {
			return out, fmt.Errorf("check %s: %w", crypto.Hex64(v.Plaintext), err)
		}
		if got != v.Ciphertext {
			out = append(out, domain.Mismatch{Plaintext: v.Plaintext, Want: v.Ciphertext, Got: got})
		}
	}
	return out, nil
}
