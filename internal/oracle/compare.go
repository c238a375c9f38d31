package oracle

import (
	"context"
	"fmt"

	"twodes/internal/crypto"
	"twodes/internal/domain"
)

// Compare encrypts every plaintext with want and got and returns the blocks on
// which they differ. It stops at the first oracle error.
func Compare(ctx context.Context, want, got domain.Oracle, plaintexts []uint64) ([]domain.Mismatch, error) {
	var out []domain.Mismatch
	for _, p := range plaintexts {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		w, err := want.Encrypt(ctx, p)
		if err != nil {
			return out, fmt.Errorf("reference oracle on %s: %w", crypto.Hex64(p), err)
		}
		g, err := got.Encrypt(ctx, p)
		if err != nil {
			return out, fmt.Errorf("oracle under test on %s: %w", crypto.Hex64(p), err)
		}
		if w != g {
			out = append(out, domain.Mismatch{Plaintext: p, Want: w, Got: g})
		}
	}
	return out, nil
}
