package interfaces

import "context"

// Oracle encrypts single blocks under a key it holds. Implementations may be
// in-process, an external program or a remote service.
type Oracle interface {
	Encrypt(ctx context.Context, plaintext uint64) (uint64, error)
}
