// Package oracle provides interchangeable encryption oracles for
// cross-checking the cipher and for chosen-plaintext experiments.
//
// # Implementations
//
//   - Reference  in-process, backed by internal/des
//   - Exec       an external program run as `<path> <hex plaintext>` that
//     prints the hex ciphertext on its first output line
//   - HTTP       a client for the service exposed by NewHandler
//
// # HTTP API
//
//	GET /encrypt/{plaintext}
//	    Encrypt one block given as hex. Responds with
//	    {"plaintext": "<16 hex>", "ciphertext": "<16 hex>"}.
//	    Malformed hex yields 400.
//
// Compare runs two oracles over the same plaintexts and reports every block on
// which they disagree.
package oracle
