// Package main runs a chosen-plaintext encryption oracle over HTTP. It holds a
// secret 56-bit key and encrypts any block a client asks for, which is the
// setting of the differential and brute-force exercises.
//
// # HTTP API
//
//	GET /encrypt/{plaintext}
//	    Encrypt one hex block. Responds with
//	    {"plaintext": "<16 hex>", "ciphertext": "<16 hex>"}.
//
// # Configuration
//
//   - ORACLE_KEY or --key   secret key in hex (default 33333333333333)
//   - ORACLE_ADDR or --addr listen address (default :8080)
//
// # Behaviour
//
//   - The key is never logged; a short fingerprint identifies it instead.
//   - A lightweight access log records method, path, remote, status and
//     duration for each request.
//   - SIGINT and SIGTERM trigger a graceful shutdown.
package main
