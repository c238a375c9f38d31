// Package vectors generates known plaintext/ciphertext corpora and stores them
// on disk.
//
// # Generation
//
// Plaintexts come from a ChaCha20 keystream keyed by a seed, so a corpus can be
// regenerated from (key, seed, n) alone. Generate uses the in-process cipher;
// Collect asks any domain.Oracle, e.g. an external binary with an unknown key.
//
// # Files
//
// The format is chosen from the file name:
//
//	*.json      indented JSON, values as 16-digit hex strings
//	otherwise   text: an optional "# key <hex>" line, then "<pt> <ct>" per line
//	*.lz4       the format of the inner name, wrapped in an LZ4 frame
//
// Writes go to a temp file in the same directory and are renamed into place.
package vectors
