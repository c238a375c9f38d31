// Package des implements a reduced, modified two-round DES used as a target for
// cryptanalysis practicals.
//
// # Overview
//
// A 64-bit block is split into halves L (high) and R (low) and run through two
// Feistel rounds. Each round computes
//
//	f(R, K) = P(S(E(R) ^ K)) ^ (K & 0xFFFFFFFF)
//
// where E is a 32->48 bit expansion, S the eight 6->4 bit S-boxes and P the
// 32-bit permutation. The trailing XOR with the low 32 bits of the subkey is the
// "modified" part: it whitens every round output and makes the round function
// incompatible with standard DES.
//
// # Key schedule
//
// The two 48-bit subkeys are views of the same 56-bit master key:
//
//	K1 = K & MASK48
//	K2 = (K >> 8) & MASK48
//
// They share 40 bits. There are no PC-1/PC-2 tables and no rotations. This is
// deliberately weak and must not be "fixed".
//
// # Differences from DES
//
//   - No initial or final permutation.
//   - E uses its own bit ordering and the S-box tables are stored in the order
//     they are indexed here, not in the order printed in FIPS 46.
//   - No final half swap: the ciphertext is L2<<32 | R2.
//   - There is no decryption routine.
//
// # Inputs
//
// Nothing in this package returns an error; only an S-box number outside 1..8
// panics. Values wider than their nominal width are masked, never rejected:
// keys to 56 bits, subkeys and S-box layer inputs to 48 bits. All functions are
// pure and safe for concurrent use.
package des
