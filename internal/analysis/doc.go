// Package analysis builds differential distribution tables for the S-boxes of
// internal/des.
//
// For S-box S and input difference dIn, entry [dIn][dOut] counts the inputs x
// in 0..63 for which S(x) ^ S(x^dIn) == dOut. Every row sums to 64 and row 0
// is concentrated in column 0. High non-trivial entries are the starting
// points for differential characteristics across a round.
package analysis
