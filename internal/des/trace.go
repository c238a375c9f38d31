package des

// RoundState records one Feistel round: the halves entering it, the subkey
// used and the round function output.
type RoundState struct {
	L, R   uint32
	Subkey uint64
	F      uint32
}

// Trace is the full intermediate state of one EncryptBlock call.
type Trace struct {
	Key       uint64
	Plaintext uint64
	Rounds    [Rounds]RoundState
	// Final halves, concatenated without a swap.
	L, R uint32
}

// Ciphertext returns the block EncryptBlock would produce for the same inputs.
func (t Trace) Ciphertext() uint64 { return uint64(t.L)<<32 | uint64(t.R) }

// EncryptTrace encrypts block like EncryptBlock and keeps every intermediate.
func EncryptTrace(key, block uint64) Trace {
	k1, k2 := DeriveSubkeys(key)
	t := Trace{Key: key & Mask56, Plaintext: block}

	l, r := uint32(block>>32), uint32(block&Mask32)
	for i, k := range [Rounds]uint64{k1, k2} {
		f := Round(r, k)
		t.Rounds[i] = RoundState{L: l, R: r, Subkey: k, F: f}
		l, r = r, l^f
	}
	t.L, t.R = l, r
	return t
}
