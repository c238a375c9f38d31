package des

const (
	Mask32 = 1<<32 - 1
	Mask48 = 1<<48 - 1
	Mask56 = 1<<56 - 1

	// Rounds is the number of Feistel rounds applied by EncryptBlock.
	Rounds = 2
)

// Expand maps a 32-bit half-block to 48 bits as eight 6-bit groups. The first
// group takes bit 0 of r as its top bit and the last group takes bit 31 as its
// bottom bit.
func Expand(r uint32) uint64 {
	x := uint64(r)
	g1 := (x>>27)&0x1f | (x&1)<<5
	g2 := (x >> 23) & 0x3f
	g3 := (x >> 19) & 0x3f
	g4 := (x >> 15) & 0x3f
	g5 := (x >> 11) & 0x3f
	g6 := (x >> 7) & 0x3f
	g7 := (x >> 3) & 0x3f
	g8 := (x>>31)&1 | (x&0x1f)<<1
	return g1<<42 | g2<<36 | g3<<30 | g4<<24 | g5<<18 | g6<<12 | g7<<6 | g8
}

// Substitute runs the low 48 bits of v through the eight S-boxes, S-box 1 on
// the most significant group.
func Substitute(v uint64) uint32 {
	v &= Mask48
	var out uint32
	for i := 0; i < 8; i++ {
		group := (v >> (42 - 6*uint(i))) & 0x3f
		out = out<<4 | uint32(sboxes[i][group])
	}
	return out
}

// SubstituteBox looks up a single S-box. Only the low 6 bits of in are used.
// It panics if box is not in 1..8.
func SubstituteBox(box int, in uint8) uint8 {
	return sboxes[box-1][in&0x3f]
}

// Permute applies the P-box.
func Permute(v uint32) uint32 {
	var out uint32
	for i, p := range pbits {
		out |= ((v >> (32 - uint(p))) & 1) << (31 - uint(i))
	}
	return out
}

// Round is the modified Feistel function f(r, k). The subkey is masked to 48
// bits and its low 32 bits are XORed into the permuted output.
func Round(r uint32, subkey uint64) uint32 {
	subkey &= Mask48
	return Permute(Substitute(Expand(r)^subkey)) ^ uint32(subkey&Mask32)
}

// DeriveSubkeys returns the two round subkeys for a 56-bit master key.
func DeriveSubkeys(key uint64) (k1, k2 uint64) {
	key &= Mask56
	return key & Mask48, (key >> 8) & Mask48
}

// EncryptBlock encrypts one 64-bit block under a 56-bit key.
func EncryptBlock(key, block uint64) uint64 {
	k1, k2 := DeriveSubkeys(key)
	l0, r0 := uint32(block>>32), uint32(block&Mask32)

	l1, r1 := r0, l0^Round(r0, k1)
	l2, r2 := r1, l1^Round(r1, k2)

	return uint64(l2)<<32 | uint64(r2)
}
