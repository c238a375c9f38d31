package crypto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadHex is returned for strings that are not 1 to 16 hex digits.
var ErrBadHex = errors.New("malformed hex value")

// Hex64 returns v as 16 lower-case, zero-padded hex digits.
func Hex64(v uint64) string { return fmt.Sprintf("%016x", v) }

// ParseHex64 parses up to 16 hex digits with an optional 0x prefix.
func ParseHex64(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" || len(s) > 16 {
		return 0, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	return v, nil
}
