package commands

import (
	"github.com/spf13/pflag"

	"twodes/internal/crypto"
)

// hexValue is a uint64 flag written and parsed as hex.
type hexValue uint64

var _ pflag.Value = (*hexValue)(nil)

func (h *hexValue) String() string { return "0x" + crypto.Hex64(uint64(*h)) }

func (h *hexValue) Set(s string) error {
	v, err := crypto.ParseHex64(s)
	if err != nil {
		return err
	}
	*h = hexValue(v)
	return nil
}

func (h *hexValue) Type() string { return "hex" }

// hexVar defines a hex flag on fs bound to p with default value.
func hexVar(fs *pflag.FlagSet, p *uint64, name string, value uint64, usage string) {
	*p = value
	fs.Var((*hexValue)(p), name, usage)
}

// parseBlocks parses hex block arguments.
func parseBlocks(args []string) ([]uint64, error) {
	out := make([]uint64, len(args))
	for i, a := range args {
		v, err := crypto.ParseHex64(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
