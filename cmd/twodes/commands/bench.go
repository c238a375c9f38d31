package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"twodes/internal/bench"
	"twodes/internal/crypto"
	"twodes/internal/des"
	"twodes/internal/estimate"
)

// bench: encrypt the practical's test block, time n encryptions and project
// the cost of searching the whole key space.
func benchCmd() *cobra.Command {
	var (
		n     int
		bits  uint
		plain uint64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time repeated encryptions and estimate brute-force cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			k := appCtx.Key()
			fmt.Fprintf(out, "c: 0x%s\n", crypto.Hex64(des.EncryptBlock(k, plain)))

			res := bench.Encrypt(k, plain, n)
			fmt.Fprintf(out, "Time for %d iterations: %dns (%v per call)\n", res.N, res.Total.Nanoseconds(), res.PerCall)

			e := estimate.FromBatch(res.Total, res.N, bits)
			fmt.Fprintf(out, "Time for 2^%d iterations: %s years (expected %s years)\n", bits, e.Years(), e.Expected().Years())
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "iterations", "n", 1000, "number of encryptions to time")
	cmd.Flags().UintVar(&bits, "bits", 56, "key-space size in bits")
	hexVar(cmd.Flags(), &plain, "plaintext", defaultPlain, "block to encrypt")
	return cmd
}
