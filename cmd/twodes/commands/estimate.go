package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"twodes/internal/estimate"
)

func estimateCmd() *cobra.Command {
	var (
		perCall time.Duration
		batch   time.Duration
		n       int
		bits    uint
	)
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Project exhaustive key search time from a measured cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			var e estimate.Estimate
			switch {
			case perCall > 0 && batch > 0:
				return fmt.Errorf("use either --per-call or --batch")
			case perCall > 0:
				e = estimate.BruteForce(perCall, bits)
			case batch > 0:
				e = estimate.FromBatch(batch, n, bits)
			default:
				return fmt.Errorf("--per-call or --batch required")
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "worst case: %s\n", e)
			fmt.Fprintf(out, "expected:   %s\n", e.Expected())
			return nil
		},
	}
	cmd.Flags().DurationVar(&perCall, "per-call", 0, "cost of one encryption (e.g. 150ns)")
	cmd.Flags().DurationVar(&batch, "batch", 0, "time measured for a batch of -n encryptions")
	cmd.Flags().IntVarP(&n, "iterations", "n", 1000, "batch size for --batch")
	cmd.Flags().UintVar(&bits, "bits", 56, "key-space size in bits")
	return cmd
}
