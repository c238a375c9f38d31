package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"twodes/internal/oracle"
	"twodes/internal/vectors"
)

// verify: compare the oracle under test with the in-process cipher on the
// practical's test block plus n seeded plaintexts.
func verifyCmd() *cobra.Command {
	var (
		n    int
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check --oracle-bin or --oracle-url against the reference cipher",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return fmt.Errorf("--count must be >= 0")
			}
			if !appCtx.External {
				return fmt.Errorf("no oracle configured. use --oracle-bin or --oracle-url")
			}
			ctx, cancel := appCtx.Context(cmd.Context())
			defer cancel()

			plaintexts := append([]uint64{defaultPlain}, vectors.Plaintexts(seed, n)...)
			mm, err := oracle.Compare(ctx, appCtx.Reference, appCtx.Oracle, plaintexts)
			if err != nil {
				return err
			}
			return reportMismatches(cmd, len(plaintexts), mm)
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 100, "number of random plaintexts in addition to the test block")
	hexVar(cmd.Flags(), &seed, "seed", 1, "seed for the plaintext stream")
	return cmd
}
