package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"twodes/internal/crypto"
	"twodes/internal/domain"
	"twodes/internal/vectors"
)

func vectorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Generate or check plaintext/ciphertext corpora",
	}
	cmd.AddCommand(vectorsGenCmd(), vectorsCheckCmd())
	return cmd
}

// vectors gen: write n seeded pairs. With an external oracle the pairs come
// from it and the key is not recorded.
func vectorsGenCmd() *cobra.Command {
	var (
		n    int
		seed uint64
		path string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a corpus of known plaintext/ciphertext pairs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return fmt.Errorf("--count must be >= 0")
			}
			var c domain.Corpus
			if appCtx.External {
				ctx, cancel := appCtx.Context(cmd.Context())
				defer cancel()
				var err error
				if c, err = vectors.Collect(ctx, appCtx.Oracle, seed, n); err != nil {
					return err
				}
			} else {
				c = vectors.Generate(appCtx.Key(), seed, n)
			}

			if path == "" {
				for _, v := range c.Vectors {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", crypto.Hex64(v.Plaintext), crypto.Hex64(v.Ciphertext))
				}
				return nil
			}
			if err := vectors.Save(path, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d vectors to %s\n", len(c.Vectors), path)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 1000, "number of pairs")
	hexVar(cmd.Flags(), &seed, "seed", 0, "seed for the plaintext stream")
	cmd.Flags().StringVarP(&path, "out", "o", "", "output file (.txt, .json, optional .lz4); stdout if empty")
	return cmd
}

func vectorsCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Replay a corpus against the configured oracle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := vectors.Load(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := appCtx.Context(cmd.Context())
			defer cancel()

			mm, err := vectors.Check(ctx, appCtx.Oracle, c)
			if err != nil {
				return err
			}
			return reportMismatches(cmd, len(c.Vectors), mm)
		},
	}
}

func reportMismatches(cmd *cobra.Command, total int, mm []domain.Mismatch) error {
	out := cmd.OutOrStdout()
	for _, m := range mm {
		fmt.Fprintf(out, "MISMATCH %s: want %s got %s\n", crypto.Hex64(m.Plaintext), crypto.Hex64(m.Want), crypto.Hex64(m.Got))
	}
	if len(mm) > 0 {
		return fmt.Errorf("%d of %d blocks disagree", len(mm), total)
	}
	fmt.Fprintf(out, "%d blocks agree\n", total)
	return nil
}
