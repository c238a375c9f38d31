package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"twodes/internal/crypto"
)

// encrypt <hex>...: encrypt each block with the configured oracle.
func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <hex plaintext>...",
		Short: "Encrypt 64-bit blocks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := parseBlocks(args)
			if err != nil {
				return err
			}
			ctx, cancel := appCtx.Context(cmd.Context())
			defer cancel()

			for _, p := range blocks {
				c, err := appCtx.Oracle.Encrypt(ctx, p)
				if err != nil {
					return fmt.Errorf("encrypting %s: %w", crypto.Hex64(p), err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", crypto.Hex64(p), crypto.Hex64(c))
			}
			return nil
		},
	}
}
