package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"twodes/internal/crypto"
	"twodes/internal/des"
)

func traceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace [hex plaintext]",
		Short: "Show the halves, subkeys and round outputs of one encryption",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := uint64(defaultPlain)
			if len(args) == 1 {
				blocks, err := parseBlocks(args)
				if err != nil {
					return err
				}
				p = blocks[0]
			}

			tr := des.EncryptTrace(appCtx.Key(), p)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "key        %014x\n", tr.Key)
			fmt.Fprintf(out, "plaintext  %s\n", crypto.Hex64(tr.Plaintext))
			for i, r := range tr.Rounds {
				fmt.Fprintf(out, "round %d    L=%08x R=%08x K=%012x f=%08x\n", i+1, r.L, r.R, r.Subkey, r.F)
			}
			fmt.Fprintf(out, "output     L=%08x R=%08x\n", tr.L, tr.R)
			fmt.Fprintf(out, "ciphertext %s\n", crypto.Hex64(tr.Ciphertext()))
			return nil
		},
	}
}
