package commands

import (
	"time"

	"github.com/spf13/cobra"

	"twodes/internal/app"
)

// Defaults from the original practical.
const (
	defaultKey   = 0x33333333333333
	defaultPlain = 0x1234567887654321
)

var (
	key       uint64
	oracleBin string
	oracleURL string
	timeout   time.Duration
	appCtx    *app.App
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "twodes",
		Short:         "Two-round modified DES and cryptanalysis helpers",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(app.Config{
				Key:       key,
				OracleBin: oracleBin,
				OracleURL: oracleURL,
				Timeout:   timeout,
			})
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	pf := root.PersistentFlags()
	hexVar(pf, &key, "key", defaultKey, "56-bit master key in hex")
	pf.StringVar(&oracleBin, "oracle-bin", "", "external encrypt program (called as <bin> <hex plaintext>)")
	pf.StringVar(&oracleURL, "oracle-url", "", "oracle service base URL (e.g. http://127.0.0.1:8080)")
	pf.DurationVar(&timeout, "timeout", 0, "overall deadline for oracle calls (0 = none)")

	root.AddCommand(
		encryptCmd(),
		traceCmd(),
		benchCmd(),
		estimateCmd(),
		ddtCmd(),
		vectorsCmd(),
		verifyCmd(),
	)
	return root
}
