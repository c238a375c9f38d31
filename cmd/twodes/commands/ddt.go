package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"twodes/internal/analysis"
)

func ddtCmd() *cobra.Command {
	var (
		top  int
		full bool
	)
	cmd := &cobra.Command{
		Use:   "ddt <s-box 1..8>",
		Short: "Print the differential distribution table of an S-box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("s-box number %q: %w", args[0], err)
			}
			t, err := analysis.Distribution(box)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if full {
				fmt.Fprint(out, "dIn ")
				for dOut := 0; dOut < analysis.Outputs; dOut++ {
					fmt.Fprintf(out, "%3x", dOut)
				}
				fmt.Fprintln(out)
				for dIn, row := range t.Counts {
					fmt.Fprintf(out, " %02x ", dIn)
					for _, c := range row {
						fmt.Fprintf(out, "%3d", c)
					}
					fmt.Fprintln(out)
				}
				return nil
			}

			fmt.Fprintf(out, "S%d  dIn  dOut  count  p\n", box)
			for _, d := range t.Top(top) {
				fmt.Fprintf(out, "    %02x   %x     %2d     %d/64\n", d.In, d.Out, d.Count, d.Count)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of strongest differentials to list (0 = all)")
	cmd.Flags().BoolVar(&full, "full", false, "print the whole 64x16 table")
	return cmd
}
