package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgroup/aut"
)

// newAutCmd builds the aut subcommand: enumerate Aut(G) for a stock group
// and print every verified forward map.
func newAutCmd() *cobra.Command {
	var parallelism int

	cmd := &cobra.Command{
		Use:   "aut <group>",
		Short: "Enumerate the automorphism group of a stock group",
		Long: `Aut runs the exhaustive permutation search over the given group's
carrier and prints each verified automorphism as its forward map. Try
"aut z5" (4 automorphisms) or "aut klein4" (6 automorphisms).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, label, err := parseGroupArg(args[0])
			if err != nil {
				return err
			}

			opts := aut.Options{Parallelism: parallelism}
			auts, err := aut.IsomorphismsOpt(g, g, &opts)
			if err != nil {
				return err
			}

			cmd.Printf("|Aut(%s)| = %d\n", label, len(auts))
			rows := make([][]string, 0, len(auts))
			for i, a := range auts {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i),
					fmt.Sprintf("%v", a.Fwd.Map),
					fmt.Sprintf("%v", a.Bwd.Map),
				})
			}
			cmd.Print(renderTable([]string{"#", "Forward map", "Backward map"}, rows))

			return nil
		},
	}
	cmd.Flags().IntVarP(&parallelism, "parallelism", "p", 1, "number of search workers")

	return cmd
}
