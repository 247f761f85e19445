package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgroup/group"
	"github.com/katalvlaran/lvlgroup/hom"
)

// newWitnessCmd builds the witness subcommand: the classic Z8 → Z4 mod-4
// walkthrough — a surjective, non-injective homomorphism, its kernel, and
// the induced isomorphism from kernel-cosets onto the image.
func newWitnessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "witness",
		Short: "Walk through the Z8 → Z4 mod-4 witness report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			z8, err := group.Cyclic(8)
			if err != nil {
				return err
			}
			z4, err := group.Cyclic(4)
			if err != nil {
				return err
			}
			f, err := hom.FromFunc(z8, z4, func(n int) int { return n % 4 })
			if err != nil {
				return err
			}

			w, err := hom.Verify(f, nil)
			if err != nil {
				return err
			}

			cmd.Println("f: Z8 → Z4, n ↦ n mod 4")
			cmd.Print(renderTable([]string{"Law", "Holds"}, [][]string{
				{"homomorphism", strconv.FormatBool(w.Homomorphism)},
				{"injective", strconv.FormatBool(w.Injective)},
				{"surjective", strconv.FormatBool(w.Surjective)},
				{"isomorphism", strconv.FormatBool(w.Isomorphism)},
			}))
			if w.Failure != "" {
				cmd.Println("first failure:", w.Failure)
			}

			ker := f.Kernel()
			cmd.Printf("kernel: %v\n", ker)

			q, cosets, err := group.Quotient(z8, ker)
			if err != nil {
				return err
			}
			induced := make([]int, q.Order())
			for ci := 0; ci < q.Order(); ci++ {
				induced[ci] = f.Apply(cosets.Representative(ci))
			}
			fBar, err := hom.New(q, z4, induced)
			if err != nil {
				return err
			}
			wBar, err := hom.Verify(fBar, nil)
			if err != nil {
				return err
			}
			cmd.Printf("induced map on %d cosets is an isomorphism: %v\n", cosets.Count(), wBar.Isomorphism)

			rep := hom.TryInverse(f)
			cmd.Printf("direct inverse construction: %s\n", describeInverse(rep))

			return nil
		},
	}
}

// describeInverse renders an InverseReport outcome for the demo.
func describeInverse(rep hom.InverseReport) string {
	if rep.Found {
		return fmt.Sprintf("found %v", rep.Inverse.Map)
	}
	if rep.Reason == hom.NotInjective {
		return fmt.Sprintf("none (%s: %d and %d collide on %d)",
			rep.Reason, rep.CollisionA, rep.CollisionB, rep.CollisionImage)
	}
	if rep.Reason == hom.NotSurjective {
		return fmt.Sprintf("none (%s: %d has no preimage)", rep.Reason, rep.Missing)
	}

	return fmt.Sprintf("none (%s)", rep.Reason)
}
