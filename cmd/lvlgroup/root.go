package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgroup/group"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lvlgroup",
		Short: "Canonicalize small finite groups and certify isomorphisms",
		Long: `lvlgroup canonicalizes small finite groups (multiplication tables over
an explicit carrier) and decides, constructively, whether two of them are
isomorphic — exhibiting the isomorphism as a checkable witness when they
are.

Carriers are capped at 9 elements: every answer comes from an exhaustive
factorial-time search, verified law by law.`,
	}
	cmd.AddCommand(newClassifyCmd(), newAutCmd(), newWitnessCmd())

	return cmd
}

// renderTable writes header+rows through tablewriter into a string.
func renderTable(header []string, rows [][]string) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()

	return buf.String()
}

// parseGroupArg turns a CLI argument into a stock group: a number N means
// the cyclic group ZN, "klein4" the Klein four-group, and "zAxB" the
// product ZA×ZB.
func parseGroupArg(arg string) (*group.Group, string, error) {
	lower := strings.ToLower(arg)
	if lower == "klein4" {
		return group.Klein4(), "Klein4", nil
	}
	if a, b, ok := strings.Cut(strings.TrimPrefix(lower, "z"), "x"); ok {
		na, errA := strconv.Atoi(a)
		nb, errB := strconv.Atoi(strings.TrimPrefix(b, "z"))
		if errA != nil || errB != nil {
			return nil, "", fmt.Errorf("cannot parse product %q", arg)
		}
		ga, err := group.Cyclic(na)
		if err != nil {
			return nil, "", err
		}
		gb, err := group.Cyclic(nb)
		if err != nil {
			return nil, "", err
		}

		return group.Product(ga, gb), fmt.Sprintf("Z%d×Z%d", na, nb), nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(lower, "z"))
	if err != nil {
		return nil, "", fmt.Errorf("unknown group %q: want a number, zN, zAxB, or klein4", arg)
	}
	g, err := group.Cyclic(n)
	if err != nil {
		return nil, "", err
	}

	return g, fmt.Sprintf("Z%d", n), nil
}
