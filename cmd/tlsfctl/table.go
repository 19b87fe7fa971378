package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tlsfkit/tlsf"
)

var (
	tableFL int
)

func init() {
	cmd := newTableCmd()
	cmd.Flags().IntVar(&tableFL, "fl", -1, "Only list classes of this first-level bucket")
	rootCmd.AddCommand(cmd)
}

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "List every size class of a configuration",
		Long: `The table command enumerates the whole block-size domain and prints every
size class with its index and size span, followed by the class count and a
fingerprint that identifies the classification.

Example:
  tlsfctl table
  tlsfctl table --preset coarse --fl 3
  tlsfctl table --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(args)
		},
	}
	return cmd
}

// ClassJSON is one row of the table output.
type ClassJSON struct {
	FL  uint8  `json:"fl"`
	SL  uint8  `json:"sl"`
	Min uint16 `json:"min"`
	Max uint16 `json:"max"`
}

// TableJSON is the JSON form of the table output.
type TableJSON struct {
	Params      string      `json:"params"`
	NumClasses  int         `json:"num_classes"`
	Fingerprint string      `json:"fingerprint"`
	Classes     []ClassJSON `json:"classes"`
}

func runTable(args []string) error {
	if err := checkArgs(args, 0, "tlsfctl table"); err != nil {
		return err
	}
	p, err := resolveParams()
	if err != nil {
		return err
	}
	if tableFL >= int(p.FLI) {
		return fmt.Errorf("--fl %d out of range, configuration has %d first-level buckets", tableFL, p.FLI)
	}

	table := tlsf.NewTable(p)
	out := TableJSON{
		Params:      p.String(),
		NumClasses:  table.NumClasses(),
		Fingerprint: fmt.Sprintf("%016x", table.Fingerprint()),
	}
	for _, c := range table.Classes() {
		if tableFL >= 0 && int(c.Index.FL) != tableFL {
			continue
		}
		out.Classes = append(out.Classes, ClassJSON{FL: c.Index.FL, SL: c.Index.SL, Min: c.Min, Max: c.Max})
	}

	if jsonOut {
		return printJSON(out)
	}

	printInfo("%s\n\n", out.Params)
	printInfo("%-4s %-4s %-7s %s\n", "FL", "SL", "MIN", "MAX")
	for _, c := range out.Classes {
		printInfo("%-4d %-4d %-7d %d\n", c.FL, c.SL, c.Min, c.Max)
	}
	printInfo("\nClasses: %d\n", out.NumClasses)
	printInfo("Fingerprint: %s\n", out.Fingerprint)
	return nil
}
