package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tlsfkit/mem"
)

func init() {
	rootCmd.AddCommand(newRoundCmd())
}

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round <x> <multiple>",
		Short: "Round a value down and up to a multiple",
		Long: `The round command shows the alignment arithmetic applied to sizes before
classification.

Example:
  tlsfctl round 13 4
  tlsfctl round 0x1001 0x1000 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRound(args)
		},
	}
	return cmd
}

// RoundResult is the output of the round command.
type RoundResult struct {
	X         uint64 `json:"x"`
	Multiple  uint64 `json:"multiple"`
	Down      uint64 `json:"down"`
	Up        uint64 `json:"up"`
	Remainder uint64 `json:"remainder"`
}

func runRound(args []string) error {
	if err := checkArgs(args, 2, "tlsfctl round <x> <multiple>"); err != nil {
		return err
	}
	x, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	m, err := strconv.ParseUint(args[1], 0, 64)
	if err != nil {
		return fmt.Errorf("invalid multiple %q: %w", args[1], err)
	}
	if m == 0 {
		return fmt.Errorf("multiple must be non-zero")
	}

	up, rem := mem.RoundUp(x, m)
	if up < x {
		return fmt.Errorf("rounding %d up to a multiple of %d overflows", x, m)
	}
	r := RoundResult{X: x, Multiple: m, Down: mem.RoundDown(x, m), Up: up, Remainder: rem}

	if jsonOut {
		return printJSON(r)
	}
	printInfo("round_down(%d, %d) = %d\n", r.X, r.Multiple, r.Down)
	printInfo("round_up(%d, %d)   = (%d, %d)\n", r.X, r.Multiple, r.Up, r.Remainder)
	return nil
}
