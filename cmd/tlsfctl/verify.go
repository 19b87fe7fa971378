package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tlsfkit/internal/logger"
	"github.com/joshuapare/tlsfkit/tlsf"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the mapping invariants over the whole size domain",
		Long: `The verify command maps every aligned size of the configuration and checks
index bounds, the linear region, monotonicity and the good-fit guarantee of
the search mapping. It exits non-zero if any invariant is violated.

Example:
  tlsfctl verify
  tlsfctl verify --align-log2 3 --sli-log2 5
  tlsfctl verify --preset fine --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

// errVerifyFailed is returned after the violations have been printed.
var errVerifyFailed = errors.New("verification failed")

func runVerify(args []string) error {
	if err := checkArgs(args, 0, "tlsfctl verify"); err != nil {
		return err
	}
	p, err := resolveParams()
	if err != nil {
		return err
	}

	verr := tlsf.Verify(p)
	var violations []string
	if verr != nil {
		violations = strings.Split(verr.Error(), "\n")
	}

	if jsonOut {
		if err := printJSON(map[string]interface{}{
			"params":     p.String(),
			"ok":         verr == nil,
			"violations": violations,
		}); err != nil {
			return err
		}
	} else if verr == nil {
		printInfo("OK: %s\n", p)
	} else {
		printInfo("FAIL: %s\n", p)
		for _, v := range violations {
			printInfo("  %s\n", v)
		}
	}

	if verr != nil {
		logger.Warn("tlsfctl: verification failed", "params", p.String(), "violations", len(violations))
		return fmt.Errorf("%w: %d violation line(s)", errVerifyFailed, len(violations))
	}
	return nil
}
