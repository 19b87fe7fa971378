package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tlsfkit/internal/logger"
	"github.com/joshuapare/tlsfkit/tlsf"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	logLevel string

	// Configuration flags. Negative values mean "take from the preset".
	presetName string
	alignLog2  int
	sliLog2    int
	maxBlock   int
)

var rootCmd = &cobra.Command{
	Use:   "tlsfctl",
	Short: "Inspect TLSF size-class mappings",
	Long: `tlsfctl inspects the two-level size-class mapping of a TLSF allocator
configuration. It prints the index a block or request size maps to, dumps and
verifies the full class table, and exercises the alignment and word-copy
helpers the allocator relies on.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

func init() {
	rootCmd.Version = version

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")

	// Configuration
	rootCmd.PersistentFlags().
		StringVar(&presetName, "preset", tlsf.Default.Name, "Base configuration (coarse, default, fine)")
	rootCmd.PersistentFlags().
		IntVar(&alignLog2, "align-log2", -1, "Override log2 of the block alignment")
	rootCmd.PersistentFlags().
		IntVar(&sliLog2, "sli-log2", -1, "Override log2 of the second-level subdivision count")
	rootCmd.PersistentFlags().
		IntVar(&maxBlock, "max-block", -1, "Override the maximum block size")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("tlsfctl: command failed", "err", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// initLogging wires --log-level, then --verbose, then TLSF_LOG.
func initLogging() error {
	switch {
	case logLevel != "":
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger.Init(logger.Options{Enabled: true, Level: level})
	case verbose:
		logger.Init(logger.Options{Enabled: true, Level: slog.LevelDebug})
	default:
		return logger.FromEnv()
	}
	return nil
}

// resolveParams builds the configuration selected by the flags.
func resolveParams() (tlsf.Params, error) {
	base, err := tlsf.Preset(presetName)
	if err != nil {
		return tlsf.Params{}, err
	}
	if alignLog2 < 0 && sliLog2 < 0 && maxBlock < 0 {
		return base, nil
	}

	a, s, m := int(base.AlignSizeLog2), int(base.SLILog2), int(base.MaxBlockSize)
	if alignLog2 >= 0 {
		a = alignLog2
	}
	if sliLog2 >= 0 {
		s = sliLog2
	}
	if maxBlock >= 0 {
		m = maxBlock
	}
	if a > 255 || s > 255 || m > 0xFFFF {
		return tlsf.Params{}, fmt.Errorf("configuration out of range: align-log2=%d sli-log2=%d max-block=%d", a, s, m)
	}

	p, err := tlsf.NewParams(uint8(a), uint8(s), uint16(m))
	if err != nil {
		return tlsf.Params{}, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Debug("tlsfctl: custom params", "params", p.String())
	return p, nil
}

// parseSize parses a decimal or 0x-prefixed size in the 16-bit domain.
func parseSize(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return uint16(v), nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// checkArgs validates that the correct number of arguments were provided
func checkArgs(args []string, expected int, usage string) error {
	if len(args) != expected {
		return fmt.Errorf("expected %d argument(s), got %d\nUsage: %s", expected, len(args), usage)
	}
	return nil
}

// checkMinArgs validates that at least the minimum number of arguments were provided
func checkMinArgs(args []string, min int, usage string) error {
	if len(args) < min {
		return fmt.Errorf(
			"expected at least %d argument(s), got %d\nUsage: %s",
			min,
			len(args),
			usage,
		)
	}
	return nil
}
