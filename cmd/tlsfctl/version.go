package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tlsfkit/tlsf"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "0.1.0"

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Long: `The version command prints the tlsfctl version, the revision it was built
from and the fingerprint of the default class table. Two builds reporting the
same fingerprint classify every size identically.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(args)
		},
	}
}

// VersionInfo is the output of the version command.
type VersionInfo struct {
	Version     string `json:"version"`
	Module      string `json:"module,omitempty"`
	Revision    string `json:"revision"`
	Modified    bool   `json:"modified"`
	GoVersion   string `json:"go_version"`
	Params      string `json:"params"`
	Fingerprint string `json:"fingerprint"`
}

func buildVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:     version,
		Revision:    "unknown",
		GoVersion:   runtime.Version(),
		Params:      tlsf.Default.String(),
		Fingerprint: fmt.Sprintf("%016x", tlsf.NewTable(tlsf.Default).Fingerprint()),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.Module = bi.Main.Path
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func runVersion(args []string) error {
	if err := checkArgs(args, 0, "tlsfctl version"); err != nil {
		return err
	}
	info := buildVersionInfo()

	if jsonOut {
		return printJSON(info)
	}

	revision := info.Revision
	if info.Modified {
		revision += " (modified)"
	}
	printInfo("tlsfctl %s\n", info.Version)
	printInfo("  revision: %s\n", revision)
	printInfo("  go: %s\n", info.GoVersion)
	printInfo("  %s\n", info.Params)
	printInfo("  fingerprint: %s\n", info.Fingerprint)
	return nil
}
