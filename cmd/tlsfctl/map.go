package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/tlsfkit/mem"
	"github.com/joshuapare/tlsfkit/tlsf"
)

var (
	mapSearchOnly bool
)

func init() {
	cmd := newMapCmd()
	cmd.Flags().BoolVar(&mapSearchOnly, "search-only", false, "Only show the search mapping")
	rootCmd.AddCommand(cmd)
}

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map <size>...",
		Short: "Show the free-list index of one or more sizes",
		Long: `The map command prints the insert index (where a free block of that size is
linked) and the search index (the first list probed for a request of that size).
Sizes are rounded up to the configured alignment first.

Example:
  tlsfctl map 32 256 300
  tlsfctl map 0x1000 --preset fine
  tlsfctl map 500 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(args)
		},
	}
	return cmd
}

// MapResult is the mapping of one requested size.
type MapResult struct {
	Size    uint16      `json:"size"`
	Aligned uint32      `json:"aligned"`
	Insert  *IndexJSON  `json:"insert,omitempty"`
	Search  *IndexJSON  `json:"search,omitempty"`
	Class   *ClassRange `json:"search_class,omitempty"`
}

// IndexJSON is the JSON form of tlsf.Index.
type IndexJSON struct {
	FL uint8 `json:"fl"`
	SL uint8 `json:"sl"`
}

// ClassRange is the size span of one class.
type ClassRange struct {
	Min uint16 `json:"min"`
	Max uint16 `json:"max"`
}

func indexJSON(idx tlsf.Index) *IndexJSON {
	return &IndexJSON{FL: idx.FL, SL: idx.SL}
}

func runMap(args []string) error {
	if err := checkMinArgs(args, 1, "tlsfctl map <size>..."); err != nil {
		return err
	}
	p, err := resolveParams()
	if err != nil {
		return err
	}

	results := make([]MapResult, 0, len(args))
	for _, arg := range args {
		size, err := parseSize(arg)
		if err != nil {
			return err
		}
		results = append(results, mapOne(p, size))
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"params":  p.String(),
			"results": results,
		})
	}

	printVerbose("%s\n", p)
	if mapSearchOnly {
		printInfo("%-8s %-8s %-14s %s\n", "SIZE", "ALIGNED", "SEARCH", "CLASS")
	} else {
		printInfo("%-8s %-8s %-14s %-14s %s\n", "SIZE", "ALIGNED", "INSERT", "SEARCH", "CLASS")
	}
	for _, r := range results {
		search, class := "-", "-"
		if r.Search != nil {
			search = fmt.Sprintf("fl=%d sl=%d", r.Search.FL, r.Search.SL)
			class = fmt.Sprintf("%d-%d", r.Class.Min, r.Class.Max)
		}
		if mapSearchOnly {
			printInfo("%-8d %-8d %-14s %s\n", r.Size, r.Aligned, search, class)
			continue
		}
		insert := "-"
		if r.Insert != nil {
			insert = fmt.Sprintf("fl=%d sl=%d", r.Insert.FL, r.Insert.SL)
		}
		printInfo("%-8d %-8d %-14s %-14s %s\n", r.Size, r.Aligned, insert, search, class)
	}
	return nil
}

func mapOne(p tlsf.Params, size uint16) MapResult {
	r := MapResult{Size: size}

	// uint32 so sizes near 0xFFFF can round past the 16-bit domain
	r.Aligned, _ = mem.RoundUp(uint32(size), uint32(p.AlignSize))
	if r.Aligned > uint32(p.MaxBlockSize) {
		return r
	}
	aligned := uint16(r.Aligned)

	if !mapSearchOnly {
		r.Insert = indexJSON(p.MappingInsert(aligned))
	}
	if aligned <= p.MaxRequestSize {
		idx := p.MappingSearch(aligned)
		r.Search = indexJSON(idx)
		r.Class = &ClassRange{Min: p.MinSize(idx), Max: p.MaxSize(idx)}
	}
	return r
}
