package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/slothcoder21/ecs163-25s/src/dataset"
	"github.com/slothcoder21/ecs163-25s/src/logging"
)

// statcsv prints a quick census of a stats CSV: row counts, the type domain
// in palette order and per-dimension extents. Handy for sanity-checking a
// file before opening it in the viewer.
func main() {
	var file string
	var logLevel string
	var typeFilter string
	flag.StringVar(&file, "file", "data/pokemon_alopez247.csv", "Path to the stats CSV file")
	flag.StringVar(&logLevel, "loglevel", "warn", "Log level: debug, info, warn, error")
	flag.StringVar(&typeFilter, "type", "", "Optional primary-type filter (exact match)")
	flag.Parse()
	logging.SetLevel(logLevel)

	records, err := dataset.LoadSource(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if typeFilter != "" {
		filtered := records[:0]
		for _, r := range records {
			if r.PrimaryType == typeFilter {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	summary := dataset.Summarize(records)
	fmt.Printf("Total records: %d (legendary: %d)\n", summary.Rows, summary.Legendary)

	counts := map[string]int{}
	for _, r := range records {
		counts[r.PrimaryType]++
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Printf("%s: %d\n", t, counts[t])
	}

	fmt.Println()
	for d := 0; d < dataset.NumStats; d++ {
		ext := summary.Stats[d]
		fmt.Printf("%-8s min=%.0f max=%.0f mean=%.1f (n=%d)\n",
			dataset.DimensionNames[d], ext.Min, ext.Max, ext.Mean, ext.Count)
	}
}
