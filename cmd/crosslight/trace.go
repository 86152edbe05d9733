package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/signalworks/crosslight/datarecording"
	"github.com/signalworks/crosslight/tracing"
)

var traceFlags struct {
	db     string
	limit  int
	offset int
}

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print the signal changes recorded in a trace database",
	Run: func(_ *cobra.Command, _ []string) {
		printTrace()
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().StringVar(&traceFlags.db, "db",
		envString("CROSSLIGHT_DB", ""),
		"trace database file to read")
	traceCmd.Flags().IntVar(&traceFlags.limit, "limit", 0,
		"maximum number of changes to print, 0 for all")
	traceCmd.Flags().IntVar(&traceFlags.offset, "offset", 0,
		"number of changes to skip")

	err := traceCmd.MarkFlagRequired("db")
	if err != nil {
		panic(err)
	}
}

func printTrace() {
	reader := datarecording.NewReader(traceFlags.db)
	defer reader.Close()

	reader.MapTable(tracing.SignalChangesTable, tracing.SignalChange{})

	results, totalCount, err := reader.Query(
		context.Background(),
		tracing.SignalChangesTable,
		datarecording.QueryParams{
			Limit:   traceFlags.limit,
			Offset:  traceFlags.offset,
			OrderBy: "Cycle ASC",
		},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query failed: %s\n", err)
		os.Exit(1)
	}

	for _, r := range results {
		change := r.(tracing.SignalChange)

		suffix := ""
		if change.ByReset {
			suffix = " (reset)"
		}

		fmt.Printf("cycle %d, tick %d, %s, south %s, west %s%s\n",
			change.Cycle, change.Tick, change.Phase,
			change.South, change.West, suffix)
	}

	fmt.Printf("%d of %d changes\n", len(results), totalCount)
}
