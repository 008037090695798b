// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-sampler/internal/catalog"
	"github.com/pdiddy/arxiv-sampler/pkg/types"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List extraction runs recorded in the catalog",
	Long: `Runs lists past extraction runs from the SQLite catalog, newest first.
The catalog is only populated when extractions are invoked with --catalog
(or catalog_path in the config file).`,
	RunE: runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = viper.GetString("catalog_path")
	}
	if path == "" {
		return fmt.Errorf("catalog required: pass --catalog or set catalog_path in the config")
	}

	cat, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer cat.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := cat.List(context.Background(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRunsOutput(runs, jsonOutput)
}

func formatRunsOutput(runs []types.RunRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-19s  %8s  %8s  %8s  %10s  %s\n",
		"ID", "Started", "N", "Written", "Skipped", "Read", "Output")

	for _, r := range runs {
		output := r.OutputPath
		if len(output) > 40 {
			output = output[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-19s  %8d  %8d  %8d  %10s  %s\n",
			r.ID, r.StartedAt.Format(time.DateTime), r.Requested,
			r.Written, r.Skipped, humanize.Bytes(uint64(r.BytesRead)), output)
	}

	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(runs))
	return nil
}

func init() {
	runsCmd.Flags().String("catalog", "", "SQLite catalog path")
	runsCmd.Flags().Int("limit", 0, "maximum runs to list (0 = all)")
	runsCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(runsCmd)
}
