// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-sampler/internal/catalog"
	"github.com/pdiddy/arxiv-sampler/internal/sampler"
	"github.com/pdiddy/arxiv-sampler/pkg/types"
)

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := extractConfig(cmd, args)
	if err != nil {
		return err
	}

	rec, err := sampler.Extract(context.Background(), cfg, os.Stdout)
	if err != nil {
		return err
	}

	if cfg.ManifestPath != "" {
		if err := sampler.WriteManifest(cfg.ManifestPath, rec); err != nil {
			return err
		}
		fmt.Printf("Wrote manifest to %s\n", cfg.ManifestPath)
	}

	if cfg.CatalogPath != "" {
		cat, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			return err
		}
		defer cat.Close()
		if err := cat.Record(context.Background(), &rec); err != nil {
			return err
		}
		fmt.Printf("Recorded run %d in %s\n", rec.ID, cfg.CatalogPath)
	}

	return nil
}

// extractConfig resolves run parameters: viper-backed defaults first, then
// positional arguments left to right. A non-integer n aborts before any I/O.
func extractConfig(cmd *cobra.Command, args []string) (types.SamplerConfig, error) {
	cfg := types.SamplerConfig{
		N:                viper.GetInt("n"),
		OutputPath:       viper.GetString("output_path"),
		InputPath:        viper.GetString("input_path"),
		ProgressInterval: viper.GetInt("progress_interval"),
		CatalogPath:      viper.GetString("catalog_path"),
	}

	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return cfg, fmt.Errorf("invalid object count %q: %w", args[0], err)
		}
		cfg.N = n
	}
	if len(args) > 1 {
		cfg.OutputPath = args[1]
	}
	if len(args) > 2 {
		cfg.InputPath = args[2]
	}

	if interval, _ := cmd.Flags().GetInt("progress-interval"); interval > 0 {
		cfg.ProgressInterval = interval
	}
	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		cfg.CatalogPath = path
	}
	if manifest, _ := cmd.Flags().GetBool("manifest"); manifest {
		cfg.ManifestPath = cfg.OutputPath + ".manifest.yaml"
	}

	return cfg, nil
}

func init() {
	rootCmd.Flags().Bool("manifest", false, "write a YAML run manifest next to the output file")
	rootCmd.Flags().String("catalog", "", "record the run in a SQLite catalog at this path")
	rootCmd.Flags().Int("progress-interval", 0, "lines between progress messages (0 = default 100)")
}
