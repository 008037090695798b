// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-sampler CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-sampler/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. Invoked without a subcommand it runs an
// extraction with the classic positional argument form.
var rootCmd = &cobra.Command{
	Use:   "arxiv-sampler [n [output_path [input_path]]]",
	Short: "Extract the first N records of a JSONL snapshot into a JSON array",
	Long: `arxiv-sampler reads a newline-delimited JSON snapshot (such as the arXiv
metadata OAI dump) line by line, parses the first N lines as JSON records, and
writes them as one pretty-printed JSON array. Malformed lines produce a
warning and are skipped; the scan still stops after N lines read.

Arguments are positional and all optional, applied left to right:

  n            number of objects to extract       (default 100)
  output_path  destination file                   (default arxiv_sample.json)
  input_path   source snapshot                    (default arxiv-metadata-oai-snapshot.json)

Defaults can also come from arxiv-sampler.yaml or ARXIV_SAMPLER_* environment
variables; positional arguments always win.`,
	Args: cobra.MaximumNArgs(3),
	RunE: runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-sampler.yaml or ~/.config/arxiv-sampler/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-sampler")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-sampler"))
		}
	}

	viper.SetDefault("n", types.DefaultN)
	viper.SetDefault("output_path", types.DefaultOutputPath)
	viper.SetDefault("input_path", types.DefaultInputPath)
	viper.SetDefault("progress_interval", types.DefaultProgressInterval)

	viper.SetEnvPrefix("ARXIV_SAMPLER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
