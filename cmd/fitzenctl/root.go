package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"FITZEN_BACK-END/internal/repository"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:          "fitzenctl",
	Short:        "fitzenctl manages the Fitzen CSV data directory",
	Long:         "fitzenctl initialises the Fitzen tables, imports the shared recipe catalogue and reports table sizes.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (defaults to DATA_DIR or ./data)")
}

func resolveDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		return v
	}
	return "./data"
}

func withStores(run func(*repository.Stores) error) error {
	stores, err := repository.NewStores(resolveDataDir())
	if err != nil {
		return err
	}
	return run(stores)
}
