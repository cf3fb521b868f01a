package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"FITZEN_BACK-END/internal/repository"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create every missing table with its header row",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(stores *repository.Stores) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %d tables in %s\n", len(stores.Tables()), resolveDataDir())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
