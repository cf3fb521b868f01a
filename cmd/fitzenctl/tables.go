package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"FITZEN_BACK-END/internal/repository"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List tables with their row counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(stores *repository.Stores) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TABLE\tROWS\tCOLUMNS")
			for _, t := range stores.Tables() {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", t.Name(), len(t.ReadAll()), strings.Join(t.Columns(), ","))
			}
			return tw.Flush()
		})
	},
}

var tableShowLimit int

var tableShowCmd = &cobra.Command{
	Use:   "show <table>",
	Short: "Print the rows of one table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStores(func(stores *repository.Stores) error {
			table, ok := stores.Table(args[0])
			if !ok {
				return fmt.Errorf("unknown table %q", args[0])
			}
			cols := table.Columns()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, strings.ToUpper(strings.Join(cols, "\t")))
			for i, row := range table.ReadAll() {
				if tableShowLimit > 0 && i >= tableShowLimit {
					break
				}
				cells := make([]string, len(cols))
				for j, col := range cols {
					cells[j] = row[col]
				}
				fmt.Fprintln(tw, strings.Join(cells, "\t"))
			}
			return tw.Flush()
		})
	},
}

func init() {
	tableShowCmd.Flags().IntVar(&tableShowLimit, "limit", 0, "Maximum rows to print (0 for all)")
	tablesCmd.AddCommand(tableShowCmd)
	rootCmd.AddCommand(tablesCmd)
}
