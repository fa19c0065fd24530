package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in example languages",
		RunE:  runList,
	}
	rootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) error {
	rows := [][]string{{"name", "description"}}
	for _, ex := range examples {
		rows = append(rows, []string{ex.name, ex.description})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
