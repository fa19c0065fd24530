package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ttt-learn",
	Short: "Learn a DFA for a built-in example language using TTT",
	Long: `ttt-learn drives the TTT active-learning algorithm against a small
set of built-in example languages, reporting the learned DFA's state
count, query cost, and (optionally) its transition table or a PlantUML
diagram.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	gtrace.SyntaxTracer = gologadapter.New()
}

// Execute runs the root command, printing any error to stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
