package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/shetkarneeraj/ttt"
	"github.com/shetkarneeraj/ttt/render"
	"github.com/shetkarneeraj/ttt/teachers"
)

var learnFlags = struct {
	budget  *int
	diagram *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "learn [language]",
		Short:   "Learn a built-in example language and print the resulting DFA",
		Example: "  ttt-learn learn ends-with-ab",
		Args:    cobra.ExactArgs(1),
		RunE:    runLearn,
	}
	learnFlags.budget = cmd.Flags().Int("budget", 0, "membership query budget (0 = unbounded)")
	learnFlags.diagram = cmd.Flags().Bool("diagram", false, "print a PlantUML diagram instead of a transition table")
	rootCmd.AddCommand(cmd)
}

func runLearn(cmd *cobra.Command, args []string) error {
	ex, ok := findExample(args[0])
	if !ok {
		return fmt.Errorf("unknown example %q; run 'ttt-learn list' to see available ones", args[0])
	}

	teacher := teachers.NewPredicateTeacher(ex.alphabet, ex.maxLength, ex.accept)
	cached := ttt.NewCachingTeacher(teacher)
	learner := ttt.NewLearner(ex.alphabet, cached, ttt.Config{MaxMembershipQueries: *learnFlags.budget})

	dfa, err := learner.Run()
	if err != nil {
		render.Failure(err)
		return err
	}

	render.Success(dfa)
	render.Stats(learner.Stats())
	pterm.Info.Printfln("membership cache size: %d", cached.CacheSize())

	if *learnFlags.diagram {
		fmt.Println(dfa.DiagramPUML())
		return nil
	}
	return render.Table(dfa)
}
