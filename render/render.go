// Package render prints learned automata and learning progress to a
// terminal using pterm.
package render

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/shetkarneeraj/ttt"
)

// Table prints dfa's transition table, one row per state, one column per
// symbol, with the start state marked "->" and accepting states marked "*".
func Table(dfa *ttt.DFA) error {
	header := []string{"state"}
	for _, sym := range dfa.Alphabet().Symbols() {
		header = append(header, string(rune(sym)))
	}
	rows := [][]string{header}

	for q := 0; q < dfa.NumStates(); q++ {
		id := ttt.StateID(q)
		name := fmt.Sprintf("s%d", q)
		if id == dfa.Start() {
			name = "-> " + name
		}
		if dfa.IsFinal(id) {
			name = "* " + name
		}
		row := []string{name}
		for _, sym := range dfa.Alphabet().Symbols() {
			row = append(row, fmt.Sprintf("s%d", dfa.Step(id, sym)))
		}
		rows = append(rows, row)
	}

	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// Stats prints a Learner's query and round counters as a labeled panel.
func Stats(s ttt.Stats) {
	pterm.DefaultSection.Println("Learning summary")
	pterm.Info.Printfln("states:               %d", s.States)
	pterm.Info.Printfln("rounds:                %d", s.Rounds)
	pterm.Info.Printfln("membership queries:    %d", s.MembershipQueries)
	pterm.Info.Printfln("equivalence queries:   %d", s.EquivalenceQueries)
}

// Failure prints err as a terminal error message.
func Failure(err error) {
	pterm.Error.Println(err.Error())
}

// Success prints a one-line confirmation that learning converged.
func Success(dfa *ttt.DFA) {
	pterm.Success.Printfln("converged to a %d-state DFA", dfa.NumStates())
}
