package ttt

import (
	"fmt"
	"strings"
)

type stateEdge struct {
	src, dst StateID
}

// DiagramBuilder allows minor customizations of PlantUML diagram layout
// before building the diagram. Create one with DFA.DiagramBuilder().
type DiagramBuilder struct {
	dfa          *DFA
	defaultArrow string
	arrows       map[stateEdge]string
}

// DiagramBuilder creates a builder for customizing a PlantUML diagram of d
// before building it.
func (d *DFA) DiagramBuilder() *DiagramBuilder {
	return &DiagramBuilder{
		dfa:          d,
		defaultArrow: "-->",
		arrows:       make(map[stateEdge]string),
	}
}

// DefaultArrow changes the arrow style used for transitions. The default is "-->".
func (db *DiagramBuilder) DefaultArrow(arrow string) *DiagramBuilder {
	db.defaultArrow = arrow
	return db
}

// Arrow specifies the arrow style used for all transitions from src to dst.
// See https://crashedmind.github.io/PlantUMLHitchhikersGuide/layout/layout.html
// for available arrow styles.
func (db *DiagramBuilder) Arrow(src, dst StateID, arrow string) *DiagramBuilder {
	db.arrows[stateEdge{src, dst}] = arrow
	return db
}

func (db *DiagramBuilder) arrowFor(src, dst StateID) string {
	if a, ok := db.arrows[stateEdge{src, dst}]; ok {
		return a
	}
	return db.defaultArrow
}

func stateName(q StateID) string {
	return fmt.Sprintf("s%d", q)
}

// Build renders d as a PlantUML state diagram: one state per DFA state,
// final states marked with the <<final>> stereotype, and parallel
// transitions between the same pair of states combined into a single
// arrow with a comma-joined label.
func (db *DiagramBuilder) Build() string {
	dfa := db.dfa
	var bld strings.Builder
	bld.WriteString("@startuml\n\n")

	for q := 0; q < dfa.NumStates(); q++ {
		name := stateName(StateID(q))
		if dfa.IsFinal(StateID(q)) {
			fmt.Fprintf(&bld, "state %s <<final>>\n", name)
		} else {
			fmt.Fprintf(&bld, "state %s\n", name)
		}
	}
	fmt.Fprintf(&bld, "[*] --> %s\n", stateName(dfa.Start()))

	labels := make(map[stateEdge][]string)
	var order []stateEdge
	for q := 0; q < dfa.NumStates(); q++ {
		for _, sym := range dfa.Alphabet().Symbols() {
			dst := dfa.Step(StateID(q), sym)
			e := stateEdge{StateID(q), dst}
			if _, seen := labels[e]; !seen {
				order = append(order, e)
			}
			labels[e] = append(labels[e], string(rune(sym)))
		}
	}

	for _, e := range order {
		fmt.Fprintf(&bld, "%s %s %s : %s\n", stateName(e.src), db.arrowFor(e.src, e.dst), stateName(e.dst), strings.Join(labels[e], ","))
	}

	bld.WriteString("\n@enduml\n")
	return bld.String()
}

// DiagramPUML builds a PlantUML diagram of d using default styling. A
// shorthand for d.DiagramBuilder().Build().
func (d *DFA) DiagramPUML() string {
	return d.DiagramBuilder().Build()
}
