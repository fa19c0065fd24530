package main

import (
	"strings"

	"github.com/shetkarneeraj/ttt"
)

// example is one of the built-in languages ttt-learn can demonstrate
// learning against.
type example struct {
	name        string
	description string
	alphabet    *ttt.Alphabet
	maxLength   int
	accept      func(ttt.Word) bool
}

var examples = []example{
	{
		name:        "parity",
		description: "words over {a,b} with an even number of a's",
		alphabet:    ttt.NewAlphabet('a', 'b'),
		maxLength:   10,
		accept: func(w ttt.Word) bool {
			count := 0
			for _, s := range w.Symbols() {
				if s == 'a' {
					count++
				}
			}
			return count%2 == 0
		},
	},
	{
		name:        "ends-with-ab",
		description: "words over {a,b} ending in \"ab\"",
		alphabet:    ttt.NewAlphabet('a', 'b'),
		maxLength:   10,
		accept: func(w ttt.Word) bool {
			return strings.HasSuffix(string(w), "ab")
		},
	},
	{
		name:        "contains-aba",
		description: "words over {a,b} containing \"aba\" as a substring",
		alphabet:    ttt.NewAlphabet('a', 'b'),
		maxLength:   10,
		accept: func(w ttt.Word) bool {
			return strings.Contains(string(w), "aba")
		},
	},
	{
		name:        "four-i-plus-three-as",
		description: "words over {a,b} whose count of a's is 3 mod 4",
		alphabet:    ttt.NewAlphabet('a', 'b'),
		maxLength:   12,
		accept: func(w ttt.Word) bool {
			count := 0
			for _, s := range w.Symbols() {
				if s == 'a' {
					count++
				}
			}
			return count%4 == 3
		},
	},
	{
		name:        "empty",
		description: "the empty language",
		alphabet:    ttt.NewAlphabet('a', 'b'),
		maxLength:   6,
		accept:      func(ttt.Word) bool { return false },
	},
	{
		name:        "sigma-star",
		description: "every word over {a,b}",
		alphabet:    ttt.NewAlphabet('a', 'b'),
		maxLength:   6,
		accept:      func(ttt.Word) bool { return true },
	},
}

func findExample(name string) (example, bool) {
	for _, ex := range examples {
		if ex.name == name {
			return ex, true
		}
	}
	return example{}, false
}
