package ttt

import (
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Symbol is a single input letter of the alphabet Σ.
type Symbol rune

// Word is an immutable sequence over Σ. Two words are equal iff their
// symbols are equal; Word is used as a map key throughout the engine, so it
// is always passed and stored by value (a Go string, not a slice).
type Word string

// NewWord builds a Word from individual symbols.
func NewWord(symbols ...Symbol) Word {
	var b strings.Builder
	for _, s := range symbols {
		b.WriteRune(rune(s))
	}
	return Word(b.String())
}

// Append returns a new word equal to w followed by a.
func (w Word) Append(a Symbol) Word {
	return w + Word(a)
}

// Concat returns a new word equal to w followed by v.
func (w Word) Concat(v Word) Word {
	return w + v
}

// Symbols returns the word's symbols in order.
func (w Word) Symbols() []Symbol {
	r := []rune(string(w))
	out := make([]Symbol, len(r))
	for i, c := range r {
		out[i] = Symbol(c)
	}
	return out
}

func (w Word) at(i int) Symbol {
	return Symbol([]rune(string(w))[i])
}

// Len returns the number of symbols in w.
func (w Word) Len() int {
	return len([]rune(string(w)))
}

func runeComparator(a, b interface{}) int {
	return utils.IntComparator(int(a.(rune)), int(b.(rune)))
}

// Alphabet is the fixed, finite input alphabet Σ configured for a learning
// run. It keeps symbols in a canonical sorted order — several parts of the
// engine (discriminator finalization, the DFA transition table, diagram
// export) must iterate Σ in a fixed order for the output to be
// deterministic across runs.
type Alphabet struct {
	set     *treeset.Set
	ordered []Symbol
	index   map[Symbol]int
}

// NewAlphabet builds an Alphabet from the given symbols, deduplicating.
func NewAlphabet(symbols ...Symbol) *Alphabet {
	s := treeset.NewWith(runeComparator)
	for _, sym := range symbols {
		s.Add(rune(sym))
	}
	vals := s.Values()
	ordered := make([]Symbol, len(vals))
	for i, v := range vals {
		ordered[i] = Symbol(v.(rune))
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })
	index := make(map[Symbol]int, len(ordered))
	for i, sym := range ordered {
		index[sym] = i
	}
	return &Alphabet{set: s, ordered: ordered, index: index}
}

// Symbols returns Σ in canonical (sorted) order.
func (a *Alphabet) Symbols() []Symbol {
	out := make([]Symbol, len(a.ordered))
	copy(out, a.ordered)
	return out
}

// Contains reports whether a belongs to Σ.
func (a *Alphabet) Contains(sym Symbol) bool {
	return a.set.Contains(rune(sym))
}

// Size returns |Σ|.
func (a *Alphabet) Size() int {
	return a.set.Size()
}

// Index returns sym's position in the canonical ordering, or -1 if sym ∉ Σ.
// State transition slices are indexed by this position.
func (a *Alphabet) Index(sym Symbol) int {
	if i, ok := a.index[sym]; ok {
		return i
	}
	return -1
}
