package ttt

import "fmt"

// InvariantViolationError reports that one of the engine's internal
// invariants (spec.md §3) failed to hold. It carries the name of the
// failed invariant and a free-form detail string; it has no word fields.
type InvariantViolationError struct {
	Invariant string
	Detail    string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation (%s): %s", e.Invariant, e.Detail)
}

// OracleContractError reports that the Teacher gave inconsistent answers:
// an IsEquivalent call returned an empty counterexample, or one on which
// the hypothesis and IsMember agree, or one in which RS search found no
// divergence index. IsMember answers are not compared across calls, so two
// disagreeing answers for the same word do not raise it.
type OracleContractError struct {
	Word  Word
	Other Word
	Why   string
}

func (e *OracleContractError) Error() string {
	if e.Other == "" {
		return fmt.Sprintf("oracle contract violation on %q: %s", string(e.Word), e.Why)
	}
	return fmt.Sprintf("oracle contract violation on %q vs %q: %s", string(e.Word), string(e.Other), e.Why)
}

// ResourceExhaustionError reports that a configured query budget was
// exceeded. It is recoverable: the caller may call Learner.Hypothesis() to
// checkpoint the current (possibly not yet minimal) hypothesis.
type ResourceExhaustionError struct {
	Budget int
	Spent  int
}

func (e *ResourceExhaustionError) Error() string {
	return fmt.Sprintf("membership query budget exceeded: spent %d of %d", e.Spent, e.Budget)
}

// usage errors are programmer errors (spec.md §7) and are fatal: they
// panic with a fixed message rather than returning an error, the same way
// dragomit/hsm panics on a misused builder.

func usagePanic(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}
