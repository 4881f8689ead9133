// Package groupfault defines the three error kinds the grouping pipeline
// can raise (spec.md §7) — two fatal, plus InternalGroupingError, which the
// pass driver logs and swallows — and the juju/errors-backed wrapping used
// to test for them.
package groupfault

import (
	"fmt"

	"github.com/juju/errors"
)

// kind tags a groupfault error so callers can test it with Is*.
type kind int

const (
	kindUnbalancedParenthesis kind = iota
	kindInvalidSyntax
	kindInternalGroupingError
)

// Fault is a fatal grouping-pipeline error. InternalGroupingError is
// deliberately not fatal in practice — the pass driver (C2) always catches
// it and continues — but it is modeled as a Fault so logging and testing
// code share one error type.
type Fault struct {
	k       kind
	Pass    string
	Message string
	cause   error
}

func (f *Fault) Error() string {
	if f.Pass != "" {
		return fmt.Sprintf("%s: %s", f.Pass, f.Message)
	}
	return f.Message
}

// Cause satisfies juju/errors' causer interface so errors.Cause(f) unwraps
// to whatever underlying error (if any) triggered this fault.
func (f *Fault) Cause() error { return f.cause }

// UnbalancedParenthesis reports an open parenthesis still unclosed at the
// end of the top-level token list (group_parenthesis only; a close with
// nothing open is skipped, and brackets, case, if, for, begin tolerate
// imbalance silently per spec.md §4.3 pass 3).
func UnbalancedParenthesis() error {
	return &Fault{k: kindUnbalancedParenthesis, Message: "unbalanced parenthesis"}
}

// InvalidSyntax reports a missing mandatory tail for a SELECT/WITH/INSERT
// clause pass (spec.md §4.3 passes 27–29).
func InvalidSyntax(clause, detail string) error {
	return &Fault{k: kindInvalidSyntax, Pass: clause, Message: detail}
}

// InternalGroupingError wraps an unexpected failure inside a pass's wrap
// step; the pass driver logs it and continues (spec.md §7).
func InternalGroupingError(pass string, cause error) error {
	return errors.Annotatef(&Fault{k: kindInternalGroupingError, Pass: pass, Message: cause.Error(), cause: cause}, "pass %s", pass)
}

func asFault(err error) (*Fault, bool) {
	cause := errors.Cause(err)
	f, ok := cause.(*Fault)
	return f, ok
}

// IsUnbalancedParenthesis reports whether err is (or wraps) an
// UnbalancedParenthesis fault.
func IsUnbalancedParenthesis(err error) bool {
	f, ok := asFault(err)
	return ok && f.k == kindUnbalancedParenthesis
}

// IsInvalidSyntax reports whether err is (or wraps) an InvalidSyntax fault.
func IsInvalidSyntax(err error) bool {
	f, ok := asFault(err)
	return ok && f.k == kindInvalidSyntax
}

// IsInternalGroupingError reports whether err is (or wraps) an
// InternalGroupingError fault.
func IsInternalGroupingError(err error) bool {
	f, ok := asFault(err)
	return ok && f.k == kindInternalGroupingError
}
