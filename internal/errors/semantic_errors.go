package errors

import (
	"fmt"
	"strings"
)

// ErrorBuilder provides a fluent interface for assembling a
// CompilerError with suggestions, notes, and help text.
type ErrorBuilder struct {
	err CompilerError
}

// NewError starts building an error-level CompilerError.
func NewError(code, message string, pos Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{Level: Error, Code: code, Message: message, Position: pos, Length: 1},
	}
}

// NewWarning starts building a warning-level CompilerError.
func NewWarning(code, message string, pos Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{Level: Warning, Code: code, Message: message, Position: pos, Length: 1},
	}
}

func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// UnexpectedToken reports a parse failure at pos, optionally suggesting
// the operator keywords closest to what was found.
func UnexpectedToken(found string, pos Position, expected []string) CompilerError {
	builder := NewError(ErrorUnexpectedToken, fmt.Sprintf("unexpected token %q", found), pos).
		WithLength(len(found))
	if len(expected) > 0 {
		builder = builder.WithNote("expected one of: " + strings.Join(expected, ", "))
	}
	return builder.Build()
}

// UnknownOperator reports an unrecognized operator keyword, suggesting
// the closest known keyword by edit distance.
func UnknownOperator(name string, pos Position, known []string) CompilerError {
	builder := NewError(ErrorUnknownOperator, fmt.Sprintf("unknown operator %q", name), pos).
		WithLength(len(name))
	similar := findSimilarNames(name, known)
	if len(similar) == 1 {
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean %q?", similar[0]))
	} else if len(similar) > 1 {
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: %s?", strings.Join(similar, ", ")))
	}
	return builder.Build()
}

// MalformedInterval reports an interval annotation that failed to
// parse, e.g. a missing bound or a non-numeric bound.
func MalformedInterval(text string, pos Position, reason string) CompilerError {
	return NewError(ErrorMalformedInterval, fmt.Sprintf("malformed interval %q: %s", text, reason), pos).
		WithHelp("intervals are written [a,b] with a<=b, or [a,inf]").
		Build()
}

// IntervalBoundsInverted reports a[>]b in an interval.
func IntervalBoundsInverted(a, b int, pos Position) CompilerError {
	return NewError(ErrorIntervalBoundsInverted,
		fmt.Sprintf("interval lower bound %d exceeds upper bound %d", a, b), pos).
		WithSuggestion("swap the bounds, or widen the upper bound").
		Build()
}

// IntervalNegative reports a negative interval bound.
func IntervalNegative(bound int, pos Position) CompilerError {
	return NewError(ErrorIntervalNegative, fmt.Sprintf("interval bound %d is negative", bound), pos).
		WithNote("interval bounds range over non-negative integers").
		Build()
}

// PredicateArity reports a predicate applied with the wrong number of
// terms relative to its oracle registration.
func PredicateArity(name string, expected, actual int, pos Position) CompilerError {
	return NewError(ErrorPredicateArity,
		fmt.Sprintf("predicate %q expects %d term(s), got %d", name, expected, actual), pos).
		WithHelp("check the oracle registration for this predicate name").
		Build()
}

// OracleInconsistent reports an oracle whose true/false sets overlap
// for a given predicate instance, which would make the simplifier's
// map internally contradictory.
func OracleInconsistent(name string, pos Position) CompilerError {
	return NewError(ErrorOracleInconsistent,
		fmt.Sprintf("oracle result for %q is inconsistent: a position is both known-true and known-false", name), pos).
		WithHelp("an Oracle implementation must never return overlapping trueSet/falseSet").
		Build()
}

// UnregisteredPredicate warns that a predicate name has no arity
// registration, so the simplifier will never resolve it either way.
func UnregisteredPredicate(name string, pos Position) CompilerError {
	return NewWarning(WarningUnregisteredPredicate,
		fmt.Sprintf("predicate %q is not registered with any oracle", name), pos).
		WithSuggestion(fmt.Sprintf("register %q on an oracle.Registry before simplifying", name)).
		Build()
}

// EmptyMultiOperator reports a conjunction/disjunction with no children.
func EmptyMultiOperator(kind string, pos Position) CompilerError {
	return NewError(ErrorEmptyMultiOperator, fmt.Sprintf("%s requires at least one operand", kind), pos).Build()
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if levenshteinDistance(target, candidate) <= 2 && len(candidate) > 0 {
			similar = append(similar, candidate)
		}
	}
	return similar
}

// levenshteinDistance computes edit distance, used to suggest the
// nearest known operator keyword for a typo.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}
	return matrix[len(a)][len(b)]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
