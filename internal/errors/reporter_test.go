package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorReporter(t *testing.T) {
	source := `G[1,3] p & X q`

	reporter := NewErrorReporter("formula.ltl", source)

	err := UnknownOperator("henceforth", Position{Line: 1, Column: 1}, []string{"G", "F", "X", "O", "P"})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorUnknownOperator+"]")
	assert.Contains(t, formatted, "unknown operator")
	assert.Contains(t, formatted, "henceforth")
	assert.Contains(t, formatted, "formula.ltl:1:1")
}

func TestUnknownOperatorError(t *testing.T) {
	pos := Position{Line: 1, Column: 5}

	err := UnknownOperator("Glo", pos, []string{"G", "F", "X", "O", "P"})
	assert.Equal(t, ErrorUnknownOperator, err.Code)
	assert.Contains(t, err.Message, "Glo")
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "did you mean")
	assert.Contains(t, err.Suggestions[0].Message, "G")
}

func TestMalformedIntervalError(t *testing.T) {
	pos := Position{Line: 1, Column: 3}

	err := MalformedInterval("[1,]", pos, "missing upper bound")
	assert.Equal(t, ErrorMalformedInterval, err.Code)
	assert.Contains(t, err.Message, "[1,]")
	assert.Contains(t, err.Message, "missing upper bound")
	assert.NotEmpty(t, err.HelpText)
}

func TestIntervalBoundsInvertedError(t *testing.T) {
	pos := Position{Line: 1, Column: 3}

	err := IntervalBoundsInverted(5, 2, pos)
	assert.Equal(t, ErrorIntervalBoundsInverted, err.Code)
	assert.Contains(t, err.Message, "5")
	assert.Contains(t, err.Message, "2")
}

func TestPredicateArityError(t *testing.T) {
	pos := Position{Line: 1, Column: 5}

	err := PredicateArity("onRamp", 2, 1, pos)
	assert.Equal(t, ErrorPredicateArity, err.Code)
	assert.Contains(t, err.Message, "onRamp")
	assert.Contains(t, err.Message, "expects 2")
	assert.Contains(t, err.Message, "got 1")
}

func TestUnregisteredPredicateWarning(t *testing.T) {
	source := `p(v1)`
	reporter := NewErrorReporter("formula.ltl", source)

	err := UnregisteredPredicate("p", Position{Line: 1, Column: 1})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "warning["+WarningUnregisteredPredicate+"]")
	assert.Contains(t, formatted, "not registered")
}

func TestErrorMarkerCreation(t *testing.T) {
	source := `G[1,3] predicate_name`
	reporter := NewErrorReporter("formula.ltl", source)

	marker := reporter.createMarker(5, 8, Error) // 8-char span starting at column 5

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces)
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("hello", "hello"))
	assert.Equal(t, 1, levenshteinDistance("hello", "hallo"))
	assert.Equal(t, 1, levenshteinDistance("hello", "helo"))
	assert.Equal(t, 5, levenshteinDistance("hello", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestSimilarNameFinding(t *testing.T) {
	candidates := []string{"G", "F", "X", "O", "P", "until"}

	similar := findSimilarNames("Glo", candidates)
	assert.Contains(t, similar, "G")

	similar = findSimilarNames("verydifferentoperator", candidates)
	assert.Empty(t, similar)
}

func TestErrorLevels(t *testing.T) {
	source := `test`
	reporter := NewErrorReporter("formula.ltl", source)
	pos := Position{Line: 1, Column: 1}

	errorErr := CompilerError{Level: Error, Message: "test error", Position: pos}
	warningErr := CompilerError{Level: Warning, Message: "test warning", Position: pos}

	errorFormatted := reporter.FormatError(errorErr)
	warningFormatted := reporter.FormatError(warningErr)

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}
