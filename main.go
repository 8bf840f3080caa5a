// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"ltlsimplify/internal/debug"
	"ltlsimplify/internal/fixture"
	"ltlsimplify/internal/intset"
	"ltlsimplify/internal/simplify"
	"ltlsimplify/internal/surface"
)

// scenario is a *.fixture file: a formula, its oracle, an evaluation
// set, and an optional expected rendering of the resulting
// simplification map. Sections are introduced by a "--- name ---"
// marker line; "expect" is the only optional one.
type scenario struct {
	formula string
	oracle  string
	eval    string
	expect  string
	hasWant bool
}

const horizon = 20

func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.fixture"))
	if err != nil {
		color.Red("failed to scan %s: %s", dir, err)
		os.Exit(1)
	}
	if len(matches) == 0 {
		fmt.Printf("No *.fixture files found in %s\n", dir)
		return
	}

	failed := 0
	for _, path := range matches {
		if err := runScenario(path); err != nil {
			color.Red("❌ %s: %s", path, err)
			failed++
			continue
		}
		color.Green("✅ %s", path)
	}

	if failed > 0 {
		color.Red("%d/%d scenarios failed", failed, len(matches))
		os.Exit(1)
	}
	color.Green("all %d scenarios passed", len(matches))
}

func runScenario(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	sc, err := parseScenario(string(raw))
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	f, semanticErrs, err := surface.Build(path, sc.formula)
	if err != nil {
		return fmt.Errorf("syntax error: %w", err)
	}
	if len(semanticErrs) > 0 {
		return fmt.Errorf("semantic error: %s", semanticErrs[0].Message)
	}

	fx, err := fixture.Parse([]byte(sc.oracle))
	if err != nil {
		return fmt.Errorf("oracle: %w", err)
	}

	evalSet, err := parseEvalSet(sc.eval)
	if err != nil {
		return fmt.Errorf("eval set: %w", err)
	}

	result := simplify.Simplify(f, evalSet, fx.Oracle())
	got := debug.PrintMap(result.Map, horizon)

	if sc.hasWant && strings.TrimSpace(got) != strings.TrimSpace(sc.expect) {
		return fmt.Errorf("output mismatch:\n--- want ---\n%s\n--- got ---\n%s", sc.expect, got)
	}
	return nil
}

func parseScenario(source string) (scenario, error) {
	sections := map[string]string{}
	var current string
	var buf strings.Builder

	flush := func() {
		if current != "" {
			sections[current] = buf.String()
		}
		buf.Reset()
	}

	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "---") && strings.HasSuffix(trimmed, "---") {
			flush()
			current = strings.TrimSpace(strings.Trim(trimmed, "- "))
			continue
		}
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	flush()

	formula, ok := sections["formula"]
	if !ok {
		return scenario{}, fmt.Errorf("missing --- formula --- section")
	}
	oracleSrc, ok := sections["oracle"]
	if !ok {
		return scenario{}, fmt.Errorf("missing --- oracle --- section")
	}
	eval, ok := sections["eval"]
	if !ok {
		return scenario{}, fmt.Errorf("missing --- eval --- section")
	}

	expect, hasWant := sections["expect"]
	return scenario{
		formula: strings.TrimSpace(formula),
		oracle:  oracleSrc,
		eval:    strings.TrimSpace(eval),
		expect:  expect,
		hasWant: hasWant,
	}, nil
}

// parseEvalSet reads the evaluation-set spec: "N0" for the naturals,
// "a,b" for a closed finite interval, or "a,inf" for a tail-infinite
// interval starting at a.
func parseEvalSet(spec string) (intset.Set, error) {
	if spec == "N0" {
		return intset.N0(), nil
	}

	parts := strings.SplitN(spec, ",", 2)
	if len(parts) != 2 {
		return intset.Set{}, fmt.Errorf(`expected "N0", "a,b", or "a,inf"`)
	}

	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return intset.Set{}, fmt.Errorf("invalid lower bound: %w", err)
	}

	if strings.TrimSpace(parts[1]) == "inf" {
		return intset.FromInterval(a, nil), nil
	}

	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return intset.Set{}, fmt.Errorf("invalid upper bound: %w", err)
	}
	return intset.FromInterval(a, &b), nil
}
