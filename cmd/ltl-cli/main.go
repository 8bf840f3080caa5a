// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"ltlsimplify/internal/debug"
	"ltlsimplify/internal/fixture"
	"ltlsimplify/internal/intset"
	"ltlsimplify/internal/simplify"
	"ltlsimplify/internal/surface"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: ltl-cli <formula-file> <fixture-file> <eval-set> [horizon]")
		fmt.Println(`  eval-set: "N0", "a,b", or "a,inf"`)
		os.Exit(1)
	}

	formulaPath, fixturePath, evalSpec := os.Args[1], os.Args[2], os.Args[3]
	horizon := 20
	if len(os.Args) > 4 {
		h, err := strconv.Atoi(os.Args[4])
		if err != nil {
			color.Red("invalid horizon %q: %s", os.Args[4], err)
			os.Exit(1)
		}
		horizon = h
	}

	source, err := os.ReadFile(formulaPath)
	if err != nil {
		color.Red("failed to read %s: %s", formulaPath, err)
		os.Exit(1)
	}

	f, semanticErrs, err := surface.Build(formulaPath, string(source))
	if err != nil {
		os.Exit(1) // surface.Build already printed the caret diagnostic
	}
	if len(semanticErrs) > 0 {
		for _, e := range semanticErrs {
			color.Red("error: %s", e.Message)
		}
		os.Exit(1)
	}

	fx, err := fixture.Load(fixturePath)
	if err != nil {
		color.Red("failed to load fixture %s: %s", fixturePath, err)
		os.Exit(1)
	}

	evalSet, err := parseEvalSet(evalSpec)
	if err != nil {
		color.Red("invalid eval-set %q: %s", evalSpec, err)
		os.Exit(1)
	}

	result := simplify.Simplify(f, evalSet, fx.Oracle())
	fmt.Println(debug.PrintMap(result.Map, horizon))

	color.Green("✅ Simplified %s against %s", formulaPath, fixturePath)
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
