// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ltlsimplify/internal/debug"
	"ltlsimplify/internal/fixture"
	"ltlsimplify/internal/intset"
	"ltlsimplify/internal/oracle"
	"ltlsimplify/internal/simplify"
	"ltlsimplify/internal/stdlib"
	"ltlsimplify/internal/surface"
)

const PROMPT = ">> "

const horizon = 10

// Start runs an interactive loop: each line is either a `:fixture
// <path>` / `:eval <spec>` command adjusting the session's active
// oracle/evaluation-set state, or a formula to parse and simplify
// against whatever state is currently active (default: stdlib.Always
// over N0, so every predicate is known true everywhere until a
// fixture is loaded).
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	active := oracle.NewCache(stdlib.Always())
	evalSet := intset.N0()

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if rest, ok := command(line, ":fixture"); ok {
			fx, err := fixture.Load(rest)
			if err != nil {
				fmt.Fprintf(out, "error: %s\n", err)
				continue
			}
			active = oracle.NewCache(fx.Oracle())
			fmt.Fprintf(out, "loaded fixture %s\n", rest)
			continue
		}

		if rest, ok := command(line, ":eval"); ok {
			set, err := parseEvalSet(rest)
			if err != nil {
				fmt.Fprintf(out, "error: %s\n", err)
				continue
			}
			evalSet = set
			fmt.Fprintf(out, "evaluation set set to %s\n", rest)
			continue
		}

		f, errs, err := surface.Build("<repl>", line)
		if err != nil {
			continue // surface.Build already printed the caret diagnostic
		}
		if len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintf(out, "error: %s\n", e.Message)
			}
			continue
		}

		result := simplify.Simplify(f, evalSet, active)
		fmt.Fprintln(out, debug.PrintMap(result.Map, horizon))
	}
}

func command(line, name string) (string, bool) {
	if !strings.HasPrefix(line, name) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, name)), true
}

func parseEvalSet(spec string) (intset.Set, error) {
	if spec == "N0" {
		return intset.N0(), nil
	}
	parts := strings.SplitN(spec, ",", 2)
	if len(parts) != 2 {
		return intset.Set{}, fmt.Errorf(`expected "N0", "a,b", or "a,inf"`)
	}
	var a int
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[0]), "%d", &a); err != nil {
		return intset.Set{}, fmt.Errorf("invalid lower bound: %w", err)
	}
	if strings.TrimSpace(parts[1]) == "inf" {
		return intset.FromInterval(a, nil), nil
	}
	var b int
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[1]), "%d", &b); err != nil {
		return intset.Set{}, fmt.Errorf("invalid upper bound: %w", err)
	}
	return intset.FromInterval(a, &b), nil
}
