// Package fixture loads a declarative oracle fixture — a YAML file
// naming, per predicate, which internal/stdlib backend (or an explicit
// true/false position list) answers queries about it — so the CLI and
// REPL tooling can point at a concrete oracle without hand-wiring Go
// for every example scenario.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ltlsimplify/internal/intset"
	"ltlsimplify/internal/oracle"
	"ltlsimplify/internal/stdlib"
)

// entry is one predicate's backend selection, as it appears in the
// fixture file:
//
//	predicates:
//	  ready:
//	    kind: always
//	  OnRamp:
//	    kind: threshold
//	    at: 3
//	  flag:
//	    kind: periodic
//	    period: 2
//	    phase: 0
//	  p:
//	    kind: explicit
//	    true_at: [1]
//	    false_at: [0, 2]
//	    false_tail: true
type entry struct {
	Kind      string `yaml:"kind"`
	At        int    `yaml:"at"`
	Period    int    `yaml:"period"`
	Phase     int    `yaml:"phase"`
	TrueAt    []int  `yaml:"true_at"`
	FalseAt   []int  `yaml:"false_at"`
	TrueTail  bool   `yaml:"true_tail"`
	FalseTail bool   `yaml:"false_tail"`
}

type document struct {
	Predicates map[string]entry `yaml:"predicates"`
}

// Fixture dispatches an oracle.Check call to the backend registered for
// its predicate name; a predicate with no entry reports nothing known
// rather than erroring.
type Fixture struct {
	backends map[string]oracle.Oracle
}

// Load reads and parses a fixture file from path.
func Load(path string) (*Fixture, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: failed to read %s: %w", path, err)
	}
	return Parse(content)
}

// Parse builds a Fixture from YAML source.
func Parse(source []byte) (*Fixture, error) {
	var doc document
	if err := yaml.Unmarshal(source, &doc); err != nil {
		return nil, fmt.Errorf("fixture: invalid YAML: %w", err)
	}

	f := &Fixture{backends: make(map[string]oracle.Oracle, len(doc.Predicates))}
	for name, e := range doc.Predicates {
		backend, err := build(e)
		if err != nil {
			return nil, fmt.Errorf("fixture: predicate %q: %w", name, err)
		}
		f.backends[name] = backend
	}
	return f, nil
}

func build(e entry) (oracle.Oracle, error) {
	switch e.Kind {
	case "always":
		return stdlib.Always(), nil
	case "never":
		return stdlib.Never(), nil
	case "threshold":
		return stdlib.Threshold(e.At), nil
	case "periodic":
		return stdlib.Periodic(e.Period, e.Phase), nil
	case "explicit":
		trueSet := buildSet(e.TrueAt, e.TrueTail)
		falseSet := buildSet(e.FalseAt, e.FalseTail)
		return oracle.Func(func(string, []string) (intset.Set, intset.Set, error) {
			return trueSet, falseSet, nil
		}), nil
	default:
		return nil, fmt.Errorf("unknown kind %q", e.Kind)
	}
}

func buildSet(elems []int, tail bool) intset.Set {
	if tail {
		return intset.NewTail(elems...)
	}
	return intset.New(elems...)
}

// Oracle returns an oracle.Oracle that dispatches each query to the
// predicate's registered backend.
func (f *Fixture) Oracle() oracle.Oracle {
	return oracle.Func(func(name string, terms []string) (intset.Set, intset.Set, error) {
		backend, ok := f.backends[name]
		if !ok {
			return intset.Empty(), intset.Empty(), nil
		}
		return backend.Check(name, terms)
	})
}
