package repl_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ltlsimplify/repl"
)

func TestStartSimplifiesAFormulaAgainstTheDefaultOracle(t *testing.T) {
	in := strings.NewReader("ready(v1)\n")
	var out bytes.Buffer

	repl.Start(in, &out)

	assert.Contains(t, out.String(), "True")
}

func TestStartLoadsAFixtureAndHonorsItOnSubsequentLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oracle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("predicates:\n  broken:\n    kind: never\n"), 0o644))

	in := strings.NewReader(":fixture " + path + "\nbroken(v1)\n")
	var out bytes.Buffer

	repl.Start(in, &out)

	assert.Contains(t, out.String(), "loaded fixture")
	assert.Contains(t, out.String(), "False")
}

func TestStartRejectsAMalformedEvalSet(t *testing.T) {
	in := strings.NewReader(":eval garbage\n")
	var out bytes.Buffer

	repl.Start(in, &out)

	assert.Contains(t, out.String(), "error:")
}

func TestStartReportsMalformedIntervalsWithoutCrashing(t *testing.T) {
	in := strings.NewReader("G[3,1] p\n")
	var out bytes.Buffer

	assert.NotPanics(t, func() {
		repl.Start(in, &out)
	})
}
