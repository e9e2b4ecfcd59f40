package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with the given args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRun_GoldenCSVOutput(t *testing.T) {
	out, err := execute(t,
		"run",
		"--rules", "testdata/rules.yaml",
		"--file", "testdata/expenses.csv",
		"--format", "csv",
	)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "run_csv", []byte(out))
}

func TestRun_TextFormatIncludesHeader(t *testing.T) {
	out, err := execute(t,
		"run",
		"--rules", "testdata/rules.yaml",
		"--file", "testdata/expenses.csv",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Kategória")
	assert.Contains(t, out, "groceries")
}

func TestRun_InvalidFormat(t *testing.T) {
	_, err := execute(t,
		"run",
		"--rules", "testdata/rules.yaml",
		"--file", "testdata/expenses.csv",
		"--format", "xml",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRun_MissingLedgerFileIsFatal(t *testing.T) {
	_, err := execute(t,
		"run",
		"--rules", "testdata/rules.yaml",
		"--file", "testdata/no_such_file.csv",
	)
	assert.Error(t, err)
}

func TestRun_QuietAndVerboseConflict(t *testing.T) {
	_, err := execute(t,
		"run",
		"--quiet", "--verbose",
		"--rules", "testdata/rules.yaml",
		"--file", "testdata/expenses.csv",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_ReportsOK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.yaml")
	doc := `
rules:
  - name: coffee
    properties: [erste_comment]
    matchers:
      - place: "^COFFEE"
    actions:
      update:
        Kategória: coffee
  - name: off
    active: false
    actions:
      update:
        Kategória: x
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := execute(t, "validate", "--rules", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 rule(s) OK (1 active)")
}

func TestValidate_ReportsProblems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	doc := `
rules:
  - name: bad
    properties: [no_such_extractor]
    actions:
      create:
        x: y
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := execute(t, "validate", "--rules", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 problem(s)")
}

func TestValidate_FlagsInactiveRuleProblems(t *testing.T) {
	// The run fixture carries an inactive rule with a malformed matcher;
	// runs skip it, but validate must still report it.
	_, err := execute(t, "validate", "--rules", "testdata/rules.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 problem(s)")
}
