package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/rootfind/brent"
	"github.com/katalvlaran/rootfind/problems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

// writeFile stores content under a fresh temp dir and returns the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestSolve_Text(t *testing.T) {
	out, _, err := run(t, "solve", "--expr", "x * cos(x)", "--a=-1", "--b=1")
	require.NoError(t, err)
	assert.Equal(t, "root=0 f=0 iterations=1 evaluations=3 reason=machine-precision\n", out)
}

func TestSolve_JSON(t *testing.T) {
	out, _, err := run(t, "solve", "-e", "x ** 3 - 2 * x ** 2 - x - 2", "--a=-5", "--b=5", "--format", "json")
	require.NoError(t, err)

	var o outcome
	require.NoError(t, json.Unmarshal([]byte(out), &o))
	require.NotNil(t, o.Root)
	assert.InDelta(t, 2.658967, *o.Root, 1e-4)
	assert.Equal(t, o.Iterations+2, o.Evaluations)
	assert.Empty(t, o.Error)
}

func TestSolve_Verbose(t *testing.T) {
	_, logs, err := run(t, "solve", "-v", "--expr", "x - 0.25", "--a=-1", "--b=1")
	require.NoError(t, err)
	assert.Contains(t, logs, "msg=step")
	assert.Contains(t, logs, "kind=")
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "solve", "--expr", "x * x + 1", "--a=-1", "--b=1")
	assert.ErrorIs(t, err, brent.ErrNotBracketed)

	_, _, err = run(t, "solve", "--expr", "x ** 3 - 2 * x ** 2 - x - 2", "--a=-5", "--b=5", "--maxiter=2")
	assert.ErrorIs(t, err, brent.ErrMaxIter)

	_, _, err = run(t, "solve", "--expr", "x", "--a=-1", "--b=1", "--macheps=-1")
	assert.ErrorContains(t, err, "--macheps")

	_, _, err = run(t, "solve", "--expr", "x", "--a=-1", "--b=1", "--tol=-1")
	assert.ErrorContains(t, err, "--tol")

	_, _, err = run(t, "solve", "--expr", "x", "--a=-1", "--b=1", "--maxiter=-1")
	assert.ErrorContains(t, err, "--maxiter")

	_, _, err = run(t, "solve", "--expr", "x", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")

	_, _, err = run(t, "solve", "--a=-1")
	assert.Error(t, err, "--expr is required")
}

const batchYAML = `
problems:
  - name: cubic
    expr: "x ** 3 - 2 * x ** 2 - x - 2"
    a: -5
    b: 5
  - name: xcos
    expr: "x * cos(x)"
    a: -1
    b: 1
`

func TestBatch_Text(t *testing.T) {
	path := writeFile(t, "set.yaml", batchYAML)

	out, _, err := run(t, "batch", "--file", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)

	header := strings.Fields(lines[0])
	require.GreaterOrEqual(t, len(header), 2)
	assert.Equal(t, "run", header[0])
	_, err = uuid.Parse(header[1])
	assert.NoError(t, err, "run id must be a uuid")

	assert.True(t, strings.HasPrefix(lines[1], "cubic: root=2.65896"), lines[1])
	assert.Equal(t, "xcos: root=0 f=0 iterations=1 evaluations=3 reason=machine-precision", lines[2])
	assert.Equal(t, "2/2 solved", lines[3])
}

func TestBatch_JSONWithFailure(t *testing.T) {
	set := problems.Set{Problems: []problems.Problem{
		{Name: "ok", Expr: "x - 2", A: 0, B: 10},
		{Name: "same-sign", Expr: "x * x + 1", A: -1, B: 1},
	}}
	var buf bytes.Buffer
	require.NoError(t, problems.Encode(&buf, set, problems.TOML))
	path := writeFile(t, "set.toml", buf.String())

	out, logs, err := run(t, "batch", "-f", path, "--format", "json")
	assert.ErrorIs(t, err, errFailed)
	assert.Contains(t, logs, "problem failed")

	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 1, rep.Failed)
	require.Len(t, rep.Results, 2)

	require.NotNil(t, rep.Results[0].Root)
	assert.InDelta(t, 2.0, *rep.Results[0].Root, 1e-9)
	assert.Nil(t, rep.Results[1].Root)
	assert.Contains(t, rep.Results[1].Error, "do not bracket")

	_, err = uuid.Parse(rep.RunID)
	assert.NoError(t, err)
}

func TestBatch_BadFile(t *testing.T) {
	_, _, err := run(t, "batch", "--file", writeFile(t, "set.ini", "x"))
	assert.ErrorIs(t, err, problems.ErrUnsupportedFormat)

	_, _, err = run(t, "batch")
	assert.Error(t, err)
}
