package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataobject/types"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	out, err := execute(t, "eval", `"5" + 6`)
	require.NoError(t, err)
	assert.Equal(t, "11 [Int32]\n", out)
}

func TestEvalCommandWithProps(t *testing.T) {
	out, err := execute(t, "eval", "--set", "Id=256", "--set", "Name=abc", "Total = Id + 1")
	require.NoError(t, err)
	assert.Equal(t, "257 [Int32]\n{Id: 256, Name: abc, Total: 257}\n", out)
}

func TestEvalCommandJoinsArgs(t *testing.T) {
	out, err := execute(t, "eval", "1", "+", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "1.5 [Double]\n", out)
}

func TestEvalCommandErrors(t *testing.T) {
	_, err := execute(t, "eval", `"5" === 5`)
	assert.ErrorIs(t, err, types.ErrTypeMismatch)

	_, err = execute(t, "eval", "--set", "novalue", "1")
	assert.ErrorContains(t, err, "expected key=value")

	_, err = execute(t, "eval", "--set", "=1", "1")
	assert.ErrorIs(t, err, types.ErrInvalidKey)

	_, err = execute(t, "eval")
	assert.Error(t, err)
}

func TestEvalCommandTrace(t *testing.T) {
	out, err := execute(t, "--trace", "--trace-filter", "add", "eval", "1 + 2")
	require.NoError(t, err)
	assert.Equal(t, "3 [Int32]\n", out)
}

func TestConformCommand(t *testing.T) {
	out, err := execute(t, "conform", filepath.Join("..", "..", "conformance", "testdata"))
	require.NoError(t, err)
	assert.Contains(t, out, " passed, 0 failed, 0 skipped")
}

func TestConformCommandFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: broken
tests:
  - name: wrong
    code: 1 + 1
    expect:
      string: "3"
  - name: later
    skip: true
    code: 1 + 1
    expect:
      string: "2"
`), 0o644))

	out, err := execute(t, "conform", "-v", path)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL broken.yaml: wrong")
	assert.Contains(t, out, "SKIP broken.yaml: later (skipped)")
	assert.Contains(t, out, "0 passed, 1 failed, 1 skipped (2 total)")
}

func TestInspectCommand(t *testing.T) {
	out, err := execute(t, "inspect", "256", "abc", "2147483648", "TRUE")
	require.NoError(t, err)

	assert.Contains(t, out, "TEXT")
	assert.Contains(t, out, "[Int32 from String]")
	assert.Contains(t, out, "[String]")
	assert.Contains(t, out, "[Double from String]")
	assert.Contains(t, out, "[Boolean from String]")
	assert.Contains(t, out, "E_CAST")
}
