package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withStdin temporarily replaces os.Stdin for the duration of fn.
func withStdin(t *testing.T, content string, fn func()) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = old }()

	go func() {
		defer w.Close()
		w.WriteString(content)
	}()
	fn()
}

func TestTwoOptCommandViaStdinMatrix(t *testing.T) {
	cmd := newSolverCommand(solverCommandSpecs[3]) // two_opt
	cmd.SetArgs([]string{"--disable_progress"})

	var out bytes.Buffer
	withStdin(t, "5\n0 0\n0 0.5\n0 1\n1 1\n1 0\n", func() {
		origStdout := os.Stdout
		r, w, _ := os.Pipe()
		os.Stdout = w
		err := cmd.Execute()
		w.Close()
		os.Stdout = origStdout
		require.NoError(t, err)
		buf := make([]byte, 4096)
		n, _ := r.Read(buf)
		out.Write(buf[:n])
	})

	assert.Contains(t, out.String(), "4.00000 0")
}

func TestSolverCommandAliasesRegistered(t *testing.T) {
	cmd := newSolverCommand(solverCommandSpecs[0])
	assert.Equal(t, "bellman_karp", cmd.Use)
	assert.Contains(t, cmd.Aliases, "bhk")
}
