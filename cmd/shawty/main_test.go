package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lev10x/shawty/errors"
	"github.com/Lev10x/shawty/exec"
	"github.com/Lev10x/shawty/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv captures the process surface of one CLI invocation.
type testEnv struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	fs     *filesystem.FS
	exec   *stubExecutor
}

func newTestEnv() *testEnv {
	return &testEnv{fs: filesystem.NewMemory(), exec: &stubExecutor{}}
}

func (e *testEnv) run(t *testing.T, stdin string, args ...string) int {
	t.Helper()
	a := &app{
		stdout:   &e.stdout,
		stderr:   &e.stderr,
		stdin:    strings.NewReader(stdin),
		fs:       e.fs,
		executor: e.exec,
		exit:     func(code int) { t.Fatalf("unexpected exit(%d)\nstderr: %s", code, e.stderr.String()) },
	}
	return a.run(context.Background(), args)
}

// stubExecutor records Run calls instead of spawning processes.
type stubExecutor struct {
	exec.Executor
	runs [][]string
	err  error
}

func (s *stubExecutor) WithContext(context.Context) exec.Executor { return s }

func (s *stubExecutor) Clone() exec.Executor { return s }

func (s *stubExecutor) Run(args ...string) (*exec.Result, error) {
	s.runs = append(s.runs, args)
	return &exec.Result{}, s.err
}

func TestCwd(t *testing.T) {
	env := newTestEnv()

	require.Equal(t, exitOK, env.run(t, "", "cwd"))
	assert.Equal(t, "/\n", env.stdout.String())
}

func TestMkdirAndLs(t *testing.T) {
	env := newTestEnv()

	require.Equal(t, exitOK, env.run(t, "", "mkdir", "/work"))
	require.Equal(t, exitOK, env.run(t, "", "mkdir", "/work"))
	require.Equal(t, exitOK, env.run(t, "", "mkdir", "/work/b"))
	require.Equal(t, exitOK, env.run(t, "", "mkdir", "/work/a"))

	env.stdout.Reset()
	require.Equal(t, exitOK, env.run(t, "", "ls", "/work"))
	assert.Equal(t, "a/\nb/\n", env.stdout.String())
}

func TestMkdir_MissingParent(t *testing.T) {
	env := newTestEnv()

	code := env.run(t, "", "--json", "mkdir", "/missing/child")
	require.Equal(t, exitIO, code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(env.stderr.Bytes(), &resp))
	assert.Equal(t, string(errors.KindWrite), resp.Kind)
	assert.Equal(t, string(errors.FamilyIO), resp.Family)
	assert.Contains(t, resp.Message, "/missing/child")
}

func TestLs_Missing(t *testing.T) {
	env := newTestEnv()

	require.Equal(t, exitIO, env.run(t, "", "ls", "/nope"))
	assert.Contains(t, env.stderr.String(), "READ_FAILED")
	assert.Empty(t, env.stdout.String())
}

func TestAsk(t *testing.T) {
	env := newTestEnv()

	require.Equal(t, exitOK, env.run(t, "  bob \n", "ask", "Name? "))
	assert.Equal(t, "Name? bob\n", env.stdout.String())
}

func TestHold(t *testing.T) {
	env := newTestEnv()

	require.Equal(t, exitOK, env.run(t, "\n", "hold"))
	assert.Equal(t, "Press 'Enter' to continue...\n", env.stdout.String())
}

func TestDebug(t *testing.T) {
	env := newTestEnv()

	require.Equal(t, exitOK, env.run(t, "", "debug", "hello", "world"))
	assert.Equal(t, "[DEBUG] hello world\n", env.stdout.String())
}

func TestClear(t *testing.T) {
	env := newTestEnv()

	require.Equal(t, exitOK, env.run(t, "", "clear"))
	require.Len(t, env.exec.runs, 1)
}

func TestClear_SpawnFailure(t *testing.T) {
	env := newTestEnv()
	env.exec.err = errors.Command("clear", nil, errors.StageSpawning, assert.AnError)

	require.Equal(t, exitCommand, env.run(t, "", "clear"))
}

func TestUsageError(t *testing.T) {
	env := newTestEnv()

	require.Equal(t, exitUsage, env.run(t, "", "no-such-command"))
	assert.Contains(t, env.stderr.String(), "shawty:")
}

func TestConfigMissing(t *testing.T) {
	env := newTestEnv()

	require.Equal(t, exitIO, env.run(t, "", "--config", "/definitely/not/here.yaml", "cwd"))
}

func TestConfigInvalid(t *testing.T) {
	env := newTestEnv()
	path := filepath.Join(t.TempDir(), "shawty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  timeout: soon\n"), 0o600))

	require.Equal(t, exitFailure, env.run(t, "", "--json", "--config", path, "cwd"))

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(env.stderr.Bytes(), &resp))
	assert.Equal(t, string(errors.KindConfig), resp.Kind)
	assert.Equal(t, "http.timeout", resp.Context["key"])
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: exitOK},
		{name: "io", err: errors.Read("x", assert.AnError), want: exitIO},
		{name: "weird", err: errors.Weird("impossible"), want: exitInvariant},
		{name: "command", err: errors.Command("ls", nil, errors.StageExecuting, assert.AnError), want: exitCommand},
		{name: "config", err: errors.Config("http.timeout", "not a duration", nil), want: exitFailure},
		{name: "example", err: errors.Example(), want: exitFailure},
		{name: "foreign", err: assert.AnError, want: exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
