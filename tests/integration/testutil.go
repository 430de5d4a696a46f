// Package integration runs the storedesk binary end to end.
package integration

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// storedeskBin is the path to the built storedesk binary.
	storedeskBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot walks up from the working directory to the directory
// holding go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// buildBinary compiles cmd/storedesk into dir.
func buildBinary(dir string) (string, error) {
	root, err := FindProjectRoot()
	if err != nil {
		return "", err
	}
	bin := filepath.Join(dir, "storedesk")
	cmd := exec.Command("go", "build", "-o", bin, "./cmd/storedesk")
	cmd.Dir = root
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", &BuildError{Err: err, Output: string(output)}
	}
	return bin, nil
}

// TestEnv provides an isolated config and data directory.
type TestEnv struct {
	t       *testing.T
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("failed to build storedesk: %v", buildErr)
	}
	if storedeskBin == "" {
		t.Fatal("storedesk binary not built")
	}
	dir := t.TempDir()
	return &TestEnv{
		t:       t,
		Config:  filepath.Join(dir, "config"),
		DataDir: filepath.Join(dir, "data"),
	}
}

// CmdResult holds the result of one storedesk run.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes storedesk with the environment's directories.
func (e *TestEnv) Run(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(storedeskBin, allArgs...)
	cmd.Env = append(os.Environ(), "STOREDESK_LOG_LEVEL=error")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			e.t.Fatalf("failed to run storedesk: %v", err)
		}
		exitCode = exitErr.ExitCode()
	}
	return CmdResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: exitCode}
}

// MustRun executes storedesk and fails the test on a non-zero exit.
func (e *TestEnv) MustRun(args ...string) CmdResult {
	e.t.Helper()
	result := e.Run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("storedesk %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// WriteFile writes content to name inside a fresh temp directory.
func (e *TestEnv) WriteFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}
