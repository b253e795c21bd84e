// Package integration provides CLI integration tests for till.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

var (
	// tillBin is the path to the built till binary.
	tillBin string
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

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetTillBin sets the path to the till binary (called from TestMain).
func SetTillBin(path string) {
	tillBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config directory
// and store file.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	StoreFile string
	StoreName string
}

// NewTestEnv creates a new isolated test environment with a JSON store.
func NewTestEnv(t *testing.T) *TestEnv {
	return NewTestEnvFormat(t, "json")
}

// NewTestEnvFormat creates an isolated test environment using the given
// store encoding.
func NewTestEnvFormat(t *testing.T, format string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build till: %v", buildErr)
	}
	if tillBin == "" {
		t.Fatal("till binary not built (tillBin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	storeFile := filepath.Join(tempDir, "store."+format)
	// A unique name per environment catches any cross-test store leakage.
	storeName := "Test Shop " + uuid.NewString()[:8]

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "store_name: " + storeName + "\nformat: " + format + "\nstore_file: " + storeFile + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
		StoreFile: storeFile,
		StoreName: storeName,
	}
}

// CmdResult holds the result of a till command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunTill executes the till CLI with the given arguments.
func (e *TestEnv) RunTill(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir}, args...)
	cmd := exec.Command(tillBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run till: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunTill executes the till CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunTill(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunTill(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("till %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
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

// Item mirrors the item entity for JSON parsing.
type Item struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Creator  string `json:"creator"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Quantity int64  `json:"quantity"`
	Year     int64  `json:"year"`
}

// Transaction mirrors the transaction entity for JSON parsing.
type Transaction struct {
	ID         int64  `json:"id"`
	ItemID     int64  `json:"item_id"`
	CustomerID int64  `json:"customer_id"`
	StaffID    int64  `json:"staff_id"`
	Quantity   int64  `json:"quantity"`
	Total      string `json:"total"`
}

// Summary mirrors the info command output for JSON parsing.
type Summary struct {
	Name           string `json:"name"`
	Items          int    `json:"items"`
	Staff          int    `json:"staff"`
	Customers      int    `json:"customers"`
	Transactions   int    `json:"transactions"`
	InventoryValue string `json:"inventory_value"`
	Revenue        string `json:"revenue"`
}
