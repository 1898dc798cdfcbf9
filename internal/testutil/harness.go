// Package testutil provides an end-to-end harness that runs the full
// pipeline, from sheet source on disk to rendered report, with captured
// output.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/calcsheet/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of one end-to-end run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// RunSheet writes source to a temporary sheet file and runs the
// application on it. mutate, when given, adjusts the default config
// before the run.
func RunSheet(t *testing.T, source string, mutate ...func(*app.Config)) *HarnessResult {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.hcl")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return RunPath(t, path, mutate...)
}

// RunSheetDir writes each named source file into one temporary directory
// and runs the application on the directory.
func RunSheetDir(t *testing.T, files map[string]string, mutate ...func(*app.Config)) *HarnessResult {
	t.Helper()
	dir := t.TempDir()
	for name, source := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(source), 0o644))
	}
	return RunPath(t, dir, mutate...)
}

// RunPath runs the application on an existing sheet path.
func RunPath(t *testing.T, path string, mutate ...func(*app.Config)) *HarnessResult {
	t.Helper()

	cfg := app.Config{
		SheetPath: path,
		Format:    "latex",
		Style:     "standard",
		LogFormat: "text",
		LogLevel:  "debug",
	}
	for _, m := range mutate {
		m(&cfg)
	}
	config, err := app.NewConfig(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	var logs SafeBuffer
	a := app.NewAppWithLogWriter(&out, &logs, config)
	runErr := a.Run(context.Background())

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
	}
}
