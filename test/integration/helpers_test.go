//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ProjectDir string // mock project root
	PluginsDir string // plugins root inside the project
}

// setupTestEnv creates an isolated project layout and points the plugins_dir
// override at it so every operation is sandboxed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	project := t.TempDir()
	plugins := filepath.Join(project, "src", "plugins")
	if err := os.MkdirAll(plugins, 0755); err != nil {
		t.Fatalf("creating plugins dir: %v", err)
	}

	t.Setenv("SCHEMATIC_PLUGINS_DIR", plugins)

	return &testEnv{ProjectDir: project, PluginsDir: plugins}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected directory %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("%s is not a directory", path)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
	if info.IsDir() {
		t.Fatalf("%s is a directory, expected a file", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("%s should not exist", path)
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
