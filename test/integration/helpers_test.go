//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // CREATE_RSPACK_HOME, holds config.yaml
	TemplatesDir string // a templates directory that replaces the built-in set
	WorkDir      string // where projects are created
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so nothing outside them is read or written. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:      t.TempDir(),
		TemplatesDir: t.TempDir(),
		WorkDir:      t.TempDir(),
	}

	t.Setenv("CREATE_RSPACK_HOME", env.HomeDir)
	t.Setenv("CREATE_RSPACK_TEMPLATES_DIR", "")
	t.Setenv("CREATE_RSPACK_DEFAULT_TEMPLATE", "")
	t.Setenv("npm_config_user_agent", "")

	return env
}

// setupTemplates writes a templates directory with a manifest and two
// templates, one of them in a directory that does not follow the
// template-<name> convention.
func setupTemplates(t *testing.T, dir string) {
	t.Helper()

	writeFile(t, filepath.Join(dir, "templates.yaml"), `templates:
  - name: vanilla
    title: Vanilla
    description: Plain JavaScript
  - name: lit
    title: Lit
    description: Web components with Lit
    dir: lit-starter
`)

	writeFile(t, filepath.Join(dir, "template-vanilla", "_gitignore"), "node_modules\ndist\n")
	writeFile(t, filepath.Join(dir, "template-vanilla", "package.json"), `{"name":"vanilla","scripts":{"dev":"rspack dev"}}`+"\n")
	writeFile(t, filepath.Join(dir, "template-vanilla", "src", "index.js"), "console.log('hello');\n")

	writeFile(t, filepath.Join(dir, "lit-starter", "_gitignore"), "node_modules\n")
	writeFile(t, filepath.Join(dir, "lit-starter", "package.json"), `{"name":"lit"}`+"\n")
	writeFile(t, filepath.Join(dir, "lit-starter", "src", "my-element.js"), "export class MyElement {}\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
