//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to the isolated directories one provisioning run
// touches.
type testEnv struct {
	ConfDir string
	PidDir  string
	LogDir  string
}

// setupTestEnv creates isolated temp directories for one materialization.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root := t.TempDir()
	return &testEnv{
		ConfDir: filepath.Join(root, "conf"),
		PidDir:  filepath.Join(root, "pid"),
		LogDir:  filepath.Join(root, "log"),
	}
}

// writeFile writes content to path, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// paramsYAML renders a minimal valid parameter file for env.
func paramsYAML(env *testEnv) string {
	return `format_version: "1.0.0"
conf_dir: ` + env.ConfDir + `
pid_dir: ` + env.PidDir + `
log_dir: ` + env.LogDir + `
configurations:
  accumulo-site:
    instance.zookeeper.host: "zk1:2181"
    instance.dfs.dir: /accumulo
    general.classpaths: /usr/lib/accumulo/lib
    instance.secret: hush
`
}

// assertExists fails the test if path does not exist.
func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

// assertNotExists fails the test if path exists.
func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent", path)
	}
}
