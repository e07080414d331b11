package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/voronoi/internal/config"
)

// isolate runs the test in an empty working directory with no VORONOI_*
// variables and no per-user theme file.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	for _, k := range []string{
		config.EnvWidth, config.EnvHeight, config.EnvPoints, config.EnvTheme,
		config.EnvMetric, config.EnvConfig, config.EnvOutput, config.EnvWorkers,
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

// execute runs the root command with args and returns what it wrote.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
