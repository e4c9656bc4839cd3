package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"gitflow.dev/gitflow/internal/cli"
	"gitflow.dev/gitflow/testhelpers"
)

// newCLIScene creates a scene with user settings and the log file isolated from the host
func newCLIScene(t *testing.T, setup testhelpers.SceneSetup) *testhelpers.Scene {
	t.Helper()
	scene := testhelpers.NewScene(t, setup)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("GITFLOW_CONFIG", "")
	t.Setenv("GITFLOW_LOG_FILE", filepath.Join(home, "git-flow.log"))
	return scene
}

// runGitFlow runs the command tree in-process against dir
func runGitFlow(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd("test", "none", "unknown")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"-C", dir, "--no-interactive"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

// initScene returns an initialized scene with develop checked out
func initScene(t *testing.T) *testhelpers.Scene {
	t.Helper()
	scene := newCLIScene(t, testhelpers.BasicSceneSetup)
	if out, err := runGitFlow(t, scene.Dir, "init", "--defaults"); err != nil {
		t.Fatalf("init failed: %v\n%s", err, out)
	}
	return scene
}
