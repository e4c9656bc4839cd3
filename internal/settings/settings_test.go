package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, "origin", s.Remote)
	assert.True(t, s.Interactive)
	assert.Equal(t, "none", s.Credentials.Method)
	assert.Equal(t, "GITFLOW_TOKEN", s.Credentials.TokenEnv)
}

func TestLoader_LoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `
remote: upstream
log_file: /tmp/git-flow.log
credentials:
  method: ssh-key
  ssh_key_path: /home/me/.ssh/id_ed25519
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	loader := NewLoader()
	s, err := loader.LoadFromFile(configPath)

	require.NoError(t, err)
	assert.Equal(t, "upstream", s.Remote)
	assert.Equal(t, "/tmp/git-flow.log", s.LogFile)
	assert.Equal(t, "ssh-key", s.Credentials.Method)
	assert.Equal(t, "/home/me/.ssh/id_ed25519", s.Credentials.SSHKeyPath)
	assert.Equal(t, "GITFLOW_TOKEN", s.Credentials.TokenEnv, "unset keys keep defaults")
	assert.Equal(t, configPath, loader.ConfigFileUsed())
}

func TestLoader_Load_WithEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GITFLOW_CONFIG", "")
	t.Setenv("GITFLOW_REMOTE", "fork")
	t.Setenv("GITFLOW_CREDENTIALS_METHOD", "token")

	s, err := NewLoader().Load()

	require.NoError(t, err)
	assert.Equal(t, "fork", s.Remote)
	assert.Equal(t, "token", s.Credentials.Method)
}

func TestLoader_Load_XDGFile(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("GITFLOW_CONFIG", "")
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "git-flow"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "git-flow", "config.yaml"), []byte("interactive: false\n"), 0644))

	s, err := NewLoader().Load()

	require.NoError(t, err)
	assert.False(t, s.Interactive)
}

func TestLoader_Load_DefaultsWithNoConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GITFLOW_CONFIG", "")

	s, err := NewLoader().Load()

	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoader_LoadFromFile_NonExistent(t *testing.T) {
	_, err := NewLoader().LoadFromFile("/nonexistent/path/config.yaml")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
