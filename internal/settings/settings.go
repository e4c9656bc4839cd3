// Package settings loads per-user process settings for git-flow.
//
// Settings are loaded with Viper from a YAML file and GITFLOW_* environment
// variables. Repository workflow configuration (branch names and prefixes)
// is not stored here; it lives in the repository's git config.
//
// Priority (highest to lowest):
//  1. Environment variables (GITFLOW_ prefix, nested keys joined with _)
//  2. Config file named by GITFLOW_CONFIG
//  3. $XDG_CONFIG_HOME/git-flow/config.yaml (or the platform user config dir)
//  4. [Default] values
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings is the root settings container
type Settings struct {
	// Remote is the remote used by publish and track
	Remote string `mapstructure:"remote"`

	// LogFile enables a rotating debug log when set
	LogFile string `mapstructure:"log_file"`

	// Interactive allows prompts when stdin is a terminal
	Interactive bool `mapstructure:"interactive"`

	Credentials Credentials `mapstructure:"credentials"`
}

// Credentials selects how fetch and push authenticate
type Credentials struct {
	// Method is one of none, token, ssh-key, ssh-agent, interactive
	Method     string `mapstructure:"method"`
	Username   string `mapstructure:"username"`
	TokenEnv   string `mapstructure:"token_env"`
	SSHKeyPath string `mapstructure:"ssh_key_path"`
}

// Default returns the settings used when nothing is configured
func Default() *Settings {
	return &Settings{
		Remote:      "origin",
		Interactive: true,
		Credentials: Credentials{
			Method:   "none",
			TokenEnv: "GITFLOW_TOKEN",
		},
	}
}

// Loader handles Viper-based settings loading
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with defaults and environment bindings applied
func NewLoader() *Loader {
	v := viper.New()

	d := Default()
	v.SetDefault("remote", d.Remote)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("interactive", d.Interactive)
	v.SetDefault("credentials.method", d.Credentials.Method)
	v.SetDefault("credentials.username", d.Credentials.Username)
	v.SetDefault("credentials.token_env", d.Credentials.TokenEnv)
	v.SetDefault("credentials.ssh_key_path", d.Credentials.SSHKeyPath)

	v.SetEnvPrefix("GITFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// Load reads settings from the default locations. A missing file is not an error.
func (l *Loader) Load() (*Settings, error) {
	if path := os.Getenv("GITFLOW_CONFIG"); path != "" {
		return l.LoadFromFile(path)
	}

	if dir := userConfigDir(); dir != "" {
		l.v.AddConfigPath(filepath.Join(dir, "git-flow"))
	}
	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return l.unmarshal()
}

// LoadFromFile reads settings from an explicit file
func (l *Loader) LoadFromFile(path string) (*Settings, error) {
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return l.unmarshal()
}

// ConfigFileUsed returns the settings file that was read, if any
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) unmarshal() (*Settings, error) {
	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error parsing settings: %w", err)
	}
	return &s, nil
}

func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return dir
}
