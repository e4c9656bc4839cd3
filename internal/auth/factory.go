package auth

import (
	"fmt"

	"gitflow.dev/gitflow/internal/settings"
)

// FromSettings builds the Provider selected by the credentials settings
func FromSettings(s settings.Credentials, interactive bool) (Provider, error) {
	switch s.Method {
	case "", MethodNone:
		return None{}, nil
	case MethodToken:
		return NewTokenProvider(s.Username, EnvTokenSource(s.TokenEnv)), nil
	case MethodSSHKey:
		if s.SSHKeyPath == "" {
			return nil, fmt.Errorf("credentials.ssh_key_path is required for method %s", MethodSSHKey)
		}
		return &SSHKeyProvider{User: s.Username, KeyPath: s.SSHKeyPath}, nil
	case MethodSSHAgent:
		return &SSHAgentProvider{User: s.Username}, nil
	case MethodInteractive:
		if !interactive {
			return nil, fmt.Errorf("credential method %s needs an interactive terminal", MethodInteractive)
		}
		return &InteractiveProvider{Username: s.Username}, nil
	default:
		return nil, fmt.Errorf("unknown credential method %q", s.Method)
	}
}
