// Package auth supplies credentials for fetch and push.
// Credentials are resolved per remote URL and never written to disk.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"golang.org/x/oauth2"
)

// Method names accepted in settings
const (
	MethodNone        = "none"
	MethodToken       = "token"
	MethodSSHKey      = "ssh-key"
	MethodSSHAgent    = "ssh-agent"
	MethodInteractive = "interactive"
)

// DefaultTokenUsername is sent as the basic-auth user when authenticating with a token
const DefaultTokenUsername = "x-access-token"

// Provider resolves the credentials to use for a remote URL.
// A nil AuthMethod means the transport's own defaults apply.
type Provider interface {
	AuthMethod(ctx context.Context, url string) (transport.AuthMethod, error)
}

// None never supplies credentials
type None struct{}

// AuthMethod implements Provider
func (None) AuthMethod(context.Context, string) (transport.AuthMethod, error) {
	return nil, nil
}

// TokenProvider authenticates HTTP(S) remotes with an OAuth2 bearer token sent as basic auth
type TokenProvider struct {
	Username string
	Source   oauth2.TokenSource
}

// NewTokenProvider creates a TokenProvider for the given token source
func NewTokenProvider(username string, source oauth2.TokenSource) *TokenProvider {
	if username == "" {
		username = DefaultTokenUsername
	}
	return &TokenProvider{Username: username, Source: source}
}

// AuthMethod implements Provider
func (p *TokenProvider) AuthMethod(_ context.Context, url string) (transport.AuthMethod, error) {
	if !isHTTPURL(url) {
		return nil, nil
	}
	token, err := p.Source.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain token: %w", err)
	}
	if !token.Valid() {
		return nil, errors.New("token is empty or expired")
	}
	return &http.BasicAuth{Username: p.Username, Password: token.AccessToken}, nil
}

// EnvTokenSource reads a token from an environment variable, falling back to
// the gh CLI when the variable is unset.
func EnvTokenSource(envVar string) oauth2.TokenSource {
	return oauth2.ReuseTokenSource(nil, envTokenSource{envVar: envVar})
}

type envTokenSource struct {
	envVar string
}

func (s envTokenSource) Token() (*oauth2.Token, error) {
	if s.envVar != "" {
		if token := os.Getenv(s.envVar); token != "" {
			return &oauth2.Token{AccessToken: token}, nil
		}
	}

	output, err := exec.Command("gh", "auth", "token").Output()
	if err != nil {
		return nil, fmt.Errorf("no token in $%s and gh auth token failed: %w", s.envVar, err)
	}
	token := strings.TrimSpace(string(output))
	if token == "" {
		return nil, errors.New("empty token")
	}
	return &oauth2.Token{AccessToken: token}, nil
}

// SSHKeyProvider authenticates SSH remotes with a private key file
type SSHKeyProvider struct {
	User       string
	KeyPath    string
	Passphrase string
}

// AuthMethod implements Provider
func (p *SSHKeyProvider) AuthMethod(_ context.Context, url string) (transport.AuthMethod, error) {
	if isHTTPURL(url) || isLocalURL(url) {
		return nil, nil
	}
	user := p.User
	if user == "" {
		user = ssh.DefaultUsername
	}
	keys, err := ssh.NewPublicKeysFromFile(user, p.KeyPath, p.Passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to load ssh key %s: %w", p.KeyPath, err)
	}
	return keys, nil
}

// SSHAgentProvider authenticates SSH remotes through the running ssh-agent
type SSHAgentProvider struct {
	User string
}

// AuthMethod implements Provider
func (p *SSHAgentProvider) AuthMethod(_ context.Context, url string) (transport.AuthMethod, error) {
	if isHTTPURL(url) || isLocalURL(url) {
		return nil, nil
	}
	user := p.User
	if user == "" {
		user = ssh.DefaultUsername
	}
	agent, err := ssh.NewSSHAgentAuth(user)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ssh-agent: %w", err)
	}
	return agent, nil
}

// InteractiveProvider asks for a username and password on the terminal
type InteractiveProvider struct {
	Username string
	// Ask is replaced in tests
	Ask func(qs []*survey.Question, response interface{}, opts ...survey.AskOpt) error
}

// AuthMethod implements Provider
func (p *InteractiveProvider) AuthMethod(_ context.Context, url string) (transport.AuthMethod, error) {
	if !isHTTPURL(url) {
		return nil, nil
	}
	ask := p.Ask
	if ask == nil {
		ask = survey.Ask
	}

	answers := struct {
		Username string
		Password string
	}{Username: p.Username}

	qs := []*survey.Question{
		{
			Name:     "username",
			Prompt:   &survey.Input{Message: fmt.Sprintf("Username for %s:", url), Default: p.Username},
			Validate: survey.Required,
		},
		{
			Name:   "password",
			Prompt: &survey.Password{Message: "Password or token:"},
		},
	}
	if err := ask(qs, &answers); err != nil {
		return nil, fmt.Errorf("credential prompt cancelled: %w", err)
	}
	return &http.BasicAuth{Username: answers.Username, Password: answers.Password}, nil
}

func isHTTPURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

func isLocalURL(url string) bool {
	return strings.HasPrefix(url, "file://") || strings.HasPrefix(url, "/") || strings.HasPrefix(url, ".")
}
