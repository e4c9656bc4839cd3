package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"gitflow.dev/gitflow/internal/auth"
	"gitflow.dev/gitflow/internal/settings"
)

func TestTokenProvider(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	p := auth.NewTokenProvider("", oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "secret"}))

	method, err := p.AuthMethod(ctx, "https://example.com/repo.git")
	require.NoError(t, err)
	require.Equal(t, &http.BasicAuth{Username: auth.DefaultTokenUsername, Password: "secret"}, method)

	method, err = p.AuthMethod(ctx, "git@example.com:repo.git")
	require.NoError(t, err)
	require.Nil(t, method, "tokens are only sent over http")
}

func TestTokenProviderEmptyToken(t *testing.T) {
	t.Parallel()
	p := auth.NewTokenProvider("me", oauth2.StaticTokenSource(&oauth2.Token{}))

	_, err := p.AuthMethod(context.Background(), "https://example.com/repo.git")
	require.Error(t, err)
}

func TestEnvTokenSource(t *testing.T) {
	t.Setenv("GITFLOW_TEST_TOKEN", "from-env")

	token, err := auth.EnvTokenSource("GITFLOW_TEST_TOKEN").Token()
	require.NoError(t, err)
	require.Equal(t, "from-env", token.AccessToken)
}

func TestInteractiveProvider(t *testing.T) {
	t.Parallel()

	p := &auth.InteractiveProvider{
		Username: "alice",
		Ask: func(qs []*survey.Question, response interface{}, _ ...survey.AskOpt) error {
			require.Len(t, qs, 2)
			answers := response.(*struct {
				Username string
				Password string
			})
			answers.Password = "hunter2"
			return nil
		},
	}

	method, err := p.AuthMethod(context.Background(), "https://example.com/repo.git")
	require.NoError(t, err)
	require.Equal(t, &http.BasicAuth{Username: "alice", Password: "hunter2"}, method)
}

func TestInteractiveProviderCancelled(t *testing.T) {
	t.Parallel()

	p := &auth.InteractiveProvider{
		Ask: func([]*survey.Question, interface{}, ...survey.AskOpt) error {
			return errors.New("interrupt")
		},
	}

	_, err := p.AuthMethod(context.Background(), "https://example.com/repo.git")
	require.Error(t, err)
}

func TestSSHProvidersSkipLocalRemotes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	method, err := (&auth.SSHKeyProvider{KeyPath: "/does/not/exist"}).AuthMethod(ctx, "/tmp/remote.git")
	require.NoError(t, err)
	require.Nil(t, method)

	_, err = (&auth.SSHKeyProvider{KeyPath: "/does/not/exist"}).AuthMethod(ctx, "git@example.com:repo.git")
	require.Error(t, err)
}

func TestFromSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		creds       settings.Credentials
		interactive bool
		want        interface{}
		wantErr     bool
	}{
		{name: "default", creds: settings.Credentials{}, want: auth.None{}},
		{name: "none", creds: settings.Credentials{Method: auth.MethodNone}, want: auth.None{}},
		{name: "token", creds: settings.Credentials{Method: auth.MethodToken, TokenEnv: "X"}, want: &auth.TokenProvider{}},
		{name: "ssh key", creds: settings.Credentials{Method: auth.MethodSSHKey, SSHKeyPath: "/k"}, want: &auth.SSHKeyProvider{}},
		{name: "ssh key without path", creds: settings.Credentials{Method: auth.MethodSSHKey}, wantErr: true},
		{name: "agent", creds: settings.Credentials{Method: auth.MethodSSHAgent}, want: &auth.SSHAgentProvider{}},
		{name: "interactive", creds: settings.Credentials{Method: auth.MethodInteractive}, interactive: true, want: &auth.InteractiveProvider{}},
		{name: "interactive without tty", creds: settings.Credentials{Method: auth.MethodInteractive}, wantErr: true},
		{name: "unknown", creds: settings.Credentials{Method: "kerberos"}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := auth.FromSettings(tt.creds, tt.interactive)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.IsType(t, tt.want, p)
		})
	}
}
