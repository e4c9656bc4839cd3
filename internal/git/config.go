package git

import (
	"context"
	"strings"

	gitconfig "github.com/go-git/go-git/v5/config"
	format "github.com/go-git/go-git/v5/plumbing/format/config"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// sections whose subsections go-git marshals from gitconfig.Config fields
var typedSections = map[string]bool{
	"branch":    true,
	"remote":    true,
	"submodule": true,
	"url":       true,
}

// splitConfigKey splits "section.subsection.option" into its parts.
// Keys with two parts have no subsection.
func splitConfigKey(key string) (section, subsection, option string, ok bool) {
	first := strings.Index(key, ".")
	last := strings.LastIndex(key, ".")
	if first <= 0 || last == len(key)-1 {
		return "", "", "", false
	}
	section = key[:first]
	option = key[last+1:]
	if first != last {
		subsection = key[first+1 : last]
	}
	return section, subsection, option, true
}

// ConfigGet reads a key from the repository-local config.
// The config is re-read on every call so edits made by other tools are visible.
func (r *Repo) ConfigGet(key string) (string, bool, error) {
	section, subsection, option, ok := splitConfigKey(key)
	if !ok {
		return "", false, flowerrors.NewBackendError("config get", errInvalidKey(key))
	}

	cfg, err := r.repo.Config()
	if err != nil {
		return "", false, flowerrors.NewIoError("config", err)
	}

	if !cfg.Raw.HasSection(section) {
		return "", false, nil
	}
	sec := cfg.Raw.Section(section)
	var opts format.Options
	if subsection == "" {
		opts = sec.Options
	} else {
		if !sec.HasSubsection(subsection) {
			return "", false, nil
		}
		opts = sec.Subsection(subsection).Options
	}
	if !opts.Has(option) {
		return "", false, nil
	}
	return opts.Get(option), true, nil
}

// ConfigSet writes a key to the repository-local config
func (r *Repo) ConfigSet(key, value string) error {
	section, subsection, option, ok := splitConfigKey(key)
	if !ok {
		return flowerrors.NewBackendError("config set", errInvalidKey(key))
	}

	if subsection != "" && typedSections[section] {
		// go-git rebuilds these subsections from its typed maps and drops raw options
		if _, err := r.runner.Run(context.Background(), "config", "--local", key, value); err != nil {
			return flowerrors.NewBackendError("config set", err)
		}
		return nil
	}

	cfg, err := r.repo.Config()
	if err != nil {
		return flowerrors.NewIoError("config", err)
	}

	cfg.Raw.SetOption(section, subsection, option, value)
	if err := r.repo.Storer.SetConfig(cfg); err != nil {
		return flowerrors.NewIoError("config", err)
	}
	return nil
}

// signatureIdentity returns the configured committer identity, falling back to a fixed one
func (r *Repo) signatureIdentity() (name, email string) {
	name, email = "git-flow", "git-flow@localhost"
	for _, scope := range []gitconfig.Scope{gitconfig.LocalScope, gitconfig.GlobalScope} {
		cfg, err := r.repo.ConfigScoped(scope)
		if err != nil {
			continue
		}
		if cfg.User.Name != "" {
			name = cfg.User.Name
		}
		if cfg.User.Email != "" {
			email = cfg.User.Email
		}
		if cfg.User.Name != "" || cfg.User.Email != "" {
			break
		}
	}
	return name, email
}

type errInvalidKey string

func (e errInvalidKey) Error() string {
	return "invalid config key " + string(e)
}
