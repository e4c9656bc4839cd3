package config

import (
	"fmt"

	flowerrors "gitflow.dev/gitflow/internal/errors"
)

// Store reads and writes repository configuration values
type Store interface {
	ConfigGet(key string) (string, bool, error)
	ConfigSet(key, value string) error
}

// Prompter asks the user for a value. An empty answer selects defaultValue.
type Prompter interface {
	Prompt(question, defaultValue string) (string, error)
}

// WorkflowConfig is a typed view over the gitflow.* keys.
// Nothing is cached: every read goes to the store.
type WorkflowConfig struct {
	store Store
}

// New creates a WorkflowConfig backed by store
func New(store Store) *WorkflowConfig {
	return &WorkflowConfig{store: store}
}

func (c *WorkflowConfig) required(key string) (string, error) {
	value, ok, err := c.store.ConfigGet(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", flowerrors.NewConfigMissingError(key)
	}
	return value, nil
}

// Prefix returns the configured prefix for kind
func (c *WorkflowConfig) Prefix(kind BranchKind) (string, error) {
	if !kind.Valid() {
		return "", flowerrors.ErrNoActiveKind
	}
	return c.required(kind.PrefixKey())
}

// BranchName returns prefix + name for kind
func (c *WorkflowConfig) BranchName(kind BranchKind, name string) (string, error) {
	prefix, err := c.Prefix(kind)
	if err != nil {
		return "", err
	}
	return prefix + name, nil
}

// Master returns the production branch name
func (c *WorkflowConfig) Master() (string, error) {
	return c.required(KeyMaster)
}

// Develop returns the integration branch name
func (c *WorkflowConfig) Develop() (string, error) {
	return c.required(KeyDevelop)
}

// Base returns the integration branch kind is started from and compared against
func (c *WorkflowConfig) Base(kind BranchKind) (string, error) {
	if kind.BasedOnMaster() {
		return c.Master()
	}
	return c.Develop()
}

// VersionTagPrefix returns the version tag prefix. An unset prefix reads as "".
func (c *WorkflowConfig) VersionTagPrefix() (string, error) {
	value, _, err := c.store.ConfigGet(KeyVersionTag)
	return value, err
}

// HooksPath returns the configured hooks directory
func (c *WorkflowConfig) HooksPath() (string, error) {
	return c.required(KeyHooks)
}

// Set writes a key
func (c *WorkflowConfig) Set(key, value string) error {
	return c.store.ConfigSet(key, value)
}

// Entry is a key and its current value
type Entry struct {
	Key   string
	Value string
	Set   bool
}

// Entries returns every workflow key with its current value, in initialization order
func (c *WorkflowConfig) Entries() ([]Entry, error) {
	var entries []Entry
	for _, s := range Settings("") {
		value, ok, err := c.store.ConfigGet(s.Key)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: s.Key, Value: value, Set: ok})
	}
	return entries, nil
}

// IsInitialized reports whether both integration branch keys are present
func (c *WorkflowConfig) IsInitialized() (bool, error) {
	for _, key := range []string{KeyMaster, KeyDevelop} {
		_, ok, err := c.store.ConfigGet(key)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Initialize asks for every workflow key in order and stores the answer,
// or the default when the answer is empty. Nothing is written unless every
// answer is valid.
func (c *WorkflowConfig) Initialize(prompter Prompter, hooksDefault string) error {
	settings := Settings(hooksDefault)
	answers := make([]string, len(settings))
	for i, s := range settings {
		answer, err := prompter.Prompt(s.Question, s.Default)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", s.Key, err)
		}
		if answer == "" {
			answer = s.Default
		}
		answers[i] = answer
	}

	// master and develop are the first two settings
	if answers[0] == answers[1] {
		return fmt.Errorf("%w: develop branch must differ from master branch %q", flowerrors.ErrState, answers[0])
	}

	for i, s := range settings {
		if err := c.store.ConfigSet(s.Key, answers[i]); err != nil {
			return err
		}
	}
	return nil
}
