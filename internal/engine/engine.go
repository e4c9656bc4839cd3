package engine

import (
	"context"
	"errors"
	"fmt"

	"gitflow.dev/gitflow/internal/auth"
	"gitflow.dev/gitflow/internal/config"
	flowerrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/merge"
)

// DefaultRemote is used when Options.Remote is empty
const DefaultRemote = "origin"

// Options configures an Engine
type Options struct {
	// Messages supplies merge and tag messages. DefaultMessages when nil.
	Messages MessageProvider
	// Auth supplies credentials for Publish and Track. No credentials when nil.
	Auth auth.Provider
	// Remote is the remote used by Publish and Track
	Remote string
	// Progress receives fetch and push progress. May be nil.
	Progress git.ProgressFunc
	// Logger receives engine output. May be nil.
	Logger Logger
}

// Engine drives the git-flow workflow on top of a Backend
type Engine struct {
	backend  Backend
	config   *config.WorkflowConfig
	merger   *merge.Coordinator
	messages MessageProvider
	auth     auth.Provider
	remote   string
	progress git.ProgressFunc
	log      Logger
}

// New creates an Engine
func New(backend Backend, opts Options) *Engine {
	e := &Engine{
		backend:  backend,
		config:   config.New(backend),
		messages: opts.Messages,
		auth:     opts.Auth,
		remote:   opts.Remote,
		progress: opts.Progress,
		log:      opts.Logger,
	}
	if e.messages == nil {
		e.messages = DefaultMessages{}
	}
	if e.auth == nil {
		e.auth = auth.None{}
	}
	if e.remote == "" {
		e.remote = DefaultRemote
	}
	var mergeLog merge.Logger
	if opts.Logger != nil {
		mergeLog = opts.Logger
	}
	e.merger = merge.NewCoordinator(backend, mergeLog)
	return e
}

// Config returns the workflow configuration view
func (e *Engine) Config() *config.WorkflowConfig {
	return e.config
}

// State reports whether the repository has been initialized
func (e *Engine) State() (State, error) {
	ok, err := e.config.IsInitialized()
	if err != nil {
		return Uninitialized, err
	}
	if ok {
		return Ready, nil
	}
	return Uninitialized, nil
}

func (e *Engine) requireReady() error {
	state, err := e.State()
	if err != nil {
		return err
	}
	if state != Ready {
		return flowerrors.ErrNotInitialized
	}
	return nil
}

// branchName validates kind and name and returns the prefixed branch name
func (e *Engine) branchName(kind config.BranchKind, name string) (string, error) {
	if !kind.Valid() {
		return "", flowerrors.ErrNoActiveKind
	}
	if name == "" {
		return "", fmt.Errorf("%w: %s name is required", flowerrors.ErrState, kind)
	}
	return e.config.BranchName(kind, name)
}

// merge merges source into target, asking for a message only when a merge
// commit will be created
func (e *Engine) merge(ctx context.Context, target, source, message string) (MergeStep, error) {
	step := MergeStep{Source: source, Target: target}

	tip, err := e.backend.FindBranch(source)
	if err != nil {
		return step, err
	}

	if message == "" {
		analysis, err := e.backend.MergeAnalysis(target, tip.Commit)
		if err != nil {
			return step, err
		}
		if analysis == git.AnalysisNormal {
			message, err = e.messages.MergeMessage(source, target)
			if err != nil {
				return step, err
			}
		}
	}

	outcome, err := e.merger.Merge(ctx, target, tip.Commit, message)
	if err != nil {
		return step, err
	}
	step.Outcome = outcome
	if outcome.Kind == merge.Conflict {
		return step, flowerrors.NewMergeConflictError(source, target, outcome.Paths)
	}
	e.info("Merged %s into %s (%s)", source, target, outcome.Kind)
	return step, nil
}

func (e *Engine) info(format string, args ...interface{}) {
	if e.log != nil {
		e.log.Info(format, args...)
	}
}

func (e *Engine) debug(format string, args ...interface{}) {
	if e.log != nil {
		e.log.Debug(format, args...)
	}
}

func isBranchExists(err error) bool {
	return errors.Is(err, flowerrors.ErrBranchExists)
}
