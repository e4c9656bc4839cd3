// Package errors provides sentinel errors and custom error types for git-flow.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrState indicates a command was invoked out of order or without the
	// information it needs (no branch kind, not initialized, dirty worktree).
	ErrState = errors.New("invalid workflow state")

	// ErrNoActiveKind indicates start/finish was invoked without a branch kind
	ErrNoActiveKind = fmt.Errorf("%w: no branch kind selected", ErrState)

	// ErrNotInitialized indicates the repository has no git-flow configuration
	ErrNotInitialized = fmt.Errorf("%w: git-flow is not initialized, run 'git-flow init' first", ErrState)

	// ErrDirtyWorktree indicates the working tree has uncommitted changes
	ErrDirtyWorktree = fmt.Errorf("%w: working tree contains uncommitted changes", ErrState)

	// ErrConfigMissing indicates a required gitflow.* key was never set
	ErrConfigMissing = errors.New("configuration missing")

	// ErrBranchExists indicates a branch name is already taken
	ErrBranchExists = errors.New("branch already exists")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchNotMerged indicates a branch still has commits its base lacks
	ErrBranchNotMerged = errors.New("branch not merged")

	// ErrMergeConflict indicates a merge left unresolved paths in the worktree
	ErrMergeConflict = errors.New("merge conflict")

	// ErrRebaseConflict indicates that a rebase operation encountered a conflict
	ErrRebaseConflict = errors.New("rebase conflict")

	// ErrNoHead indicates the repository has no commit to anchor a branch
	ErrNoHead = errors.New("no head found")

	// ErrTagExists indicates a tag name is already taken
	ErrTagExists = errors.New("tag already exists")

	// ErrBackend indicates a failure surfaced by the repository backend
	ErrBackend = errors.New("backend error")

	// ErrIO indicates a storage access failure
	ErrIO = errors.New("io error")
)

// ConfigMissingError represents a gitflow.* key that was never configured
type ConfigMissingError struct {
	Key string
}

func (e *ConfigMissingError) Error() string {
	return fmt.Sprintf("configuration key %s is not set, run 'git-flow init'", e.Key)
}

// Is returns true if the target error is ErrConfigMissing
func (e *ConfigMissingError) Is(target error) bool {
	return target == ErrConfigMissing
}

// NewConfigMissingError creates a new ConfigMissingError
func NewConfigMissingError(key string) *ConfigMissingError {
	return &ConfigMissingError{Key: key}
}

// BranchExistsError represents an attempt to create a branch that already exists
type BranchExistsError struct {
	BranchName string
}

func (e *BranchExistsError) Error() string {
	return fmt.Sprintf("branch %s already exists", e.BranchName)
}

// Is returns true if the target error is ErrBranchExists
func (e *BranchExistsError) Is(target error) bool {
	return target == ErrBranchExists
}

// NewBranchExistsError creates a new BranchExistsError
func NewBranchExistsError(branchName string) *BranchExistsError {
	return &BranchExistsError{BranchName: branchName}
}

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// MergeConflictError represents a merge that stopped with unresolved paths.
// The conflicting state is left checked out for the user to resolve.
type MergeConflictError struct {
	Source string
	Target string
	Paths  []string
}

func (e *MergeConflictError) Error() string {
	msg := fmt.Sprintf("merge conflict merging %s into %s", e.Source, e.Target)
	if len(e.Paths) > 0 {
		msg += fmt.Sprintf(": %s", strings.Join(e.Paths, ", "))
	}
	return msg
}

// Is returns true if the target error is ErrMergeConflict
func (e *MergeConflictError) Is(target error) bool {
	return target == ErrMergeConflict
}

// NewMergeConflictError creates a new MergeConflictError
func NewMergeConflictError(source, target string, paths []string) *MergeConflictError {
	return &MergeConflictError{
		Source: source,
		Target: target,
		Paths:  paths,
	}
}

// RebaseConflictError represents an error when a rebase encounters a conflict
type RebaseConflictError struct {
	BranchName string
	Message    string
}

func (e *RebaseConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("rebase conflict on branch %s: %s", e.BranchName, e.Message)
	}
	return fmt.Sprintf("rebase conflict on branch %s", e.BranchName)
}

// Is returns true if the target error is ErrRebaseConflict
func (e *RebaseConflictError) Is(target error) bool {
	return target == ErrRebaseConflict
}

// NewRebaseConflictError creates a new RebaseConflictError
func NewRebaseConflictError(branchName string, message string) *RebaseConflictError {
	return &RebaseConflictError{
		BranchName: branchName,
		Message:    message,
	}
}

// BackendError wraps a failure surfaced by the repository backend
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrBackend
func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}

// NewBackendError creates a new BackendError. A nil err yields nil.
func NewBackendError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, Err: err}
}

// IoError wraps a storage access failure
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("io error: %v", e.Err)
	}
	return fmt.Sprintf("io error on %s: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrIO
func (e *IoError) Is(target error) bool {
	return target == ErrIO
}

// NewIoError creates a new IoError
func NewIoError(path string, err error) *IoError {
	return &IoError{Path: path, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrBackend
func (e *GitCommandError) Is(target error) bool {
	return target == ErrBackend
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// Exit codes returned by the git-flow binary
const (
	ExitOK       = 0
	ExitWorkflow = 1
	ExitNoHead   = 2
	ExitBackend  = 3
	ExitIO       = 4
)

// ExitCode maps an error to the process exit code.
// Order matters: a backend failure caused by a missing head still reports no-head.
func ExitCode(err error) int {
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNoHead):
		return ExitNoHead
	case errors.Is(err, ErrIO), errors.As(err, &pathErr):
		return ExitIO
	case errors.Is(err, ErrBackend):
		return ExitBackend
	default:
		return ExitWorkflow
	}
}
