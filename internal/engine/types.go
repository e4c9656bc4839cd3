package engine

import (
	"fmt"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/merge"
)

// State is the workflow state of a repository
type State int

const (
	// Uninitialized means the gitflow.branch.* keys are missing
	Uninitialized State = iota
	// Ready means init has run
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "uninitialized"
}

// InitOptions controls Init
type InitOptions struct {
	// Prompter answers the configuration questions
	Prompter config.Prompter
	// Force asks the configuration questions again on an initialized repository
	Force bool
}

// StartOptions controls Start
type StartOptions struct {
	// Base is the branch or commit to start from. HEAD when empty.
	Base string
}

// FinishOptions controls Finish. Empty messages come from the MessageProvider.
type FinishOptions struct {
	Message          string
	BackMergeMessage string
	Tag              string
	TagMessage       string
	NoTag            bool
	KeepBranch       bool
}

// DeleteOptions controls Delete
type DeleteOptions struct {
	// Force deletes branches that are not merged into their base
	Force bool
}

// MergeStep records one merge performed by Finish
type MergeStep struct {
	Source  string
	Target  string
	Outcome merge.Outcome
}

// FinishResult describes what Finish did
type FinishResult struct {
	Branch  string
	Merges  []MergeStep
	Tag     string
	Deleted bool
}

// ListedBranch is a workflow branch of one kind
type ListedBranch struct {
	Name    string
	Short   string
	Commit  string
	Current bool
}

// Op is a workflow command
type Op int

const (
	// OpInit initializes the repository
	OpInit Op = iota
	// OpStart starts a branch
	OpStart
	// OpFinish finishes a branch
	OpFinish
)

func (o Op) String() string {
	switch o {
	case OpInit:
		return "init"
	case OpStart:
		return "start"
	case OpFinish:
		return "finish"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Command is a parsed workflow command. Start and Finish need a Kind.
type Command struct {
	Op     Op
	Kind   *config.BranchKind
	Name   string
	Init   InitOptions
	Start  StartOptions
	Finish FinishOptions
}

// Result is the result of running a Command
type Result struct {
	Branch git.Branch
	Finish *FinishResult
}

// DefaultMessages supplies non-interactive messages
type DefaultMessages struct{}

// MergeMessage implements MessageProvider
func (DefaultMessages) MergeMessage(source, target string) (string, error) {
	return fmt.Sprintf("Merge branch '%s' into %s", source, target), nil
}

// TagName implements MessageProvider
func (DefaultMessages) TagName(suggested string) (string, error) {
	return suggested, nil
}

// TagMessage implements MessageProvider
func (DefaultMessages) TagMessage(tag string) (string, error) {
	return "Release " + tag, nil
}
