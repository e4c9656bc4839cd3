package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	"gitflow.dev/gitflow/internal/auth"
	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/engine"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/output"
	"gitflow.dev/gitflow/internal/prompt"
	"gitflow.dev/gitflow/internal/settings"
)

// Options controls how a Context is built
type Options struct {
	// Dir is the repository directory. The working directory when empty.
	Dir string
	// Init creates the repository when Dir is not one yet
	Init bool
	// Interactive allows prompts. It is further limited by settings and the terminal.
	Interactive bool
	// Debug enables debug output
	Debug bool
	// Out receives console output. Defaults to os.Stdout.
	Out io.Writer
	// Settings overrides the loaded user settings
	Settings *settings.Settings
}

// Context provides access to engine and output for commands
type Context struct {
	Ctx         context.Context
	Engine      *engine.Engine
	Repo        *git.Repo
	Splog       *output.Splog
	Settings    *settings.Settings
	Interactive bool
	// Prompter answers init questions
	Prompter config.Prompter
	// Confirmer confirms destructive actions
	Confirmer prompt.Confirmer
	// Created is true when Options.Init had to create the repository
	Created bool

	progress *output.ProgressReporter
}

// NewContext builds a Context for the repository in opts.Dir
func NewContext(ctx context.Context, opts Options) (*Context, error) {
	s := opts.Settings
	if s == nil {
		loaded, err := settings.NewLoader().Load()
		if err != nil {
			return nil, err
		}
		s = loaded
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	splog, err := output.NewSplogWithOptions(output.Options{
		Writer:  out,
		Debug:   opts.Debug || os.Getenv("DEBUG") != "",
		LogFile: output.LogFilePath(s.LogFile),
	})
	if err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return nil, err
		}
	}

	var repo *git.Repo
	var created bool
	if opts.Init {
		repo, created, err = git.OpenOrInit(dir)
	} else {
		repo, err = git.Open(dir)
	}
	if err != nil {
		_ = splog.Close()
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	interactive := opts.Interactive && s.Interactive && output.IsTTY()
	provider, err := auth.FromSettings(s.Credentials, interactive)
	if err != nil {
		_ = splog.Close()
		return nil, err
	}

	c := &Context{
		Ctx:         ctx,
		Repo:        repo,
		Splog:       splog,
		Settings:    s,
		Interactive: interactive,
		Created:     created,
		progress:    output.NewProgressReporter(splog, output.IsTTY()),
	}

	var messages engine.MessageProvider = engine.DefaultMessages{}
	if interactive {
		terminal := prompt.NewTerminal()
		c.Prompter = terminal
		c.Confirmer = prompt.SurveyConfirmer{}
		messages = prompt.Messages{Prompter: terminal}
	} else {
		c.Prompter = prompt.Defaults{}
		c.Confirmer = prompt.AlwaysYes{}
	}

	c.Engine = engine.New(repo, engine.Options{
		Messages: messages,
		Auth:     provider,
		Remote:   s.Remote,
		Progress: c.progress.Report,
		Logger:   splog,
	})

	splog.Debug("repository %s, remote %s, credentials %s", repo.Workdir(), s.Remote, s.Credentials.Method)
	return c, nil
}

// ProgressDone ends any in-place progress line
func (c *Context) ProgressDone() {
	c.progress.Done()
}

// Close releases the log file
func (c *Context) Close() error {
	return c.Splog.Close()
}
