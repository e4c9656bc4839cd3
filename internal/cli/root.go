package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/runtime"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	dir           string
	noInteractive bool
	debug         bool
}

func (g *globalOptions) runtime() runtime.Options {
	return runtime.Options{
		Dir:         g.dir,
		Interactive: !g.noInteractive,
		Debug:       g.debug,
	}
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "git-flow",
		Short: "Workflow in git",
		Long: `git-flow layers the git-flow branching model on top of a git repository.

Feature, bugfix, release, hotfix and support branches are started from and
finished into the develop and master integration branches.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.dir, "directory", "C", "", "Run as if git-flow was started in this directory")
	rootCmd.PersistentFlags().BoolVar(&opts.noInteractive, "no-interactive", false, "Never prompt, use defaults")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write debug output")

	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	for _, kind := range config.AllKinds {
		rootCmd.AddCommand(newKindCmd(opts, kind))
	}

	return rootCmd
}
