package cli

import (
	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/cli/common"
	"gitflow.dev/gitflow/internal/engine"
	"gitflow.dev/gitflow/internal/runtime"
)

// newInitCmd creates the init command
func newInitCmd(g *globalOptions) *cobra.Command {
	var (
		defaults bool
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Setup a git repository for git flow usage",
		Long: `Setup a git repository for git flow usage.

The repository is created when path is not one yet. An empty repository gets
a root commit. You are asked for the integration branch names and branch
prefixes; press enter to accept the default shown in brackets.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := g.runtime()
			opts.Init = true
			if len(args) == 1 {
				opts.Dir = args[0]
			}
			if defaults {
				opts.Interactive = false
			}

			return common.Run(cmd, opts, func(ctx *runtime.Context) error {
				if ctx.Created {
					ctx.Splog.Info("Initialized empty Git repository in %s", ctx.Repo.Workdir())
				}

				return ctx.Engine.Init(ctx.Ctx, engine.InitOptions{Prompter: ctx.Prompter, Force: force})
			})
		},
	}

	cmd.Flags().BoolVarP(&defaults, "defaults", "d", false, "Use default branch names and prefixes")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Ask the configuration questions again")

	return cmd
}
