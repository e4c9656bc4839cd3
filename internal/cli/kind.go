package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/cli/common"
	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/engine"
	flowerrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/output"
	"gitflow.dev/gitflow/internal/runtime"
)

// newKindCmd creates the command group for one branch kind
func newKindCmd(g *globalOptions, kind config.BranchKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: fmt.Sprintf("Manage your %s branches", kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, g, kind)
		},
	}

	cmd.AddCommand(
		newStartCmd(g, kind),
		newFinishCmd(g, kind),
		newListCmd(g, kind),
		newPublishCmd(g, kind),
		newTrackCmd(g, kind),
		newDiffCmd(g, kind),
		newRebaseCmd(g, kind),
		newCheckoutCmd(g, kind),
		newDeleteCmd(g, kind),
	)

	return cmd
}

// resolveName returns the name argument, or the current branch's name
// when it belongs to kind
func resolveName(ctx *runtime.Context, kind config.BranchKind, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	prefix, err := ctx.Engine.Config().Prefix(kind)
	if err != nil {
		return "", err
	}
	current, err := ctx.Repo.CurrentBranch()
	if err != nil {
		return "", err
	}
	if current == "" || !strings.HasPrefix(current, prefix) {
		return "", fmt.Errorf("%w: no %s name given and %q is not a %s branch", flowerrors.ErrState, kind, current, kind)
	}
	return strings.TrimPrefix(current, prefix), nil
}

// newStartCmd creates the start command. Support branches need a base branch.
func newStartCmd(g *globalOptions, kind config.BranchKind) *cobra.Command {
	use := "start <name>"
	checkArgs := cobra.ExactArgs(1)
	if kind == config.Support {
		use = "start <name> <base>"
		checkArgs = cobra.ExactArgs(2)
	}

	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Start a new %s branch", kind),
		Args:  checkArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, g.runtime(), func(ctx *runtime.Context) error {
				var opts engine.StartOptions
				if len(args) > 1 {
					opts.Base = args[1]
				}
				_, err := ctx.Engine.Run(ctx.Ctx, engine.Command{
					Op:    engine.OpStart,
					Kind:  &kind,
					Name:  args[0],
					Start: opts,
				})
				return err
			})
		},
	}
}

// newListCmd creates the list command
func newListCmd(g *globalOptions, kind config.BranchKind) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   fmt.Sprintf("List the existing %s branches", kind),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, g, kind)
		},
	}
}

func runList(cmd *cobra.Command, g *globalOptions, kind config.BranchKind) error {
	return common.Run(cmd, g.runtime(), func(ctx *runtime.Context) error {
		branches, err := ctx.Engine.List(kind)
		if err != nil {
			return err
		}
		if len(branches) == 0 {
			ctx.Splog.Info("No %s branches exist.", kind)
			ctx.Splog.Tip("Start one with 'git-flow %s start <name>'", kind)
			return nil
		}
		for _, b := range branches {
			marker := "  "
			if b.Current {
				marker = "* "
			}
			ctx.Splog.Page(marker + output.ColorBranchName(kind.String(), b.Short, b.Current) + "\n")
		}
		return nil
	})
}

// newCheckoutCmd creates the checkout command
func newCheckoutCmd(g *globalOptions, kind config.BranchKind) *cobra.Command {
	return &cobra.Command{
		Use:               "checkout <name>",
		Aliases:           []string{"co"},
		Short:             fmt.Sprintf("Switch to a %s branch", kind),
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: common.CompleteKindBranches(&g.dir, kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, g.runtime(), func(ctx *runtime.Context) error {
				return ctx.Engine.Checkout(ctx.Ctx, kind, args[0])
			})
		},
	}
}

// newDeleteCmd creates the delete command
func newDeleteCmd(g *globalOptions, kind config.BranchKind) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:               "delete <name>",
		Short:             fmt.Sprintf("Delete a %s branch", kind),
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: common.CompleteKindBranches(&g.dir, kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, g.runtime(), func(ctx *runtime.Context) error {
				if force {
					branch, err := ctx.Engine.Config().BranchName(kind, args[0])
					if err != nil {
						return err
					}
					ok, err := ctx.Confirmer.Confirm(fmt.Sprintf("Delete %s even if it is not merged?", branch), false)
					if err != nil {
						return err
					}
					if !ok {
						ctx.Splog.Info("Aborted.")
						return nil
					}
				}
				return ctx.Engine.Delete(ctx.Ctx, kind, args[0], engine.DeleteOptions{Force: force})
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete the branch even if it is not merged")

	return cmd
}

// newDiffCmd creates the diff command
func newDiffCmd(g *globalOptions, kind config.BranchKind) *cobra.Command {
	return &cobra.Command{
		Use:               "diff [name]",
		Short:             fmt.Sprintf("Show all changes in a %s branch that are not in its base branch", kind),
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteKindBranches(&g.dir, kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, g.runtime(), func(ctx *runtime.Context) error {
				name, err := resolveName(ctx, kind, args)
				if err != nil {
					return err
				}
				diff, err := ctx.Engine.Diff(ctx.Ctx, kind, name)
				if err != nil {
					return err
				}
				ctx.Splog.Page(diff)
				return nil
			})
		},
	}
}

// newRebaseCmd creates the rebase command
func newRebaseCmd(g *globalOptions, kind config.BranchKind) *cobra.Command {
	var opts git.RebaseOptions

	cmd := &cobra.Command{
		Use:               "rebase [name]",
		Short:             fmt.Sprintf("Rebase a %s branch on its base branch", kind),
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteKindBranches(&g.dir, kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, g.runtime(), func(ctx *runtime.Context) error {
				name, err := resolveName(ctx, kind, args)
				if err != nil {
					return err
				}
				ops, err := ctx.Engine.Rebase(ctx.Ctx, kind, name, opts)
				for _, op := range ops {
					ctx.Splog.Debug("%s %s %s", op.Kind, op.Commit, op.Subject)
				}
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "Do an interactive rebase")
	cmd.Flags().BoolVarP(&opts.PreserveMerges, "rebase-merges", "r", false, "Preserve merges")

	return cmd
}
