package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/cli/common"
	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/engine"
	flowerrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/runtime"
)

// newFinishCmd creates the finish command
func newFinishCmd(g *globalOptions, kind config.BranchKind) *cobra.Command {
	var opts engine.FinishOptions
	var abort bool

	long := fmt.Sprintf("Merge the %s branch into develop and delete it.", kind)
	if kind.FinishesIntoMaster() {
		long = fmt.Sprintf(`Merge the %s branch into master, tag the result, merge master back
into develop and delete the branch.

Without --tag the tag name defaults to the version tag prefix followed by the
%s name.`, kind, kind)
	}

	cmd := &cobra.Command{
		Use:               "finish [name]",
		Short:             fmt.Sprintf("Finish a %s branch", kind),
		Long:              long,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteKindBranches(&g.dir, kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, g.runtime(), func(ctx *runtime.Context) error {
				if abort {
					return ctx.Engine.AbortFinish(ctx.Ctx)
				}
				name, err := resolveName(ctx, kind, args)
				if err != nil {
					return err
				}
				result, err := ctx.Engine.Run(ctx.Ctx, engine.Command{
					Op:     engine.OpFinish,
					Kind:   &kind,
					Name:   name,
					Finish: opts,
				})
				if errors.Is(err, flowerrors.ErrMergeConflict) {
					ctx.Splog.Warn("Resolve the conflicts and commit, then run 'git-flow %s finish %s' again.", kind, name)
					ctx.Splog.Warn("To give up, run 'git-flow %s finish --abort'.", kind)
				}
				if err != nil {
					return err
				}
				if f := result.Finish; f != nil {
					summary := fmt.Sprintf("Finished %s", f.Branch)
					if f.Tag != "" {
						summary += fmt.Sprintf(", tagged %s", f.Tag)
					}
					ctx.Splog.Info("%s.", summary)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "Message for the merge commit")
	if kind.FinishesIntoMaster() {
		cmd.Flags().StringVar(&opts.BackMergeMessage, "back-merge-message", "", "Message for merging master back into develop")
		cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "Tag name (defaults to the version tag prefix plus the name)")
		cmd.Flags().StringVar(&opts.TagMessage, "tag-message", "", "Message for the annotated tag")
		cmd.Flags().BoolVarP(&opts.NoTag, "no-tag", "n", false, "Do not tag")
	}
	cmd.Flags().BoolVarP(&opts.KeepBranch, "keep", "k", false, "Keep the branch after finishing")
	cmd.Flags().BoolVar(&abort, "abort", false, "Abort the merge left behind by a conflicted finish")

	return cmd
}
