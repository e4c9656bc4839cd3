package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/cli/common"
	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/runtime"
)

// newPublishCmd creates the publish command
func newPublishCmd(g *globalOptions, kind config.BranchKind) *cobra.Command {
	return &cobra.Command{
		Use:               "publish [name]",
		Short:             fmt.Sprintf("Publish a %s branch on the remote", kind),
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteKindBranches(&g.dir, kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, g.runtime(), func(ctx *runtime.Context) error {
				defer ctx.ProgressDone()
				name, err := resolveName(ctx, kind, args)
				if err != nil {
					return err
				}
				return ctx.Engine.Publish(ctx.Ctx, kind, name)
			})
		},
	}
}

// newTrackCmd creates the track command
func newTrackCmd(g *globalOptions, kind config.BranchKind) *cobra.Command {
	return &cobra.Command{
		Use:   "track <name>",
		Short: fmt.Sprintf("Start tracking a %s branch that is shared on the remote", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, g.runtime(), func(ctx *runtime.Context) error {
				defer ctx.ProgressDone()
				_, err := ctx.Engine.Track(ctx.Ctx, kind, args[0])
				return err
			})
		},
	}
}
