package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/cli/common"
	"gitflow.dev/gitflow/internal/output"
	"gitflow.dev/gitflow/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the git-flow configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, g.runtime(), func(ctx *runtime.Context) error {
				entries, err := ctx.Engine.Config().Entries()
				if err != nil {
					return err
				}
				for _, e := range entries {
					value := e.Value
					if !e.Set {
						value = output.ColorDim("(unset)")
					}
					ctx.Splog.Page(fmt.Sprintf("%s = %s\n", e.Key, value))
				}
				return nil
			})
		},
	}

	cmd.AddCommand(newConfigSetCmd(g))

	return cmd
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a git-flow configuration value",
		Example: `  git-flow config set gitflow.prefix.versiontag v
  git-flow config set gitflow.prefix.feature feat/`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, g.runtime(), func(ctx *runtime.Context) error {
				if err := ctx.Engine.Config().Set(args[0], args[1]); err != nil {
					return err
				}
				ctx.Splog.Info("Set %s to %s", args[0], args[1])
				return nil
			})
		},
	}
}
