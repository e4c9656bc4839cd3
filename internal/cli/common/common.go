// Package common provides shared helper functions for CLI commands.
package common

import (
	"strings"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/config"
	"gitflow.dev/gitflow/internal/git"
	"gitflow.dev/gitflow/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, opts runtime.Options, fn func(ctx *runtime.Context) error) error {
	if opts.Out == nil {
		opts.Out = cmd.OutOrStdout()
	}
	ctx, err := runtime.NewContext(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}

// CompleteKindBranches returns a cobra.ValidArgsFunction that completes the
// names of existing branches of kind, without their prefix
func CompleteKindBranches(dir *string, kind config.BranchKind) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		path := "."
		if dir != nil && *dir != "" {
			path = *dir
		}
		repo, err := git.Open(path)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		prefix, err := config.New(repo).Prefix(kind)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		branches, err := repo.Branches()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var names []string
		for _, b := range branches {
			if strings.HasPrefix(b.Name, prefix) {
				names = append(names, strings.TrimPrefix(b.Name, prefix))
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
