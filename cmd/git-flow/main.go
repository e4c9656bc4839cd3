package main

import (
	"os"

	"gitflow.dev/gitflow/internal/cli"
	flowerrors "gitflow.dev/gitflow/internal/errors"
	"gitflow.dev/gitflow/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		splog, _ := output.NewSplogWithOptions(output.Options{Writer: os.Stderr})
		splog.Error("%v", err)
		os.Exit(flowerrors.ExitCode(err))
	}
}
