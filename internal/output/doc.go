// Package output handles console and log file output for git-flow.
package output
