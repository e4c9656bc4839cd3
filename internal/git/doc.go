// Package git implements the repository backend used by the workflow engine.
//
// It combines go-git and the git binary to provide:
//   - Repository access (open, init, scoped gitflow.* configuration)
//   - Branch management (create, find, delete, checkout, ref updates)
//   - Object creation (commits, trees, tags)
//   - Merge plumbing (analysis, merge base, tree merges, conflict checkout)
//   - Remote operations (fetch with progress, push with pluggable credentials)
//
// This package should be the only place where git commands are executed.
package git
