// Package engine implements the git-flow workflow.
//
// It is the core of git-flow, responsible for:
//   - Initializing a repository for the workflow (root commit, config, integration branches)
//   - Starting prefixed branches from the right base
//   - Finishing branches by merging, tagging, and back-merging in order
//   - Listing, publishing, tracking, diffing, rebasing and deleting workflow branches
//
// The engine works only through the Backend interface and never touches the
// object store or the network itself.
package engine
