// Package config manages git-flow workflow configuration.
//
// It handles:
//   - The closed set of branch kinds and their prefixes
//   - The gitflow.* keys stored in the repository's git config
//   - First-time initialization through an injected prompter
package config
