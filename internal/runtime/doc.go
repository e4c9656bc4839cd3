// Package runtime provides the execution context for git-flow commands.
//
// It encapsulates shared dependencies and configuration needed by commands,
// such as the engine instance, logger, settings, and the repository.
package runtime
