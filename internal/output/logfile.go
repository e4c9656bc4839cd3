package output

import (
	"os"
	"path/filepath"
)

// LogFilePath returns the path of the rotating debug log.
// configured wins, then GITFLOW_LOG_FILE, then ~/.git-flow/logs/git-flow.log.
func LogFilePath(configured string) string {
	if configured != "" {
		return configured
	}
	if customPath := os.Getenv("GITFLOW_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "git-flow.log"
	}
	return filepath.Join(homeDir, ".git-flow", "logs", "git-flow.log")
}
