package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve determines the repository root using the optional --root flag or
// the current working directory when the flag is empty. An explicit flag is
// taken as-is; otherwise parents of the working directory are searched for
// a repository marker.
func Resolve(rootFlag string) (string, error) {
	if rootFlag != "" {
		abs, err := filepath.Abs(rootFlag)
		if err != nil {
			return "", fmt.Errorf("resolve repository root: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("repository root does not exist: %w", err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("repository root %s is not a directory", abs)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve repository root: %w", err)
	}
	return RepoRoot(cwd)
}

// RepoRoot walks parent directories from start looking for a .git entry and
// returns the first directory containing one. When no marker exists it
// falls back to start.
func RepoRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve repository root: %w", err)
	}

	dir := abs
	for {
		// A .git file (worktrees, submodules) marks a root as well as a
		// .git directory does.
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}
