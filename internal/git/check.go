package git

import (
	"context"
	"errors"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

// ErrNotRepo indicates the directory is not inside a git repository
var ErrNotRepo = errors.New("not in a git repository")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideRepo returns true if dir (or the working directory when empty)
// is inside a git repository
func IsInsideRepo(ctx context.Context, dir string) bool {
	return runGit(ctx, dir, "rev-parse", "--git-dir") == nil
}
