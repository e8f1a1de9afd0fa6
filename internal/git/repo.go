package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// GitDir returns the absolute path of the repository's git directory.
func GitDir(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotRepo, err)
	}
	return out, nil
}

// TopLevel returns the root of the working tree.
func TopLevel(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotRepo, err)
	}
	return out, nil
}

// CurrentBranch returns the checked out branch name.
// Returns "(detached)" for detached HEAD state.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %v", err)
	}
	if out == "" {
		return "(detached)", nil
	}
	return out, nil
}

// HooksDir returns the absolute hooks directory, honoring core.hooksPath.
func HooksDir(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotRepo, err)
	}
	if filepath.IsAbs(out) {
		return out, nil
	}

	// --git-path is relative to the directory git ran in
	base := dir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		base = wd
	}
	return filepath.Join(base, out), nil
}
