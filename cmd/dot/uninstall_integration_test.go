//go:build integration

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/dot/internal/git"
)

// TestUninstall_RestoresForeignHook tests removing hooks after init replaced
// a hook the user already had.
//
// Scenario: User has a commit-msg hook, runs `dot init`, then `dot uninstall`
// Expected: dot scripts removed, original commit-msg restored, backup gone
func TestUninstall_RestoresForeignHook(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo", "feature")
	useWorkDir(t, repoPath)
	writeDotINI(t, repoPath, "BECAUSE I REVERE THE DOT")

	hooksDir := filepath.Join(repoPath, ".git", "hooks")
	foreign := "#!/bin/sh\necho lint\n"
	if err := os.WriteFile(filepath.Join(hooksDir, "commit-msg"), []byte(foreign), 0o755); err != nil {
		t.Fatal(err)
	}

	ctx := testContextWith(t, testEnv{cwd: repoPath, home: t.TempDir()}, nil)
	if _, err := executeCommand(ctx, newInitCmd()); err != nil {
		t.Fatal(err)
	}

	got, err := executeCommand(ctx, newUninstallCmd())
	if err != nil {
		t.Fatalf("uninstall failed: %v\n%s", err, got)
	}
	for _, want := range []string{
		"✓ Removed commit-msg hook",
		"Restored backup for commit-msg",
		"✓ Removed prepare-commit-msg hook",
		"THE DOT hooks have been uninstalled.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("uninstall output missing %q:\n%s", want, got)
		}
	}

	data, err := os.ReadFile(filepath.Join(hooksDir, "commit-msg"))
	if err != nil || string(data) != foreign {
		t.Errorf("commit-msg = %q, %v; want original hook", data, err)
	}
	if _, err := os.Stat(filepath.Join(hooksDir, "prepare-commit-msg")); !os.IsNotExist(err) {
		t.Errorf("prepare-commit-msg still present (err=%v)", err)
	}

	got, err = executeCommand(ctx, newUninstallCmd())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "No THE DOT hooks found to uninstall.") {
		t.Errorf("second uninstall output:\n%s", got)
	}
}

// TestStatus_AfterInit tests the hook status report.
//
// Scenario: User runs `dot status` before and after `dot init`
// Expected: hooks reported missing, then installed
func TestStatus_AfterInit(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo", "feature")
	useWorkDir(t, repoPath)
	writeDotINI(t, repoPath, "BECAUSE I REVERE THE DOT")

	ctx := testContextWith(t, testEnv{cwd: repoPath, home: t.TempDir()}, nil)
	got, err := executeCommand(ctx, newStatusCmd())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "✗ commit-msg: not installed") {
		t.Errorf("status before init:\n%s", got)
	}

	if _, err := executeCommand(ctx, newInitCmd()); err != nil {
		t.Fatal(err)
	}
	got, err = executeCommand(ctx, newStatusCmd())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"✓ commit-msg: installed", "✓ prepare-commit-msg: installed"} {
		if !strings.Contains(got, want) {
			t.Errorf("status output missing %q:\n%s", want, got)
		}
	}
}

// TestUninstall_NotARepo tests running outside a repository.
//
// Scenario: User runs `dot uninstall` in a plain directory
// Expected: ErrNotRepo
func TestUninstall_NotARepo(t *testing.T) {
	dir := resolvePath(t, t.TempDir())
	useWorkDir(t, dir)

	ctx := testContextWith(t, testEnv{cwd: dir, home: t.TempDir()}, nil)
	if _, err := executeCommand(ctx, newUninstallCmd()); !errors.Is(err, git.ErrNotRepo) {
		t.Errorf("uninstall error = %v, want ErrNotRepo", err)
	}
}
