//go:build integration

package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/raphi011/dot/internal/doctor"
)

// TestDoctor_HealthyRepo tests doctor after init.
//
// Scenario: User runs `dot doctor` in an initialized feature branch
// Expected: all checks pass and the report completes
func TestDoctor_HealthyRepo(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo", "feature")
	useWorkDir(t, repoPath)

	ctx := testContextWith(t, testEnv{cwd: repoPath, home: t.TempDir()}, nil)
	if _, err := executeCommand(ctx, newInitCmd()); err != nil {
		t.Fatal(err)
	}

	got, err := executeCommand(ctx, newDoctorCmd())
	if err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, got)
	}
	for _, want := range []string{
		"THE DOT Doctor",
		"Repo: OK (",
		"Branch: feature",
		"Hooks: commit-msg=OK, prepare-commit-msg=OK",
		"Suffix: BECAUSE I WORSHIP THE DOT (source: ./.dot.ini)",
		"Validation: OK on sample message",
		"✓ Doctor completed",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("doctor output missing %q:\n%s", want, got)
		}
	}
}

// TestDoctor_MainBranchWarns tests the main/master warning.
//
// Scenario: User runs `dot doctor` on main without hooks
// Expected: warnings for branch and hooks, exit code 0
func TestDoctor_MainBranchWarns(t *testing.T) {
	tmpDir := resolvePath(t, t.TempDir())
	repoPath := setupTestRepo(t, tmpDir, "myrepo", "main")
	useWorkDir(t, repoPath)

	ctx := testContextWith(t, testEnv{cwd: repoPath, home: t.TempDir()}, nil)
	got, err := executeCommand(ctx, newDoctorCmd())
	if err != nil {
		t.Fatalf("doctor with warnings should succeed: %v", err)
	}
	for _, want := range []string{
		"⚠ Branch: main",
		"Working directly on main/master is discouraged",
		"⚠ Hooks: commit-msg=MISSING, prepare-commit-msg=MISSING",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("doctor output missing %q:\n%s", want, got)
		}
	}
}

// TestDoctor_NotARepo tests doctor outside a repository.
//
// Scenario: User runs `dot doctor` in a plain directory
// Expected: exit code 1 with NOT A GIT REPOSITORY
func TestDoctor_NotARepo(t *testing.T) {
	dir := resolvePath(t, t.TempDir())
	useWorkDir(t, dir)

	ctx := testContextWith(t, testEnv{cwd: dir, home: t.TempDir()}, nil)
	got, err := executeCommand(ctx, newDoctorCmd())
	if exitCode(err) != 1 {
		t.Fatalf("doctor outside repo exit = %d (err %v), want 1", exitCode(err), err)
	}
	if !strings.Contains(got, "✗ Repo: NOT A GIT REPOSITORY") {
		t.Errorf("doctor output = %q", got)
	}

	got, _ = executeCommand(ctx, newDoctorCmd(), "--json")
	var report doctor.Report
	if err := json.Unmarshal([]byte(got), &report); err != nil {
		t.Fatalf("doctor --json is not JSON: %v\n%s", err, got)
	}
	if !report.Failed() {
		t.Error("json report should carry the failed check")
	}
}
