//go:build integration

package doctor

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/raphi011/dot/internal/config"
	"github.com/raphi011/dot/internal/hooks"
)

func initRepo(t *testing.T, branch string) string {
	t.Helper()
	dir := t.TempDir()
	out, err := exec.Command("git", "init", "-b", branch, dir).CombinedOutput()
	if err != nil {
		t.Fatalf("git init: %v\n%s", err, out)
	}
	return dir
}

func fixedResolver(suffix string) *config.Resolver {
	r := config.NewResolver()
	r.LookupEnv = func(key string) (string, bool) {
		if key == config.EnvSuffix {
			return suffix, true
		}
		return "", false
	}
	return r
}

func find(t *testing.T, r Report, name string) Check {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %q missing from report: %+v", name, r.Checks)
	return Check{}
}

func TestRun_NotARepo(t *testing.T) {
	t.Parallel()

	r := Run(context.Background(), Env{Dir: t.TempDir(), Resolver: fixedResolver(config.DefaultSuffix)})
	if !r.Failed() {
		t.Fatal("Failed() = false outside a repository")
	}
	if c := find(t, r, "Repo"); c.Detail != "NOT A GIT REPOSITORY" {
		t.Errorf("Repo detail = %q", c.Detail)
	}
	for _, c := range r.Checks {
		if c.Name == "Suffix" {
			t.Error("Suffix check should be skipped when repo check fails")
		}
	}
}

func TestRun_MainBranchWithoutHooks(t *testing.T) {
	t.Parallel()

	dir := initRepo(t, "main")
	r := Run(context.Background(), Env{Dir: dir, Resolver: fixedResolver("BECAUSE I WORSHIP THE DOT")})

	if r.Failed() {
		t.Fatalf("Failed() = true: %+v", r.Checks)
	}
	if c := find(t, r, "Branch"); c.Status != StatusWarn || c.Detail != "main" {
		t.Errorf("Branch = %+v, want warn on main", c)
	}
	if c := find(t, r, "Hooks"); c.Status != StatusWarn || c.Detail != "commit-msg=MISSING, prepare-commit-msg=MISSING" {
		t.Errorf("Hooks = %+v", c)
	}
	if c := find(t, r, "Suffix"); c.Detail != "BECAUSE I WORSHIP THE DOT (source: environment variable DOT_WORSHIP_SUFFIX)" {
		t.Errorf("Suffix detail = %q", c.Detail)
	}
	if c := find(t, r, "Validation"); c.Status != StatusOK {
		t.Errorf("Validation = %+v, want ok", c)
	}
	if r.Warnings() != 2 {
		t.Errorf("Warnings() = %d, want 2", r.Warnings())
	}
}

func TestRun_HooksInstalled(t *testing.T) {
	t.Parallel()

	dir := initRepo(t, "feature")
	if _, err := hooks.Install(filepath.Join(dir, ".git", "hooks"), hooks.Options{Binary: "dot"}); err != nil {
		t.Fatal(err)
	}

	r := Run(context.Background(), Env{Dir: dir, Resolver: fixedResolver(config.DefaultSuffix)})
	if c := find(t, r, "Branch"); c.Status != StatusOK {
		t.Errorf("Branch = %+v, want ok on feature", c)
	}
	if c := find(t, r, "Hooks"); c.Status != StatusOK || c.Detail != "commit-msg=OK, prepare-commit-msg=OK" {
		t.Errorf("Hooks = %+v", c)
	}
	if r.Warnings() != 0 {
		t.Errorf("Warnings() = %d, want 0", r.Warnings())
	}
}
