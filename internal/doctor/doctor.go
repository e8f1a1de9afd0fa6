package doctor

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/raphi011/dot/internal/config"
	"github.com/raphi011/dot/internal/dot"
	"github.com/raphi011/dot/internal/git"
	"github.com/raphi011/dot/internal/hooks"
	"github.com/raphi011/dot/internal/log"
	"github.com/raphi011/dot/internal/ui/styles"
)

// Env is the environment a doctor run inspects.
type Env struct {
	Dir      string           // working directory
	Resolver *config.Resolver // nil uses the resolver from ctx
}

// Run performs all checks and returns the report. It never returns early
// with an error; problems are recorded as failed checks.
func Run(ctx context.Context, env Env) Report {
	var r Report
	l := log.FromContext(ctx)

	if err := git.CheckGit(); err != nil {
		r.add("Git", StatusFail, "git not found in PATH", "install git and retry")
		return r
	}
	r.add("Git", StatusOK, "available", "")

	gitDir, err := git.GitDir(ctx, env.Dir)
	if err != nil {
		l.Debug("repo check failed", "dir", env.Dir, "err", err)
		r.add("Repo", StatusFail, "NOT A GIT REPOSITORY", "run dot doctor inside a git repository")
		return r
	}
	r.add("Repo", StatusOK, fmt.Sprintf("OK (%s)", gitDir), "")

	checkBranch(ctx, &r, env.Dir)
	checkHooks(ctx, &r, env.Dir)

	resolver := env.Resolver
	if resolver == nil {
		resolver = config.ResolverFromContext(ctx)
	}
	suffix := resolver.Resolve(ctx)
	r.add("Suffix", StatusOK, fmt.Sprintf("%s (source: %s)", suffix.Value, suffix.Source.Describe()), "")

	checkValidation(&r, suffix.Value)
	return r
}

func checkBranch(ctx context.Context, r *Report, dir string) {
	branch, err := git.CurrentBranch(ctx, dir)
	if err != nil {
		r.add("Branch", StatusWarn, "Unknown", "")
		return
	}
	if branch == "main" || branch == "master" {
		r.add("Branch", StatusWarn, branch, "Working directly on main/master is discouraged")
		return
	}
	r.add("Branch", StatusOK, branch, "")
}

func checkHooks(ctx context.Context, r *Report, dir string) {
	hooksDir, err := git.HooksDir(ctx, dir)
	if err != nil {
		r.add("Hooks", StatusWarn, err.Error(), "")
		return
	}
	statuses := hooks.Status(hooksDir)

	status := StatusOK
	parts := make([]string, 0, len(statuses))
	for _, s := range statuses {
		label := "OK"
		switch s.State {
		case hooks.StateMissing:
			label = "MISSING"
			status = StatusWarn
		case hooks.StateForeign:
			label = "FOREIGN"
			status = StatusWarn
		}
		parts = append(parts, fmt.Sprintf("%s=%s", s.Name, label))
	}

	hint := ""
	if status != StatusOK {
		hint = "run 'dot init' to install the hooks"
	}
	r.add("Hooks", status, strings.Join(parts, ", "), hint)
}

// sampleMessage ends with the built-in suffix. It fails validation when a
// custom suffix is configured, which doctor reports as a warning.
const sampleMessage = "doc: check " + config.DefaultSuffix

func checkValidation(r *Report, suffix string) {
	if err := dot.ValidateCommit(sampleMessage, suffix); err != nil {
		r.add("Validation", StatusWarn, "FAILED on sample message",
			fmt.Sprintf("commits must end with '%s', not the default suffix", suffix))
		return
	}
	r.add("Validation", StatusOK, "OK on sample message", "")
}

// Print writes the report in the human-readable doctor layout.
func (r Report) Print(w io.Writer) {
	fmt.Fprintln(w, styles.Render(styles.Bold, "THE DOT Doctor"))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	for _, c := range r.Checks {
		line := fmt.Sprintf("%s: %s", c.Name, c.Detail)
		switch c.Status {
		case StatusWarn:
			line = styles.Warn(line)
		case StatusFail:
			line = styles.Fail(line)
		}
		fmt.Fprintln(w, line)
		if c.Hint != "" && c.Status != StatusOK {
			fmt.Fprintln(w, "  "+styles.Render(styles.MutedStyle, c.Hint))
		}
	}

	if r.Failed() {
		return
	}
	fmt.Fprintln(w, styles.OK("Doctor completed"))
}
