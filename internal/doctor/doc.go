// Package doctor diagnoses a repository's dot setup.
//
// The checks run in order and later checks are skipped once an earlier
// prerequisite fails:
//
//   - Git: the git binary is available on PATH.
//   - Repo: the working directory is inside a git repository.
//   - Branch: the current branch, with a warning on main/master.
//   - Hooks: whether the commit-msg and prepare-commit-msg hooks are installed.
//   - Suffix: the resolved worship suffix and its source.
//   - Validation: "doc: check BECAUSE I WORSHIP THE DOT" validates against
//     the resolved suffix; a custom suffix makes this a warning.
//
// # Usage
//
//	report := doctor.Run(ctx, doctor.Env{Dir: wd})
//	report.Print(w)
//	if report.Failed() { ... }
package doctor
