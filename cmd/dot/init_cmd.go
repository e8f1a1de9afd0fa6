package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/dot/internal/config"
	"github.com/raphi011/dot/internal/git"
	"github.com/raphi011/dot/internal/hooks"
	"github.com/raphi011/dot/internal/log"
	"github.com/raphi011/dot/internal/output"
	"github.com/raphi011/dot/internal/ui/styles"
)

func newInitCmd() *cobra.Command {
	var noBackup bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Install THE DOT git hooks in this repository",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `Install the commit-msg and prepare-commit-msg hooks in the current
repository.

Existing hooks that were not installed by dot are kept as <name>.backup
unless hooks.backup is disabled or --no-backup is given. When no .dot.ini
exists in the search path, one with the default suffix is created at the
repository root.`,
		Example: `  dot init               # install hooks
  dot init --no-backup   # replace foreign hooks without a backup`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			hooksDir, err := repoHooksDir(ctx, "init")
			if err != nil {
				return err
			}

			out.Println(styles.Render(styles.Bold, "THE DOT - Git Hooks Installation"))
			out.Println()

			results, err := hooks.Install(hooksDir, hooks.Options{
				Binary: hookBinary(l),
				Backup: cfg.Hooks.Backup && !noBackup,
			})
			for _, r := range results {
				if r.Backup != "" {
					out.Printf("Backed up existing %s hook to %s\n", r.Name, r.Backup)
				}
				verb := "Installed"
				if r.Action == hooks.ActionUpdated {
					verb = "Updated"
				}
				out.Println(styles.OK(fmt.Sprintf("%s %s hook", verb, r.Name)))
			}
			if err != nil {
				return err
			}

			if err := ensureDotINI(cmd); err != nil {
				return err
			}

			out.Println(styles.OK("Initialization complete"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "Replace existing hooks without keeping a backup")

	return cmd
}

// repoHooksDir returns the hooks directory of the repository at workDir.
// command names the subcommand in the not-a-repository error.
func repoHooksDir(ctx context.Context, command string) (string, error) {
	if err := git.CheckGit(); err != nil {
		return "", err
	}
	if !git.IsInsideRepo(ctx, workDir) {
		return "", fmt.Errorf("%w: run 'dot %s' inside a repository", git.ErrNotRepo, command)
	}
	return git.HooksDir(ctx, workDir)
}

// ensureDotINI creates <toplevel>/.dot.ini when no suffix source exists.
func ensureDotINI(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := output.FromContext(ctx)
	r := config.ResolverFromContext(ctx)

	for _, c := range r.Candidates() {
		if _, err := os.Stat(c.Path); err == nil {
			out.Println(styles.OK("Found existing .dot.ini configuration"))
			return nil
		}
	}

	top, err := git.TopLevel(ctx, workDir)
	if err != nil {
		return err
	}
	path := filepath.Join(top, config.FileName)
	if _, err := os.Stat(path); err == nil {
		out.Println(styles.OK("Found existing .dot.ini configuration"))
		return nil
	}

	path, err = config.WriteDotINI(top, config.DefaultSuffix, false)
	if err != nil {
		return err
	}
	out.Println(styles.OK("Created " + path))
	return nil
}

// hookBinary returns the absolute path of the running executable so hooks
// work without dot on PATH.
func hookBinary(l *log.Logger) string {
	exe, err := os.Executable()
	if err != nil {
		l.Debug("falling back to dot on PATH", "err", err)
		return "dot"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe
}
