package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/raphi011/dot/internal/dot"
	"github.com/raphi011/dot/internal/hooks"
	"github.com/raphi011/dot/internal/log"
	"github.com/raphi011/dot/internal/ui/styles"
)

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hook",
		Short:   "Run a git hook (called by the installed hook scripts)",
		GroupID: GroupHooks,
		Long: `Run the logic behind the git hooks installed by "dot init".

These commands are invoked by git through the hook scripts and receive the
same arguments git passes to the hook.`,
	}

	cmd.AddCommand(newHookCommitMsgCmd())
	cmd.AddCommand(newHookPrepareCommitMsgCmd())

	return cmd
}

func newHookCommitMsgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(hooks.CommitMsg) + " <message-file>",
		Short: "Reject commit messages that do not end with the suffix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read commit message: %w", err)
			}

			suffix := resolveSuffix(ctx).Value
			if err := dot.ValidateCommit(string(data), suffix); err != nil {
				if !errors.Is(err, dot.ErrInvalidMessage) {
					return err
				}
				// git shows hook stderr to the committer
				w := cmd.ErrOrStderr()
				fmt.Fprintln(w, styles.Fail(fmt.Sprintf("Invalid commit message - must end with '%s'", suffix)))
				fmt.Fprintln(w, "  Commit aborted. Your message was kept in "+args[0])
				return &exitError{code: 1}
			}

			l.Debug("commit message accepted", "file", args[0])
			return nil
		},
	}

	return cmd
}

// skippedSources are prepare-commit-msg sources whose message git or the
// user already finalized.
var skippedSources = map[string]bool{
	"merge":  true,
	"squash": true,
	"commit": true,
}

func newHookPrepareCommitMsgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(hooks.PrepareCommitMsg) + " <message-file> [source] [sha]",
		Short: "Append the suffix to the prepared commit message",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			path := args[0]
			if len(args) > 1 && skippedSources[args[1]] {
				l.Debug("leaving commit message unchanged", "source", args[1])
				return nil
			}

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("failed to read commit message: %w", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read commit message: %w", err)
			}

			suffix := resolveSuffix(ctx).Value
			updated := dot.AppendSuffix(string(data), suffix)
			if updated == string(data) {
				l.Debug("suffix already present", "file", path)
				return nil
			}

			if err := renameio.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
				return fmt.Errorf("failed to write commit message: %w", err)
			}
			l.Debug("suffix appended", "file", path)
			return nil
		},
	}

	return cmd
}
