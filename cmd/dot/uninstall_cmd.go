package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/dot/internal/hooks"
	"github.com/raphi011/dot/internal/output"
	"github.com/raphi011/dot/internal/ui/styles"
)

func newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "uninstall",
		Short:   "Remove THE DOT git hooks from this repository",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `Remove the commit-msg and prepare-commit-msg hooks installed by dot.

Hooks that were backed up by 'dot init' are moved back into place. Hooks not
written by dot are left alone.`,
		Example: `  dot uninstall`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			hooksDir, err := repoHooksDir(ctx, "uninstall")
			if err != nil {
				return err
			}

			removals, err := hooks.Uninstall(hooksDir)
			removed := 0
			for _, rm := range removals {
				switch {
				case rm.Skipped:
					out.Println(styles.Warn(fmt.Sprintf("Kept %s hook (not installed by dot)", rm.Name)))
				case rm.Removed:
					removed++
					out.Println(styles.OK(fmt.Sprintf("Removed %s hook", rm.Name)))
					if rm.Restored {
						out.Printf("  Restored backup for %s\n", rm.Name)
					}
				}
			}
			if err != nil {
				return err
			}

			out.Println()
			if removed == 0 {
				out.Println("No THE DOT hooks found to uninstall.")
			} else {
				out.Println("THE DOT hooks have been uninstalled.")
			}
			return nil
		},
	}

	return cmd
}
