package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/dot/internal/hooks"
	"github.com/raphi011/dot/internal/output"
	"github.com/raphi011/dot/internal/ui/styles"
)

func newStatusCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show whether THE DOT git hooks are installed",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Example: `  dot status
  dot status --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			hooksDir, err := repoHooksDir(ctx, "status")
			if err != nil {
				return err
			}

			statuses := hooks.Status(hooksDir)
			if jsonOutput {
				return out.Encode(output.FormatJSON, statuses)
			}

			out.Println(styles.Render(styles.Bold, "THE DOT Git Hooks Status:"))
			out.Println()
			for _, st := range statuses {
				switch st.State {
				case hooks.StateInstalled:
					out.Println(styles.OK(string(st.Name) + ": installed"))
				case hooks.StateForeign:
					out.Println(styles.Warn(string(st.Name) + ": exists (not THE DOT hook)"))
				default:
					out.Println(styles.Fail(string(st.Name) + ": not installed"))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
