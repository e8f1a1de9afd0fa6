package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/dot/internal/doctor"
	"github.com/raphi011/dot/internal/output"
)

func newDoctorCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose the dot setup of this repository",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `Diagnose the dot setup of the current repository.

Checks:
- git is installed
- the working directory is a git repository
- the current branch (working on main/master is discouraged)
- commit-msg and prepare-commit-msg hooks are installed
- the resolved worship suffix and its source
- the sample message "doc: check BECAUSE I WORSHIP THE DOT" validates
  (a warning when a custom suffix is configured)

Exits with status 1 when a check fails.`,
		Example: `  dot doctor          # human-readable report
  dot doctor --json   # machine-readable report`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			report := doctor.Run(ctx, doctor.Env{Dir: workDir})

			if jsonOutput {
				if err := out.Encode(output.FormatJSON, report); err != nil {
					return err
				}
			} else {
				report.Print(out.Writer())
			}

			if report.Failed() {
				return &exitError{code: 1}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
