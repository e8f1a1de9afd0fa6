package main

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/dot/internal/config"
	"github.com/raphi011/dot/internal/log"
	"github.com/raphi011/dot/internal/output"
	"github.com/raphi011/dot/internal/ui/styles"
)

func newSuffixCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "suffix",
		Short:   "Show the current worship suffix",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Show the worship suffix commit messages must end with, and where it
came from.

Sources are checked in order: DOT_WORSHIP_SUFFIX, ./.dot.ini, ~/.dot.ini,
then the built-in default.`,
		Example: `  dot suffix          # show suffix and source
  dot suffix --copy   # also copy the suffix to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			resolved := resolveSuffix(ctx)

			out.Println("Current worship suffix:")
			out.Printf("  %s\n", styles.Render(styles.AccentStyle, resolved.Value))
			out.Println("Source:")
			out.Printf("  %s\n", describeSource(resolved))

			if copyToClipboard {
				if err := clipboard.WriteAll(resolved.Value); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				} else {
					l.Println("Copied suffix to clipboard")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the suffix to the clipboard")

	return cmd
}

// describeSource names the source, with the file path for file sources.
func describeSource(r config.ResolvedSuffix) string {
	if r.Path != "" {
		return r.Source.Describe() + " (" + r.Path + ")"
	}
	return r.Source.Describe()
}
