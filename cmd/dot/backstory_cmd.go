package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/raphi011/dot/internal/log"
	"github.com/raphi011/dot/internal/output"
	"github.com/raphi011/dot/internal/ui/styles"
)

func newBackstoryCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "backstory",
		Short:   "Tell the story of THE DOT",
		Aliases: []string{"lore"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Tell the story of THE DOT.

The story is rendered as styled markdown on color terminals and as plain
text otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if plain || !styles.ColorEnabled() {
				out.Print(plainBackstory())
				return nil
			}

			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err == nil {
				var rendered string
				if rendered, err = r.Render(backstory); err == nil {
					out.Print(rendered)
					return nil
				}
			}
			l.Debug("markdown rendering failed, printing plain text", "err", err)
			out.Print(plainBackstory())
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print without markdown styling")

	return cmd
}

// plainBackstory strips the markdown markers used in the story.
func plainBackstory() string {
	r := strings.NewReplacer("# ", "", "> ", "", "**", "", "*", "")
	return r.Replace(backstory)
}
