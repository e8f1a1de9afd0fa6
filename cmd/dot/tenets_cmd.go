package main

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/raphi011/dot/internal/dot"
	"github.com/raphi011/dot/internal/output"
	"github.com/raphi011/dot/internal/ui/styles"
)

func newTenetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tenets [query]",
		Short:   "Show THE DOT philosophy",
		Aliases: []string{"philosophy"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Show the tenets of THE DOT philosophy.

With a query, only tenets that fuzzy-match it are shown, best match first.
Tenets keep their original numbers.`,
		Example: `  dot tenets            # all tenets
  dot tenets worktree   # tenets matching "worktree"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			tenets := dot.New().Tenets()

			if len(args) == 0 {
				out.Println("THE DOT Philosophy:")
				for i, t := range tenets {
					out.Printf("  %d. %s\n", i+1, t)
				}
				return nil
			}

			matches := fuzzy.Find(args[0], tenets)
			if len(matches) == 0 {
				return fmt.Errorf("no tenet matches %q", args[0])
			}

			out.Println("THE DOT Philosophy:")
			for _, m := range matches {
				out.Printf("  %d. %s\n", m.Index+1, highlight(m.Str, m.MatchedIndexes))
			}
			return nil
		},
	}

	return cmd
}

// highlight styles the characters of s at the given byte offsets.
func highlight(s string, indexes []int) string {
	if !styles.ColorEnabled() || len(indexes) == 0 {
		return s
	}

	matched := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		matched[i] = true
	}

	var b strings.Builder
	for i, r := range s {
		if matched[i] {
			b.WriteString(styles.Render(styles.HighlightStyle, string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
