package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/dot/internal/config"
	"github.com/raphi011/dot/internal/output"
	"github.com/raphi011/dot/internal/stats"
	"github.com/raphi011/dot/internal/ui/prompt"
	"github.com/raphi011/dot/internal/ui/static"
	"github.com/raphi011/dot/internal/ui/styles"
)

func newStatsCmd() *cobra.Command {
	var (
		jsonOutput bool
		reset      bool
		yes        bool
		top        int
		days       int
	)

	cmd := &cobra.Command{
		Use:     "stats",
		Short:   "Show worship statistics",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Show the worship history recorded by "dot worship".

Statistics are stored in ~/.dot/stats.json (stats.path in the preferences
file, or DOT_STATS).`,
		Example: `  dot stats              # summary, top worshippers, recent days
  dot stats --json       # export the raw statistics
  dot stats --reset      # clear all statistics (asks first)
  dot stats --reset -y   # clear without asking`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			path, err := cfg.StatsPath()
			if err != nil {
				return fmt.Errorf("failed to locate stats file: %w", err)
			}
			s, err := stats.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load stats: %w", err)
			}

			if reset {
				if !yes {
					if !isTerminal(cmd.InOrStdin()) {
						return fmt.Errorf("refusing to reset statistics without a terminal (use --yes)")
					}
					res, err := prompt.Confirm("Clear all statistics?")
					if err != nil {
						return err
					}
					if !res.Confirmed {
						out.Println("Cancelled")
						return nil
					}
				}
				s.Reset()
				if err := s.Save(); err != nil {
					return fmt.Errorf("failed to save stats: %w", err)
				}
				out.Println(styles.OK("Statistics cleared"))
				return nil
			}

			if jsonOutput {
				return out.Encode(output.FormatJSON, s)
			}

			printStats(out, s, top, days)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Export raw statistics as JSON")
	cmd.Flags().BoolVar(&reset, "reset", false, "Clear all statistics")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().IntVar(&top, "top", 10, "Number of top worshippers to show")
	cmd.Flags().IntVar(&days, "days", 7, "Number of recent active days to show")
	cmd.MarkFlagsMutuallyExclusive("json", "reset")

	return cmd
}

func printStats(out *output.Printer, s *stats.Stats, top, days int) {
	sum := s.Summary()
	rule := strings.Repeat("=", 60)

	out.Println(styles.Render(styles.Bold, "THE DOT Worship Statistics:"))
	out.Println(rule)
	out.Printf("Total Worships: %d\n", sum.Total)
	out.Printf("Unique Worshippers: %d\n", sum.Unique)
	out.Printf("Days Active: %d\n", sum.DaysActive)
	if sum.First != nil {
		out.Printf("First Worship: %s\n", sum.First.Format(time.RFC3339))
	}
	if sum.Last != nil {
		out.Printf("Last Worship: %s\n", sum.Last.Format(time.RFC3339))
	}

	if sum.Total == 0 {
		out.Println()
		out.Println(styles.Render(styles.MutedStyle, "No worships recorded yet. Run 'dot worship' to begin."))
		return
	}

	if leaders := s.Top(top); len(leaders) > 0 {
		out.Println()
		out.Println("Top Worshippers:")
		out.Println(rule)
		rows := make([][]string, 0, len(leaders))
		for i, w := range leaders {
			rows = append(rows, static.WorshipperTableRow(i+1, w))
		}
		out.Print(static.RenderTable(static.WorshipperHeaders, rows))
	}

	if recent := s.Recent(days); len(recent) > 0 {
		out.Println()
		out.Printf("Daily Worship (Last %d Active Days):\n", days)
		out.Println(rule)
		for _, d := range recent {
			out.Printf("%s: %d worships\n", d.Date, d.Count)
		}
	}
}
