package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/dot/internal/config"
	"github.com/raphi011/dot/internal/dot"
	"github.com/raphi011/dot/internal/log"
	"github.com/raphi011/dot/internal/output"
	"github.com/raphi011/dot/internal/stats"
	"github.com/raphi011/dot/internal/ui/styles"
)

// defaultWorshipper is used by bare "dot" when user.name is unset.
const defaultWorshipper = "CLI User"

func newWorshipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "worship [name]",
		Short:   "Declare your devotion to THE DOT",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Declare your devotion to THE DOT.

Without a name, user.name from the preferences file is used, then
"Anonymous". Each worship is recorded in the statistics file unless
stats.track is disabled.`,
		Example: `  dot worship            # worship as user.name
  dot worship "Ada"      # worship as Ada`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			return runWorship(cmd.Context(), name, dot.AnonymousName)
		},
	}

	return cmd
}

// runWorship prints the acknowledgment for name, falling back to user.name
// and then fallback.
func runWorship(ctx context.Context, name, fallback string) error {
	cfg := config.FromContext(ctx)
	out := output.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		name = cfg.WorshipperName()
	}
	if name == "" {
		name = fallback
	}

	out.Println(styles.Render(styles.AccentStyle, dot.New().Worship(name)))

	if cfg.Stats.Track {
		recordWorship(ctx, cfg, name)
	}
	return nil
}

// recordWorship persists the event. Failures only warn; worship never fails
// because of the statistics file.
func recordWorship(ctx context.Context, cfg *config.Config, name string) {
	l := log.FromContext(ctx)

	path, err := cfg.StatsPath()
	if err != nil {
		l.Printf("Warning: failed to locate stats file: %v\n", err)
		return
	}
	s, err := stats.Load(path)
	if err != nil {
		l.Printf("Warning: failed to load stats: %v\n", err)
		return
	}
	w := s.Record(name)
	if err := s.Save(); err != nil {
		l.Printf("Warning: failed to save stats: %v\n", err)
		return
	}
	l.Debug("worship recorded", "name", w.Name, "count", w.Count, "path", path)
}
