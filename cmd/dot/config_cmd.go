package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/dot/internal/config"
	"github.com/raphi011/dot/internal/output"
	"github.com/raphi011/dot/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Args:    cobra.ArbitraryArgs,
		Long: `Manage dot configuration.

Suffix config: .dot.ini in the working directory or home directory
Preferences:   ~/.config/dot/config.toml (override with DOT_CONFIG)`,
		Example: `  dot config show              # show resolved suffix and preferences
  dot config show --format json
  dot config init               # create ./.dot.ini
  dot config init --home        # create ~/.dot.ini
  dot config set-suffix BECAUSE I ADORE THE DOT
  dot config prefs              # create the preferences file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown config subcommand %q", args[0])
			}
			return cmd.Help()
		},
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigSetSuffixCmd())
	cmd.AddCommand(newConfigPrefsCmd())

	return cmd
}

// candidateView is a .dot.ini search location in config show output.
type candidateView struct {
	Source config.Source `json:"source" yaml:"source"`
	Path   string        `json:"path" yaml:"path"`
	Exists bool          `json:"exists" yaml:"exists"`
}

// configView is the structured form of config show.
type configView struct {
	Suffix      config.ResolvedSuffix `json:"suffix" yaml:"suffix"`
	EnvSet      bool                  `json:"env_set" yaml:"env_set"`
	Candidates  []candidateView       `json:"candidates" yaml:"candidates"`
	PrefsPath   string                `json:"prefs_path" yaml:"prefs_path"`
	PrefsLoaded bool                  `json:"prefs_loaded" yaml:"prefs_loaded"`
	Prefs       config.Config         `json:"prefs" yaml:"prefs"`
}

func buildConfigView(ctx context.Context) configView {
	r := config.ResolverFromContext(ctx)

	v := configView{
		Suffix: r.Resolve(ctx),
		Prefs:  *config.FromContext(ctx),
	}
	if env, ok := r.LookupEnv(config.EnvSuffix); ok && strings.TrimSpace(env) != "" {
		v.EnvSet = true
	}
	for _, c := range r.Candidates() {
		_, err := os.Stat(c.Path)
		v.Candidates = append(v.Candidates, candidateView{Source: c.Source, Path: c.Path, Exists: err == nil})
	}
	if p, err := config.Path(); err == nil {
		v.PrefsPath = p
		if _, err := os.Stat(p); err == nil {
			v.PrefsLoaded = true
		}
	}
	return v
}

func newConfigShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the resolved worship suffix with its source, the .dot.ini search
path, and the loaded preferences.`,
		Example: `  dot config show
  dot config show --format json
  dot config show --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			v := buildConfigView(ctx)
			if f != output.FormatText {
				return out.Encode(f, v)
			}

			out.Println("Current worship suffix:")
			out.Printf("  %s\n", styles.Render(styles.AccentStyle, v.Suffix.Value))
			out.Println("Source:")
			out.Printf("  %s\n", describeSource(v.Suffix))
			out.Println()

			out.Println("Search path:")
			envState := "unset"
			if v.EnvSet {
				envState = "set"
			}
			out.Printf("  %s (%s)\n", config.EnvSuffix, envState)
			for _, c := range v.Candidates {
				state := "missing"
				if c.Exists {
					state = "found"
				}
				out.Printf("  %s (%s)\n", c.Path, state)
			}
			out.Println()

			prefsState := "not found, using defaults"
			if v.PrefsLoaded {
				prefsState = "loaded"
			}
			out.Println("Preferences:")
			out.Printf("  %s (%s)\n", v.PrefsPath, prefsState)
			out.Printf("  user.name       = %q\n", v.Prefs.User.Name)
			out.Printf("  display.color   = %t\n", v.Prefs.Display.Color)
			out.Printf("  display.symbols = %s\n", v.Prefs.Display.Symbols)
			out.Printf("  stats.track     = %t\n", v.Prefs.Stats.Track)
			if v.Prefs.Stats.Path != "" {
				out.Printf("  stats.path      = %s\n", v.Prefs.Stats.Path)
			}
			out.Printf("  hooks.backup    = %t\n", v.Prefs.Hooks.Backup)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, yaml")
	cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		home   bool
		suffix string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .dot.ini file",
		Args:  cobra.NoArgs,
		Long: `Create a .dot.ini file holding the worship suffix.

Without flags, creates .dot.ini in the current directory.
With --home, creates it in the home directory.`,
		Example: `  dot config init                                  # ./.dot.ini
  dot config init --home                           # ~/.dot.ini
  dot config init --suffix "BECAUSE I ADORE THE DOT"
  dot config init -f                               # overwrite existing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			r := config.ResolverFromContext(ctx)

			lookup := r.Getwd
			if home {
				lookup = r.HomeDir
			}
			dir, err := lookup()
			if err != nil {
				return fmt.Errorf("failed to locate target directory: %w", err)
			}

			path, err := config.WriteDotINI(dir, suffix, force)
			if err != nil {
				return err
			}
			out.Println(styles.OK("Created " + path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing .dot.ini")
	cmd.Flags().BoolVar(&home, "home", false, "Create ~/.dot.ini instead of ./.dot.ini")
	cmd.Flags().StringVar(&suffix, "suffix", config.DefaultSuffix, "Worship suffix to write")

	return cmd
}

func newConfigSetSuffixCmd() *cobra.Command {
	var home bool

	cmd := &cobra.Command{
		Use:   "set-suffix <suffix...>",
		Short: "Set the worship suffix in .dot.ini",
		Args:  cobra.MinimumNArgs(1),
		Long: `Set worship_suffix in .dot.ini, creating the file if needed.

Other sections and keys in the file are kept. Arguments are joined with
spaces, so quoting is optional.`,
		Example: `  dot config set-suffix BECAUSE I LOVE THE DOT
  dot config set-suffix --home "BECAUSE I ADORE THE DOT"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			r := config.ResolverFromContext(ctx)

			suffix := strings.TrimSpace(strings.Join(args, " "))
			if suffix == "" {
				return fmt.Errorf("worship suffix must not be blank")
			}

			lookup := r.Getwd
			if home {
				lookup = r.HomeDir
			}
			dir, err := lookup()
			if err != nil {
				return fmt.Errorf("failed to locate target directory: %w", err)
			}

			path, err := config.SetSuffix(dir, suffix)
			if err != nil {
				return err
			}
			out.Println(styles.OK("Updated worship suffix in " + path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&home, "home", false, "Update ~/.dot.ini instead of ./.dot.ini")

	return cmd
}

func newConfigPrefsCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Create the default preferences file",
		Args:  cobra.NoArgs,
		Long: `Create the default preferences file at ~/.config/dot/config.toml
(or DOT_CONFIG when set).`,
		Example: `  dot config prefs        # create preferences file
  dot config prefs -f     # overwrite existing
  dot config prefs -s     # print to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(config.DefaultConfig())
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return err
			}
			if err := config.Init(path, force); err != nil {
				return err
			}
			out.Println(styles.OK("Created config file: " + path))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}
