package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/dot/internal/config"
	"github.com/raphi011/dot/internal/log"
	"github.com/raphi011/dot/internal/output"
	"github.com/raphi011/dot/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// workDir is where git commands run; empty means the process working
	// directory. .dot.ini lookups go through the context Resolver.
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupHooks  = "hooks"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dot",
	Short: "Worship THE DOT in every commit",
	Long: `dot keeps commit messages devoted to THE DOT.

Every commit message must end with the worship suffix. The suffix is resolved
from DOT_WORSHIP_SUFFIX, ./.dot.ini, ~/.dot.ini, then the built-in default
"BECAUSE I WORSHIP THE DOT".

Run without a subcommand to worship as the configured user.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	Args:                       cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Validate mutually exclusive flags
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Flags are parsed now, so the logger can honor them
		ctx := log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet))
		cmd.SetContext(ctx)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorship(cmd.Context(), "", defaultWorshipper)
	},
}

// exitError ends the process with code after the command already reported
// the problem itself.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load preferences
	cfgPath, err := config.Path()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		cfg = loaded
	}
	styles.Configure(cfg.Display.Color && styles.DetectColor(os.Stdout), cfg.Display.Symbols)

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx = config.WithConfig(ctx, &cfg)
	ctx = config.WithResolver(ctx, config.NewResolver())

	// Replaced in PersistentPreRunE once flags are parsed
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			cancel()
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'dot -h' for help")
		cancel()
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupHooks, Title: "Git Hook Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newWorshipCmd())
	rootCmd.AddCommand(newTenetsCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newBackstoryCmd())
	rootCmd.AddCommand(newStatsCmd())

	// Hook commands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newUninstallCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newHookCmd())
	rootCmd.AddCommand(newDoctorCmd())

	// Config commands
	rootCmd.AddCommand(newSuffixCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
