// Package cli provides the command-line interface for xerreader.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/avireddy0/XERReader/internal/cli/output"
	"github.com/avireddy0/XERReader/internal/config"
)

var cfgDir string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// rendererKey is used to store renderer in context.
type rendererKey struct{}

// loggerKey is used to store the slog logger in context.
type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xerreader",
		Short: "Parse, schedule, and analyze Primavera P6 and MS-Project exports",
		Long: `xerreader reads Primavera P6 XER exports (and MS-Project XML exports),
computes a Critical Path Method schedule, and reports DCMA-style schedule
quality metrics — without ever editing the source schedule.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			dir := cfgDir
			if dir == "" {
				dir = "."
				if root := config.FindProjectRoot(dir); root != "" {
					dir = root
				}
			}
			cfg, err := config.Load(dir, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)

			mode := output.Mode(cfg.Output.Format)
			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode, resolveColor(cfg.Output.Color))
			ctx = context.WithValue(ctx, rendererKey{}, renderer)

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelInfo}))
			ctx = context.WithValue(ctx, loggerKey{}, logger)

			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config-dir", "", "directory containing xerreader.yaml (default: current directory)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format: text, json, markdown (overrides config)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "markdown"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(
		newParseCmd(),
		newAnalyzeCmd(),
		newReportCmd(),
		newQueryCmd(),
		newReplCmd(),
		newServeCmd(),
		newWatchCmd(),
		newCacheCmd(),
		NewCompletionCommand(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context, falling back
// to defaults if PersistentPreRunE never ran (e.g. in a unit test).
func GetConfig(ctx context.Context) *config.ProjectConfig {
	if c, ok := ctx.Value(configKey{}).(*config.ProjectConfig); ok {
		return c
	}
	cfg := &config.ProjectConfig{}
	config.ApplyDefaults(cfg)
	return cfg
}

// GetRenderer retrieves the renderer from the command context.
func GetRenderer(ctx context.Context) *output.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		return r
	}
	return output.NewRenderer(os.Stdout, os.Stderr, output.ModeText, false)
}

// GetLogger retrieves the slog logger from the command context, falling
// back to a discard handler if PersistentPreRunE never ran.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// resolveColor turns the config's "auto"/"always"/"never" into a bool,
// auto-detecting a terminal via termenv when set to "auto".
func resolveColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return termenv.ColorProfile() != termenv.Ascii
	}
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
