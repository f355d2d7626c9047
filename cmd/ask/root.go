package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nao1215/ask"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ask",
	Short: "ask asks questions on the terminal",
	Long: `ask asks typed, validated questions on a single terminal line.
Questions come from a YAML questionnaire (ask run) or the command line (ask agree).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every answer attempt to stderr")
	rootCmd.PersistentFlags().String("theme", "default", "Color theme (default, dark, light, accessible)")
}

// newPrompter opens the terminal with the settings of the persistent flags.
func newPrompter(cmd *cobra.Command) (*ask.Prompter, error) {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}
	themeName, err := cmd.Flags().GetString("theme")
	if err != nil {
		return nil, err
	}
	theme, ok := ask.Themes[themeName]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", themeName)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return ask.New(
		ask.WithColorScheme(theme),
		ask.WithLogger(ask.NewLogger(level)),
	)
}
