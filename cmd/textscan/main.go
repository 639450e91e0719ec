// Command textscan scans plain text from files or stdin: tokens,
// lines, delimited blocks, searches, JSON paths, and Lua-scripted
// extraction pipelines.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/textscan/internal/chrono"
	"github.com/dshills/textscan/internal/config"
	"github.com/dshills/textscan/internal/console"
	"github.com/dshills/textscan/internal/scan"
	"github.com/dshills/textscan/internal/textfile"
)

var version = "0.1.0"

var (
	cfg   config.Config
	cons  *console.Console
	timer *chrono.Chronometer
)

var rootCmd = &cobra.Command{
	Use:   "textscan",
	Short: "Cursor-based text scanning toolkit",
	Long: `Scans plain text with a stateful cursor: extract tokens, fields,
lines and delimited blocks, search for literals, and run Lua
extraction scripts. Input comes from a file argument or stdin.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(linesCmd)
	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(reachCmd)
	rootCmd.AddCommand(jsonCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(watchCmd)

	rootCmd.PersistentFlags().String("config", "", "Config file path (TOML)")
	rootCmd.PersistentFlags().StringP("separators", "s", "", "Token separator characters")
	rootCmd.PersistentFlags().Bool("ignore-case", false, "Case-insensitive matching")
	rootCmd.PersistentFlags().Bool("ignore-quoted", false, "Treat quoted text as opaque")
	rootCmd.PersistentFlags().Bool("ignore-comments", false, "Treat // and /* */ comments as opaque")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress diagnostics")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Debug diagnostics")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("timing", false, "Report elapsed time")
}

// setup loads the configuration and builds the console before any
// subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = defaultConfigPath()
	}

	var err error
	cfg, err = config.Load(path)
	if err != nil {
		return err
	}

	level := console.LevelInfo
	if cfg.Console.Level != "" {
		if l, err := console.ParseLevel(cfg.Console.Level); err == nil {
			level = l
		}
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		level = console.LevelQuiet
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = console.LevelDebug
	}

	opts := []console.Option{console.WithLevel(level)}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || cfg.Console.Color == "never" {
		opts = append(opts, console.WithColor(false))
	} else if cfg.Console.Color == "always" {
		opts = append(opts, console.WithColor(true))
	}
	cons = console.New(os.Stderr, opts...)

	if timing, _ := cmd.Flags().GetBool("timing"); timing {
		timer = chrono.New()
		timer.Start()
	}
	return nil
}

// teardown reports elapsed time when --timing is set.
func teardown(cmd *cobra.Command, args []string) {
	if timer == nil {
		return
	}
	timer.Stop()
	cons.Infof("elapsed %s", chrono.Format(timer.Elapsed()))
}

// defaultConfigPath returns the user config location, or "" when the
// home directory is unknown.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/textscan/config.toml"
}

// newScanner builds a scanner from config defaults with flag
// overrides applied on top.
func newScanner(cmd *cobra.Command, text string) *scan.Scanner {
	opts := cfg.Scanner.ScanOptions()
	opts = append(opts, scan.WithText(text))

	s := scan.New(opts...)
	if cmd.Flags().Changed("separators") {
		seps, _ := cmd.Flags().GetString("separators")
		s.SetSeparators(seps)
	}
	if cmd.Flags().Changed("ignore-case") {
		on, _ := cmd.Flags().GetBool("ignore-case")
		s.SetCaseInsensitive(on)
	}
	if cmd.Flags().Changed("ignore-quoted") {
		on, _ := cmd.Flags().GetBool("ignore-quoted")
		s.SetIgnoreQuoted(on)
	}
	if cmd.Flags().Changed("ignore-comments") {
		on, _ := cmd.Flags().GetBool("ignore-comments")
		s.SetIgnoreComments(on)
	}
	return s
}

// readInput returns the text of the first positional argument, or
// stdin when no file is named.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return textfile.ReadText(textfile.OSFS{}, args[0])
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
