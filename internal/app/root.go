// Package app contains the Cobra command tree for confessional.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/confessional/internal/config"
	"github.com/blackwell-systems/confessional/internal/output"
	"github.com/blackwell-systems/confessional/internal/store"
	"github.com/blackwell-systems/confessional/internal/transcript"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "confessional",
	Short: "Prompt analytics for Claude Code transcripts",
	Long: `confessional reconstructs conversation turns from local Claude Code
transcript logs and analyzes how you prompt: phrasing style, hedging,
correction patterns, and how those correlate with outcomes. A pair of
session hooks records turns into a local SQLite history so reflections
and dashboards can track changes over time.

Run 'confessional analyze .' for a summary of the current project.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("confessional", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  turns          Reconstruct turns from transcript logs")
		fmt.Println("  linguistics    Analyze prompt phrasing and vocabulary")
		fmt.Println("  effectiveness  Analyze correction and acceptance signals")
		fmt.Println("  analyze        Full corpus analysis")
		fmt.Println("  sessions       List sessions for a project directory")
		fmt.Println("  breakpoint     Mark a reflection boundary")
		fmt.Println("  reflect        Store a reflection and render its dashboard")
		fmt.Println("  dashboard      Regenerate the project dashboard index")
		fmt.Println("  enable/disable Toggle turn recording for a project")
		fmt.Println("  install-hooks  Register the recorder with Claude Code")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/confessional/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// loadConfig loads configuration and applies global output flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor || !cfg.Output.Color || !isatty.IsTerminal(os.Stdout.Fd()) {
		output.SetNoColor(true)
	}
	return cfg, nil
}

// openStore opens the project history database under the configured store dir.
func openStore(cfg *config.Config) (*store.DB, error) {
	return store.Open(cfg.DBPath())
}

// corpusFor loads every turn for a working directory's transcripts,
// optionally filtered to entries at or after the since cursor.
func corpusFor(cfg *config.Config, cwd, since string) (transcript.Corpus, error) {
	abs, err := absCwd(cwd)
	if err != nil {
		return transcript.Corpus{}, err
	}
	return transcript.TurnsSince(cfg.ClaudeHome, abs, since)
}

func absCwd(cwd string) (string, error) {
	if cwd == "" {
		return os.Getwd()
	}
	return filepath.Abs(cwd)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
