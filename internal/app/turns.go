package app

import (
	"github.com/spf13/cobra"
)

var turnsFlagSince string

var turnsCmd = &cobra.Command{
	Use:   "turns [cwd]",
	Short: "Reconstruct conversation turns from transcript logs",
	Long: `Reads the Claude Code transcript files for a project directory and
segments them into turns: one genuine user prompt plus everything the
assistant did in response. Output is JSON.

Examples:
  confessional turns                           # current directory
  confessional turns ~/src/demo
  confessional turns --since 2026-08-01T00:00:00Z`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTurns,
}

func init() {
	turnsCmd.Flags().StringVar(&turnsFlagSince, "since", "", "Only include entries at or after this ISO timestamp")
	rootCmd.AddCommand(turnsCmd)
}

func runTurns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cwd := ""
	if len(args) == 1 {
		cwd = args[0]
	}
	corpus, err := corpusFor(cfg, cwd, turnsFlagSince)
	if err != nil {
		return err
	}
	return printJSON(corpus)
}
