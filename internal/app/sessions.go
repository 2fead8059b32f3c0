package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/confessional/internal/output"
)

var sessionsFlagSince string

var sessionsCmd = &cobra.Command{
	Use:   "sessions [cwd]",
	Short: "List transcript sessions for a project directory",
	Long: `Lists the Claude Code sessions recorded for a project directory, in
chronological order, with the model, version, git branch, and turn count
of each.

Examples:
  confessional sessions
  confessional sessions ~/src/demo --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().StringVar(&sessionsFlagSince, "since", "", "Only include entries at or after this ISO timestamp")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cwd := ""
	if len(args) == 1 {
		cwd = args[0]
	}
	corpus, err := corpusFor(cfg, cwd, sessionsFlagSince)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(corpus.Sessions)
	}

	if len(corpus.Sessions) == 0 {
		fmt.Println(" No sessions found.")
		return nil
	}

	fmt.Println(output.Section("Sessions"))
	fmt.Println()

	tbl := output.NewTable("Session", "Model", "Version", "Branch", "Turns")
	for _, s := range corpus.Sessions {
		id := s.SessionID
		if len(id) > 8 {
			id = id[:8]
		}
		tbl.AddRow(id, s.Model, s.Version, s.GitBranch, strconv.Itoa(s.TurnCount))
	}
	tbl.Print()

	fmt.Println()
	fmt.Printf(" %s\n", output.StyleMuted.Render(fmt.Sprintf(
		"%d sessions · %d turns", len(corpus.Sessions), corpus.TurnCount)))
	return nil
}
