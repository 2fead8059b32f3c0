package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/confessional/internal/analyzer"
	"github.com/blackwell-systems/confessional/internal/dashboard"
	"github.com/blackwell-systems/confessional/internal/gitinfo"
	"github.com/blackwell-systems/confessional/internal/output"
	"github.com/blackwell-systems/confessional/internal/transcript"
)

var reflectFlagCwd string

var reflectCmd = &cobra.Command{
	Use:   "reflect <project>",
	Short: "Store a reflection and render its dashboard page",
	Long: `Reads reflection text from stdin, stores it over the current breakpoint
window, and renders a self-contained HTML dashboard page for it. The
analysis covers the transcripts since the window opened.

Examples:
  confessional reflect demo < reflection.md
  echo "Went well." | confessional reflect demo --cwd ~/src/demo`,
	Args: cobra.ExactArgs(1),
	RunE: runReflect,
}

func init() {
	reflectCmd.Flags().StringVar(&reflectFlagCwd, "cwd", "", "Project working directory for transcript analysis (default: current directory)")
	rootCmd.AddCommand(reflectCmd)
}

func runReflect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	project := args[0]

	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading reflection from stdin: %w", err)
	}
	reflection := strings.TrimSpace(string(text))
	if reflection == "" {
		return fmt.Errorf("empty reflection: pipe the reflection text on stdin")
	}

	// The window opened at the current breakpoint; its timestamp is the
	// analysis cursor.
	opening, err := db.CurrentBreakpoint(project)
	if err != nil {
		return err
	}
	since := ""
	if opening != nil {
		since = opening.Timestamp
	}

	window, err := db.CurrentWindow(project)
	if err != nil {
		return err
	}

	cwd, err := absCwd(reflectFlagCwd)
	if err != nil {
		return err
	}
	corpus, err := transcript.TurnsSince(cfg.ClaudeHome, cwd, since)
	if err != nil {
		return err
	}
	analysis := analyzer.Analyze(corpus, cfg.Analysis.SkillExpansionWords)

	// Close the window, then store the reflection spanning it.
	if _, err := db.AddBreakpoint(project, "reflection"); err != nil {
		return err
	}
	ref, err := db.StoreReflection(project, reflection, gitinfo.RecentLog(cwd, 10), window.Count)
	if err != nil {
		return err
	}

	htmlPath, err := dashboard.WriteReflection(cfg.StoreDir, project, cfg.Theme, analysis, ref)
	if err != nil {
		return err
	}
	if _, err := db.AppendDashboard(project, ref.BreakpointEndID, ref.ID, htmlPath); err != nil {
		return err
	}
	if err := writeIndexPage(cfg, db, project); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(ref)
	}

	fmt.Printf(" Reflection %d stored for %s\n", ref.ID, output.StyleBold.Render(project))
	fmt.Printf(" %s\n", output.StyleMuted.Render(htmlPath))
	return nil
}
