package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/confessional/internal/output"
)

var breakpointCmd = &cobra.Command{
	Use:   "breakpoint <project> [note...]",
	Short: "Mark a reflection boundary for a project",
	Long: `Closes the current reflection window and starts a new one. Everything
recorded between two breakpoints is the material a reflection covers.

Examples:
  confessional breakpoint demo
  confessional breakpoint demo finished auth refactor`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBreakpoint,
}

func init() {
	rootCmd.AddCommand(breakpointCmd)
}

func runBreakpoint(cmd *cobra.Command, args []string) error {
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
	note := strings.Join(args[1:], " ")

	// Snapshot the window being closed before the new breakpoint bounds it.
	window, err := db.CurrentWindow(project)
	if err != nil {
		return err
	}

	bp, err := db.AddBreakpoint(project, note)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(bp)
	}

	fmt.Printf(" Breakpoint %d set for %s\n", bp.ID, output.StyleBold.Render(project))
	fmt.Printf(" %s\n", output.StyleMuted.Render(fmt.Sprintf("%d prompts in the closed window", window.Count)))
	return nil
}
