package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/confessional/internal/output"
)

var enableCmd = &cobra.Command{
	Use:   "enable <project>",
	Short: "Enable turn recording for a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setRecording(args[0], true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <project>",
	Short: "Disable turn recording for a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setRecording(args[0], false)
	},
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}

func setRecording(project string, enabled bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	state := "enabled"
	if enabled {
		err = db.EnableRecording(project)
	} else {
		err = db.DisableRecording(project)
		state = "disabled"
	}
	if err != nil {
		return err
	}

	fmt.Printf(" Recording %s for %s\n", state, output.StyleBold.Render(project))
	return nil
}
