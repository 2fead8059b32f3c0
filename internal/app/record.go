package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/confessional/internal/hook"
)

var recordCmd = &cobra.Command{
	Use:    "record",
	Short:  "Process a Claude Code hook event from stdin",
	Hidden: true,
	Long: `Invoked by Claude Code's Stop and SessionStart hooks with an event
payload on stdin. Records the finished turn (Stop) or the session context
(SessionStart) into the project history. Always exits 0 so a recorder
failure never interrupts the session; errors go to the hook log.`,
	Args: cobra.NoArgs,
	RunE: runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return nil
	}

	logger, logFile, err := hook.OpenLog(cfg.HookLogPath())
	if err != nil {
		return nil
	}
	defer func() { _ = logFile.Close() }()

	db, err := openStore(cfg)
	if err != nil {
		logger.Printf("open store: %v", err)
		return nil
	}
	defer func() { _ = db.Close() }()

	hook.NewHandler(db, logger).Handle(os.Stdin)
	return nil
}
