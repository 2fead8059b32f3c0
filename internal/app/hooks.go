package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/confessional/internal/hook"
	"github.com/blackwell-systems/confessional/internal/output"
)

var installHooksCmd = &cobra.Command{
	Use:   "install-hooks",
	Short: "Register the recorder with Claude Code",
	Long: `Adds Stop and SessionStart hook entries to Claude Code's settings file
so finished turns are recorded automatically. Reinstalling replaces the
previous entries; hooks owned by other tools are left alone.`,
	Args: cobra.NoArgs,
	RunE: runInstallHooks,
}

var uninstallHooksCmd = &cobra.Command{
	Use:   "uninstall-hooks",
	Short: "Remove the recorder from Claude Code's settings",
	Args:  cobra.NoArgs,
	RunE:  runUninstallHooks,
}

func init() {
	rootCmd.AddCommand(installHooksCmd)
	rootCmd.AddCommand(uninstallHooksCmd)
}

func runInstallHooks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	command := "confessional record"
	if exe, err := os.Executable(); err == nil {
		command = exe + " record"
	}

	if err := hook.InstallHooks(cfg.ClaudeHome, command); err != nil {
		return err
	}
	fmt.Printf(" Hooks installed in %s\n", output.StyleBold.Render(hook.SettingsPath(cfg.ClaudeHome)))
	fmt.Printf(" %s\n", output.StyleMuted.Render("Stop and SessionStart now run: "+command))
	return nil
}

func runUninstallHooks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := hook.UninstallHooks(cfg.ClaudeHome); err != nil {
		return err
	}
	fmt.Printf(" Hooks removed from %s\n", output.StyleBold.Render(hook.SettingsPath(cfg.ClaudeHome)))
	return nil
}
