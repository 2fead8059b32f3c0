package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/confessional/internal/config"
	"github.com/blackwell-systems/confessional/internal/dashboard"
	"github.com/blackwell-systems/confessional/internal/output"
	"github.com/blackwell-systems/confessional/internal/store"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard <project>",
	Short: "Regenerate the dashboard index for a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
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
	if err := writeIndexPage(cfg, db, project); err != nil {
		return err
	}

	fmt.Printf(" %s\n", output.StyleMuted.Render(
		dashboard.Dir(cfg.StoreDir, project)+"/index.html"))
	return nil
}

// writeIndexPage renders the project's dashboard index from the stored
// reflections and manifest.
func writeIndexPage(cfg *config.Config, db *store.DB, project string) error {
	reflections, err := db.Reflections(project)
	if err != nil {
		return err
	}
	manifest, err := db.DashboardManifest(project)
	if err != nil {
		return err
	}
	_, err = dashboard.WriteIndex(cfg.StoreDir, project, cfg.Theme, reflections, manifest)
	return err
}
