package dashboard

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blackwell-systems/confessional/internal/analyzer"
	"github.com/blackwell-systems/confessional/internal/store"
)

// Dir returns the dashboards directory for a project under the store dir.
func Dir(storeDir, project string) string {
	return filepath.Join(storeDir, "projects", project, "dashboards")
}

// WriteReflection writes one reflection dashboard and returns its path.
func WriteReflection(storeDir, project, theme string, analysis analyzer.Analysis, reflection store.Reflection) (string, error) {
	dir := Dir(storeDir, project)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("reflection-%d.html", reflection.ID))
	content := RenderReflection(analysis, reflection, project, theme)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteIndex writes or overwrites the project index page and returns its path.
func WriteIndex(storeDir, project, theme string, reflections []store.Reflection, manifest []store.DashboardEntry) (string, error) {
	dir := Dir(storeDir, project)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "index.html")
	content := RenderIndex(reflections, manifest, project, theme)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
