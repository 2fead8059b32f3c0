package dashboard

import (
	"fmt"
	"html"
	"strings"

	"github.com/blackwell-systems/confessional/internal/store"
)

// RenderIndex produces the project index page listing every reflection with
// a link to its dashboard when one has been generated.
func RenderIndex(reflections []store.Reflection, manifest []store.DashboardEntry, project, theme string) string {
	paths := make(map[int64]string, len(manifest))
	for _, entry := range manifest {
		paths[entry.ReflectionID] = entry.HTMLPath
	}

	word := "reflections"
	if len(reflections) == 1 {
		word = "reflection"
	}

	var parts []string
	parts = append(parts,
		`<div class="page-header"><h1>`+html.EscapeString(project)+`</h1>`+themeSelector()+`</div>`)
	parts = append(parts, fmt.Sprintf(`<div class="subtitle">%d %s</div>`, len(reflections), word))

	var rows []string
	for _, ref := range reflections {
		view := `<span class="status-no">&mdash;</span>`
		if p, ok := paths[ref.ID]; ok {
			view = `<a href="` + html.EscapeString(p) + `">View</a>`
		}
		rows = append(rows, fmt.Sprintf(
			"<tr><td>%d</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>",
			ref.ID,
			html.EscapeString(dateOf(ref.Timestamp)),
			html.EscapeString(ref.GitSummary),
			ref.PromptCount,
			view,
		))
	}

	table := `<table><thead><tr>` +
		`<th>ID</th><th>Date</th><th>Git Summary</th><th>Prompts</th><th></th>` +
		`</tr></thead><tbody>` + strings.Join(rows, "\n") + `</tbody></table>`
	parts = append(parts, section("Reflections", table))

	return wrapHTML(project+" — Confessional", strings.Join(parts, "\n"), theme)
}
