package dashboard

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
)

// barItem is one labeled value in a horizontal bar chart.
type barItem struct {
	Label string
	Value float64
}

// formatValue renders a numeric value: comma-grouped integers, one decimal
// place otherwise.
func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return groupThousands(int64(v))
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// groupThousands inserts commas into an integer's decimal representation.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// barChart renders a horizontal bar chart, scaled against the largest value.
func barChart(items []barItem) string {
	if len(items) == 0 {
		return `<div class="bar-chart"><span class="no-data">No data</span></div>`
	}
	maxVal := 0.0
	for _, it := range items {
		if it.Value > maxVal {
			maxVal = it.Value
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}
	colors := []string{"", "c2", "c3", "c4", "c5"}
	var rows []string
	for i, it := range items {
		pct := int(math.Round(it.Value / maxVal * 100))
		rows = append(rows, fmt.Sprintf(
			`<div class="bar-row"><span class="bar-label">%s</span>`+
				`<div class="bar-track"><div class="bar-fill %s" style="width: %d%%"></div></div>`+
				`<span class="bar-value">%s</span></div>`,
			html.EscapeString(it.Label), colors[i%len(colors)], pct,
			html.EscapeString(formatValue(it.Value)),
		))
	}
	return `<div class="bar-chart">` + strings.Join(rows, "\n") + `</div>`
}

// summaryCard renders one metric card.
func summaryCard(title, value, subtitle string) string {
	sub := ""
	if subtitle != "" {
		sub = `<div class="card-sub">` + html.EscapeString(subtitle) + `</div>`
	}
	return `<div class="card"><div class="card-value">` + html.EscapeString(value) +
		`</div><div class="card-label">` + html.EscapeString(title) + `</div>` + sub + `</div>`
}

// tableRow pairs cell values with an optional row class.
type tableRow struct {
	Cells []string
	Class string
}

// tableHTML renders a table with escaped cell content.
func tableHTML(headers []string, rows []tableRow) string {
	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, h := range headers {
		b.WriteString("<th>" + html.EscapeString(h) + "</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rows {
		if row.Class != "" {
			b.WriteString(`<tr class="` + row.Class + `">`)
		} else {
			b.WriteString("<tr>")
		}
		for _, c := range row.Cells {
			b.WriteString("<td>" + html.EscapeString(c) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

// progressBar renders a 0.0-1.0 ratio as a filled track.
func progressBar(value float64, label string) string {
	pct := int(math.Round(value * 100))
	return fmt.Sprintf(
		`<div class="progress-row"><span class="progress-label">%s</span>`+
			`<div class="progress-track"><div class="progress-fill" style="width: %d%%"></div></div>`+
			`<span class="progress-value">%d%%</span></div>`,
		html.EscapeString(label), pct, pct,
	)
}

// section wraps content under an h2 heading.
func section(title, content string) string {
	return "<h2>" + html.EscapeString(title) + "</h2>\n" + content
}

// themeSelector renders the dropdown plus the switcher script. Themes are
// embedded so the page stays self-contained.
func themeSelector() string {
	var options []string
	for _, name := range themeNames {
		options = append(options, `<option value="`+html.EscapeString(name)+`">`+
			html.EscapeString(titleCase(name))+`</option>`)
	}
	return `<div class="theme-selector">
<label for="theme-select">Select Theme:</label>
<select id="theme-select" aria-label="Color theme">
` + strings.Join(options, "\n") + `
</select>
</div>
<script>
(function() {
  var themes = ` + themesJSON() + `;
  var sel = document.getElementById('theme-select');
  var saved = localStorage.getItem('confessional-theme');
  if (saved && themes[saved]) sel.value = saved;
  function apply(name) {
    var t = themes[name];
    if (!t) return;
    var r = document.documentElement.style;
    for (var k in t) r.setProperty('--' + k, t[k]);
    localStorage.setItem('confessional-theme', name);
  }
  if (saved && themes[saved]) apply(saved);
  sel.addEventListener('change', function() { apply(sel.value); });
})();
</script>`
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// wrapHTML produces the full document around rendered body content.
func wrapHTML(title, body, theme string) string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>` + html.EscapeString(title) + `</title>
<style>` + pageCSS(theme) + `</style>
</head>
<body>
` + body + `
</body>
</html>
`
}
