package dashboard

import (
	"fmt"
	"html"
	"math"
	"sort"
	"strings"

	"github.com/blackwell-systems/confessional/internal/analyzer"
	"github.com/blackwell-systems/confessional/internal/store"
)

// RenderReflection produces the single-reflection dashboard page: summary
// cards, tool usage, voice profile, session arc, n-grams, token breakdown,
// and the reflection text itself.
func RenderReflection(analysis analyzer.Analysis, reflection store.Reflection, project, theme string) string {
	eff := analysis.EffectivenessSignals
	ling := analysis.PromptLinguistics
	tokens := analysis.TokenStats

	totalIO := tokens.TotalInput + tokens.TotalOutput
	totalAllInput := tokens.TotalInput + tokens.TotalCacheRead + tokens.TotalCacheCreation
	cacheHit := 0
	if totalAllInput > 0 {
		cacheHit = int(math.Round(float64(tokens.TotalCacheRead) / float64(totalAllInput) * 100))
	}

	var parts []string

	parts = append(parts,
		`<div class="page-header"><h1>`+html.EscapeString(project)+`</h1>`+themeSelector()+`</div>`)
	subtitle := fmt.Sprintf("Reflection #%d &mdash; %s", reflection.ID, html.EscapeString(dateOf(reflection.Timestamp)))
	if reflection.GitSummary != "" {
		subtitle += " &mdash; " + html.EscapeString(reflection.GitSummary)
	}
	parts = append(parts, `<div class="subtitle">`+subtitle+`</div>`)

	// Summary cards.
	cards := []string{
		summaryCard("Turns", groupThousands(int64(analysis.TurnCount)), ""),
		summaryCard("Tool Calls", groupThousands(int64(analysis.ToolStats.Total)), ""),
		summaryCard("Sessions", groupThousands(int64(len(analysis.Sessions))), ""),
		summaryCard("Correction Rate", percent(eff.CorrectionRate), ""),
		summaryCard("Acceptance", percent(eff.FirstResponseAcceptance), "first-response"),
		summaryCard("Tokens", groupThousands(int64(totalIO)), "input + output"),
		summaryCard("Cache Hit", fmt.Sprintf("%d%%", cacheHit), "read / input"),
	}
	parts = append(parts, `<div class="cards">`+strings.Join(cards, "\n")+`</div>`)

	// Tool usage, most used first.
	parts = append(parts, section("Tool Usage", barChart(toolItems(analysis.ToolStats.ByTool))))

	parts = append(parts, section("Prompt Style Effectiveness", styleTable(eff.PerStyleEffectiveness)))

	// Voice profile.
	var voice []string
	voice = append(voice, "<h3>Communication Mode</h3>")
	voice = append(voice, progressBar(ling.QuestionRatio, "Questions"))
	voice = append(voice, progressBar(ling.ImperativeRatio, "Imperatives"))

	voice = append(voice, "<h3>Agency Framing</h3>")
	voice = append(voice, barChart([]barItem{
		{"I", float64(ling.AgencyFraming.ICount)},
		{"We", float64(ling.AgencyFraming.WeCount)},
		{"You", float64(ling.AgencyFraming.YouCount)},
		{"Let's", float64(ling.AgencyFraming.LetsCount)},
	}))
	voice = append(voice, `<div class="subtitle">Dominant: <strong>`+
		html.EscapeString(dominantLabel(ling.AgencyFraming.Dominant))+`</strong></div>`)

	voice = append(voice, "<h3>Certainty Profile</h3>")
	voice = append(voice, barChart([]barItem{
		{"Hedging", float64(ling.CertaintyMarkers.HedgingCount)},
		{"Assertive", float64(ling.CertaintyMarkers.AssertiveCount)},
	}))
	parts = append(parts, section("Voice Profile", strings.Join(voice, "\n")))

	// Session arc.
	pos := ling.PromptLengthByPosition
	prog := eff.SessionProgression
	warming := `<span class="indicator neutral">No warming trend</span>`
	if prog.WarmingUp {
		warming = `<span class="indicator positive">Warming up detected</span>`
	}
	parts = append(parts, section("Session Arc",
		"<h3>Prompt Length by Position (avg words)</h3>"+
			barChart([]barItem{
				{"First quarter", round1(pos.FirstQuarterAvg)},
				{"Middle half", round1(pos.MiddleHalfAvg)},
				{"Last quarter", round1(pos.LastQuarterAvg)},
			})+
			"<h3>Session Progression (correction rate)</h3>"+
			progressBar(prog.FirstHalfCorrectionRate, "First half")+
			progressBar(prog.SecondHalfCorrectionRate, "Second half")+
			`<div style="margin-top:0.3rem">`+warming+`</div>`))

	// Tool scatter.
	scatter := eff.ToolScatter
	scatterHTML := `<div class="subtitle">Higher = more scattered file access</div>` +
		progressBar(scatter.Question, "Question") +
		progressBar(scatter.Imperative, "Imperative") +
		progressBar(scatter.Statement, "Statement") +
		progressBar(scatter.Overall, "Overall")
	parts = append(parts, section("Tool Scatter", scatterHTML))

	// N-grams, two columns.
	parts = append(parts, section("N-grams",
		`<div class="two-col"><div><h3>Bigrams</h3>`+
			ngramTable(ling.FrequentNgrams.Bigrams)+
			`</div><div><h3>Trigrams</h3>`+
			ngramTable(ling.FrequentNgrams.Trigrams)+
			`</div></div>`))

	// Token breakdown split in two charts: cache tokens dwarf input/output.
	parts = append(parts, section("Token Breakdown",
		"<h3>Input / Output</h3>"+
			barChart([]barItem{
				{"Input", float64(tokens.TotalInput)},
				{"Output", float64(tokens.TotalOutput)},
			})+
			"<h3>Cache</h3>"+
			barChart([]barItem{
				{"Cache Read", float64(tokens.TotalCacheRead)},
				{"Cache Create", float64(tokens.TotalCacheCreation)},
			})))

	if reflection.Reflection != "" {
		parts = append(parts, section("Full Reflection",
			`<div class="reflection-text">`+markdownToHTML(reflection.Reflection)+`</div>`))
	}

	title := fmt.Sprintf("%s — Reflection #%d", project, reflection.ID)
	return wrapHTML(title, strings.Join(parts, "\n"), theme)
}

// toolItems sorts tool counts descending for the usage chart.
func toolItems(byTool map[string]int) []barItem {
	var items []barItem
	for name, count := range byTool {
		items = append(items, barItem{Label: name, Value: float64(count)})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Value != items[j].Value {
			return items[i].Value > items[j].Value
		}
		return items[i].Label < items[j].Label
	})
	return items
}

// styleTable renders the per-style effectiveness comparison, highlighting
// the style with the lowest correction rate among those actually used.
func styleTable(pse analyzer.PerStyleEffectiveness) string {
	type entry struct {
		name  string
		stats analyzer.StyleStats
	}
	entries := []entry{
		{"question", pse.Question},
		{"imperative", pse.Imperative},
		{"statement", pse.Statement},
	}

	best := ""
	bestRate := 1.0
	for _, e := range entries {
		if e.stats.Count > 0 && e.stats.CorrectionRate < bestRate {
			bestRate = e.stats.CorrectionRate
			best = e.name
		}
	}

	var rows []tableRow
	for _, e := range entries {
		row := tableRow{Cells: []string{
			e.name,
			groupThousands(int64(e.stats.Count)),
			percent(e.stats.CorrectionRate),
			strconv1(e.stats.AvgToolCount),
			groupThousands(int64(math.Round(e.stats.AvgTokens))),
		}}
		if e.name == best {
			row.Class = "best"
		}
		rows = append(rows, row)
	}
	return tableHTML([]string{"Style", "Count", "Correction Rate", "Avg Tools", "Avg Tokens"}, rows)
}

// ngramTable renders the top ten n-grams of one set.
func ngramTable(ngrams []analyzer.NgramCount) string {
	var rows []tableRow
	for i, ng := range ngrams {
		if i >= 10 {
			break
		}
		rows = append(rows, tableRow{Cells: []string{ng.Ngram, groupThousands(int64(ng.Count))}})
	}
	return tableHTML([]string{"Phrase", "Count"}, rows)
}

func percent(ratio float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(ratio*100)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func strconv1(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func dominantLabel(key string) string {
	switch key {
	case "i":
		return "I"
	case "we":
		return "We"
	case "you":
		return "You"
	case "lets":
		return "Let's"
	case "none":
		return "None"
	}
	return key
}

// dateOf extracts the date from an ISO timestamp.
func dateOf(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
