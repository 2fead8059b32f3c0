// Package dashboard renders self-contained HTML dashboards for reflections.
// The pages carry no external dependencies: all styling is inline CSS driven
// by theme variables, and the only script is the local theme switcher.
package dashboard

import "strings"

// Theme is one dashboard color palette. Fields map 1:1 to CSS variables.
type Theme struct {
	Bg        string
	Surface   string
	Card      string
	Text      string
	TextMuted string
	Accent    string
	Bar1      string
	Bar2      string
	Bar3      string
	Bar4      string
	Bar5      string
	Success   string
	Warning   string
	Border    string
}

// vars returns the palette as ordered CSS variable name/value pairs.
func (t Theme) vars() [][2]string {
	return [][2]string{
		{"bg", t.Bg}, {"surface", t.Surface}, {"card", t.Card},
		{"text", t.Text}, {"text-muted", t.TextMuted}, {"accent", t.Accent},
		{"bar-1", t.Bar1}, {"bar-2", t.Bar2}, {"bar-3", t.Bar3},
		{"bar-4", t.Bar4}, {"bar-5", t.Bar5},
		{"success", t.Success}, {"warning", t.Warning}, {"border", t.Border},
	}
}

// DefaultTheme is used when a requested theme is unknown.
const DefaultTheme = "claude code"

// themeNames fixes the presentation order of the selector dropdown.
var themeNames = []string{
	"claude code", "church of claude", "midnight", "vespers", "cathedra",
	"cloister", "parchment", "terminal", "byzantium", "arctic", "ember",
}

var themes = map[string]Theme{
	"claude code": {
		Bg: "#1a1a1a", Surface: "#222222", Card: "#2a2a2a",
		Text: "#d4d4d4", TextMuted: "#737373", Accent: "#e07a3a",
		Bar1: "#e07a3a", Bar2: "#d4a27a", Bar3: "#6bab6b",
		Bar4: "#e0a848", Bar5: "#7a9ec0",
		Success: "#6bab6b", Warning: "#e0a848", Border: "#333333",
	},
	"church of claude": {
		Bg: "#faf8f5", Surface: "#f0ebe3", Card: "#e8e0d4",
		Text: "#2a1a2e", TextMuted: "#6b5070", Accent: "#cfb53b",
		Bar1: "#722f6b", Bar2: "#cfb53b", Bar3: "#8b2242",
		Bar4: "#2e5090", Bar5: "#1e8c5f",
		Success: "#1e8c5f", Warning: "#8b2242", Border: "#d4c8b8",
	},
	"midnight": {
		Bg: "#1a1a2e", Surface: "#16213e", Card: "#0f3460",
		Text: "#e0e0e0", TextMuted: "#8b8b8b", Accent: "#e94560",
		Bar1: "#533483", Bar2: "#e94560", Bar3: "#2ecc71",
		Bar4: "#f39c12", Bar5: "#3498db",
		Success: "#2ecc71", Warning: "#f39c12", Border: "#2a2a4a",
	},
	"vespers": {
		Bg: "#1a1511", Surface: "#241c14", Card: "#2e2318",
		Text: "#e8dcc8", TextMuted: "#9a8b73", Accent: "#d4a254",
		Bar1: "#b87333", Bar2: "#c0755a", Bar3: "#8fad7e",
		Bar4: "#c07050", Bar5: "#7a8b99",
		Success: "#8fad7e", Warning: "#d4a254", Border: "#3a2e20",
	},
	"cathedra": {
		Bg: "#1c1c1c", Surface: "#252525", Card: "#2e2e2e",
		Text: "#e0ddd5", TextMuted: "#8a8780", Accent: "#c0392b",
		Bar1: "#2c3e6e", Bar2: "#c0392b", Bar3: "#d4a017",
		Bar4: "#1e8c5f", Bar5: "#7b4e9e",
		Success: "#1e8c5f", Warning: "#d4a017", Border: "#3a3a3a",
	},
	"cloister": {
		Bg: "#0d1b0e", Surface: "#142016", Card: "#1a2b1c",
		Text: "#c8d8c0", TextMuted: "#6e8a65", Accent: "#7dcea0",
		Bar1: "#2d6a3f", Bar2: "#7dcea0", Bar3: "#8aad6e",
		Bar4: "#5a8a50", Bar5: "#4a9a8a",
		Success: "#7dcea0", Warning: "#a8c060", Border: "#243826",
	},
	"parchment": {
		Bg: "#f5f0e8", Surface: "#ebe4d8", Card: "#e0d8c8",
		Text: "#2c2416", TextMuted: "#6b5d4e", Accent: "#8b4513",
		Bar1: "#a0522d", Bar2: "#722f37", Bar3: "#2c3e50",
		Bar4: "#556b2f", Bar5: "#5f6b7a",
		Success: "#556b2f", Warning: "#a0522d", Border: "#c8bfaf",
	},
	"terminal": {
		Bg: "#0a0a0a", Surface: "#111111", Card: "#1a1a1a",
		Text: "#cccccc", TextMuted: "#666666", Accent: "#00ff41",
		Bar1: "#00ff41", Bar2: "#00d4aa", Bar3: "#ffb800",
		Bar4: "#88ff00", Bar5: "#ffffff",
		Success: "#00ff41", Warning: "#ffb800", Border: "#222222",
	},
	"byzantium": {
		Bg: "#120a1e", Surface: "#1a1028", Card: "#221638",
		Text: "#e0d8e8", TextMuted: "#8a7a9a", Accent: "#d4af37",
		Bar1: "#7b4e9e", Bar2: "#d4af37", Bar3: "#c0392b",
		Bar4: "#4a9a8a", Bar5: "#e8dcc0",
		Success: "#4a9a8a", Warning: "#d4af37", Border: "#2e1e48",
	},
	"arctic": {
		Bg: "#0d1117", Surface: "#161b22", Card: "#1c2333",
		Text: "#c9d1d9", TextMuted: "#6e7a88", Accent: "#58a6ff",
		Bar1: "#58a6ff", Bar2: "#79c0ff", Bar3: "#a0aec0",
		Bar4: "#7ee8fa", Bar5: "#b8a9e0",
		Success: "#3fb950", Warning: "#d29922", Border: "#21262d",
	},
	"ember": {
		Bg: "#1a0a0a", Surface: "#241210", Card: "#2e1815",
		Text: "#e8d0c8", TextMuted: "#9a7a70", Accent: "#ff6b35",
		Bar1: "#ff6b35", Bar2: "#c0443a", Bar3: "#e8a030",
		Bar4: "#a83232", Bar5: "#8a7068",
		Success: "#e8a030", Warning: "#ff6b35", Border: "#3a2020",
	},
}

// lookupTheme resolves a theme name, falling back to the default.
func lookupTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// themeCSSVars renders the :root block for a theme.
func themeCSSVars(name string) string {
	t := lookupTheme(name)
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, kv := range t.vars() {
		b.WriteString("    --" + kv[0] + ": " + kv[1] + ";\n")
	}
	b.WriteString("}")
	return b.String()
}

// themesJSON serializes all palettes for the theme switcher script, in
// selector order.
func themesJSON() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range themeNames {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(`"` + name + `":{`)
		for j, kv := range themes[name].vars() {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(`"` + kv[0] + `":"` + kv[1] + `"`)
		}
		b.WriteByte('}')
	}
	b.WriteByte('}')
	return b.String()
}
