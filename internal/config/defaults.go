// Package config provides configuration loading and defaults for confessional.
package config

// DefaultClaudeHome is the default location of Claude Code's data directory.
const DefaultClaudeHome = "~/.claude"

// DefaultStoreDir is where breakpoints, reflections, recorded turns, and
// generated dashboards live.
const DefaultStoreDir = "~/.reflection"

// DefaultConfigDir is the default location for confessional configuration.
const DefaultConfigDir = "~/.config/confessional"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultTheme is the dashboard color theme.
const DefaultTheme = "claude code"

// DefaultSkillExpansionWords is the word-count threshold above which a
// header-led prompt is excluded from analysis as a skill expansion.
const DefaultSkillExpansionWords = 100

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
