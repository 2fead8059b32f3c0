package analyzer

import (
	"strings"

	"github.com/blackwell-systems/confessional/internal/transcript"
)

// DefaultSkillExpansionWords is the word-count threshold above which a
// header-led prompt is treated as a machine-injected skill expansion. This
// is a content-sniffing heuristic, not a hard contract; it is tunable via
// configuration.
const DefaultSkillExpansionWords = 100

// IsSkillExpansion reports whether a prompt looks like an expanded command
// template rather than authored user text: it starts with a single markdown
// H1 header line immediately followed by content, and its total word count
// meets the threshold. Such prompts would otherwise dominate n-gram and
// length statistics.
func IsSkillExpansion(prompt string, wordThreshold int) bool {
	trimmed := strings.TrimSpace(prompt)
	if !strings.HasPrefix(trimmed, "# ") {
		return false
	}
	nl := strings.IndexByte(trimmed, '\n')
	if nl < 0 {
		return false
	}
	if strings.TrimSpace(trimmed[nl+1:]) == "" {
		return false
	}
	return len(strings.Fields(prompt)) >= wordThreshold
}

// AnalyzableTurns filters a turn collection to those with non-blank,
// non-skill-expansion prompts, the input both analyzers operate on.
func AnalyzableTurns(turns []transcript.Turn, skillExpansionWords int) []transcript.Turn {
	var kept []transcript.Turn
	for _, t := range turns {
		if strings.TrimSpace(t.Prompt) == "" {
			continue
		}
		if IsSkillExpansion(t.Prompt, skillExpansionWords) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}
