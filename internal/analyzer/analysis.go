package analyzer

import (
	"github.com/blackwell-systems/confessional/internal/transcript"
)

// Analysis is the complete analytics payload for a turn corpus: aggregate
// turn/tool/token statistics plus both analyzer results. The dashboard
// renders it verbatim and never re-derives a statistic.
type Analysis struct {
	TurnCount            int                          `json:"turn_count"`
	ToolStats            transcript.ToolStats         `json:"tool_stats"`
	TokenStats           transcript.TokenStats        `json:"token_stats"`
	Sessions             []transcript.SessionSummary  `json:"sessions"`
	PromptLinguistics    LinguisticsResult            `json:"prompt_linguistics"`
	EffectivenessSignals EffectivenessResult          `json:"effectiveness_signals"`
}

// Analyze runs both analyzers over a corpus. Skill-expansion prompts are
// excluded from analysis but still count toward the corpus-level turn and
// token statistics, which describe everything that happened.
func Analyze(corpus transcript.Corpus, skillExpansionWords int) Analysis {
	filtered := AnalyzableTurns(corpus.Turns, skillExpansionWords)
	return Analysis{
		TurnCount:            corpus.TurnCount,
		ToolStats:            corpus.ToolStats,
		TokenStats:           corpus.TokenStats,
		Sessions:             corpus.Sessions,
		PromptLinguistics:    ComputeLinguistics(filtered),
		EffectivenessSignals: ComputeEffectiveness(filtered),
	}
}
