package analyzer

import (
	"strings"

	"github.com/blackwell-systems/confessional/internal/transcript"
)

// correctionMarkers are lexical cues in a follow-up prompt indicating the
// prior response was rejected or needs revision. Matching is case-insensitive
// substring; false positives are tolerable because we track trends.
var correctionMarkers = []string{
	"actually",
	"instead",
	"no,",
	"no.",
	"i meant",
	"i said",
	"that's not",
	"thats not",
	"not what i",
	"wrong",
	"try again",
	"undo",
	"revert",
	"go back",
}

// turnPair is one adjacent same-session pair: the earlier turn and whether
// the later turn's prompt corrected it.
type turnPair struct {
	earlier   *transcript.Turn
	corrected bool
}

// ComputeEffectiveness derives correction and tool-dispersion signals from a
// turn collection. Turns must already be filtered via AnalyzableTurns. Only
// adjacent pairs sharing a session ID are eligible: cross-session adjacency
// is not causally meaningful. Fewer than two turns yields the zeroed result
// with FirstResponseAcceptance 1.0: absence of evidence of correction is
// treated optimistically.
func ComputeEffectiveness(turns []transcript.Turn) EffectivenessResult {
	result := EffectivenessResult{FirstResponseAcceptance: 1.0}
	if len(turns) < 2 {
		return result
	}

	var pairs []turnPair
	for i := 0; i+1 < len(turns); i++ {
		if turns[i].SessionID != turns[i+1].SessionID {
			continue
		}
		pairs = append(pairs, turnPair{
			earlier:   &turns[i],
			corrected: isCorrection(turns[i+1].Prompt),
		})
	}

	result.EligibleTurns = len(pairs)
	if len(pairs) == 0 {
		return result
	}

	for _, p := range pairs {
		if p.corrected {
			result.CorrectionsTotal++
		}
	}
	result.CorrectionRate = float64(result.CorrectionsTotal) / float64(len(pairs))
	result.FirstResponseAcceptance = 1.0 - result.CorrectionRate

	result.PerStyleEffectiveness, result.ToolScatter = styleBreakdown(pairs)
	result.SessionProgression = sessionProgression(pairs)

	return result
}

// isCorrection checks a prompt for correction markers.
func isCorrection(prompt string) bool {
	lower := strings.ToLower(prompt)
	for _, marker := range correctionMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// styleBreakdown buckets each pair by the earlier turn's prompt style and
// aggregates per-style correction rates, tool counts, token totals, and
// file-access scatter.
func styleBreakdown(pairs []turnPair) (PerStyleEffectiveness, ToolScatter) {
	type styleAcc struct {
		count       int
		corrections int
		toolCalls   int
		tokens      int
		scatterSum  float64
	}

	accs := map[PromptStyle]*styleAcc{
		StyleQuestion:   {},
		StyleImperative: {},
		StyleStatement:  {},
	}
	var overallScatter float64

	for _, p := range pairs {
		style := ClassifyStyle(p.earlier.Prompt)
		acc := accs[style]
		acc.count++
		if p.corrected {
			acc.corrections++
		}
		acc.toolCalls += len(p.earlier.Tools)
		acc.tokens += p.earlier.Metrics.InputTokens + p.earlier.Metrics.OutputTokens

		scatter := toolScatter(p.earlier)
		acc.scatterSum += scatter
		overallScatter += scatter
	}

	var perStyle PerStyleEffectiveness
	var scatter ToolScatter
	scatterBuckets := map[PromptStyle]*float64{
		StyleQuestion:   &scatter.Question,
		StyleImperative: &scatter.Imperative,
		StyleStatement:  &scatter.Statement,
	}

	for _, style := range []PromptStyle{StyleQuestion, StyleImperative, StyleStatement} {
		acc := accs[style]
		stats := perStyle.bucket(style)
		stats.Count = acc.count
		if acc.count > 0 {
			stats.CorrectionRate = float64(acc.corrections) / float64(acc.count)
			stats.AvgToolCount = float64(acc.toolCalls) / float64(acc.count)
			stats.AvgTokens = float64(acc.tokens) / float64(acc.count)
			*scatterBuckets[style] = acc.scatterSum / float64(acc.count)
		}
	}
	scatter.Overall = overallScatter / float64(len(pairs))

	return perStyle, scatter
}

// toolScatter is the ratio of distinct files touched to total tool calls for
// one turn, 0 for turns without tool calls. Non-file tools contribute to the
// denominator only, so this measures file-access dispersion rather than
// general tool dispersion.
func toolScatter(t *transcript.Turn) float64 {
	if len(t.Tools) == 0 {
		return 0
	}
	files := map[string]struct{}{}
	for _, tool := range t.Tools {
		if tool.FilesTouched != "" {
			files[tool.FilesTouched] = struct{}{}
		}
	}
	return float64(len(files)) / float64(len(t.Tools))
}

// sessionProgression splits the pair sequence at its midpoint and compares
// correction rates. WarmingUp requires the first half's rate to be strictly
// greater; equal rates are not a warming trend.
func sessionProgression(pairs []turnPair) SessionProgression {
	mid := len(pairs) / 2
	first := correctionRate(pairs[:mid])
	second := correctionRate(pairs[mid:])
	return SessionProgression{
		FirstHalfCorrectionRate:  first,
		SecondHalfCorrectionRate: second,
		WarmingUp:                first > second,
	}
}

func correctionRate(pairs []turnPair) float64 {
	if len(pairs) == 0 {
		return 0
	}
	corrected := 0
	for _, p := range pairs {
		if p.corrected {
			corrected++
		}
	}
	return float64(corrected) / float64(len(pairs))
}
