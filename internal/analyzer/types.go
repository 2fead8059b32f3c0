// Package analyzer computes linguistic and effectiveness signals over
// reconstructed transcript turns.
package analyzer

// PromptStyle classifies a prompt's phrasing. The order of the constants is
// the fixed tie-break order used wherever styles are enumerated.
type PromptStyle int

const (
	StyleQuestion PromptStyle = iota
	StyleImperative
	StyleStatement
)

// String returns the serialized style label.
func (s PromptStyle) String() string {
	switch s {
	case StyleQuestion:
		return "question"
	case StyleImperative:
		return "imperative"
	default:
		return "statement"
	}
}

// AgencyLabel identifies a first/second-person framing pattern. The order of
// the constants is the fixed tie-break order for the dominant computation.
type AgencyLabel int

const (
	AgencyI AgencyLabel = iota
	AgencyWe
	AgencyYou
	AgencyLets
	AgencyNone
)

// String returns the serialized agency label.
func (a AgencyLabel) String() string {
	switch a {
	case AgencyI:
		return "i"
	case AgencyWe:
		return "we"
	case AgencyYou:
		return "you"
	case AgencyLets:
		return "lets"
	default:
		return "none"
	}
}

// LinguisticsResult captures corpus-level linguistic statistics over the
// authored prompts of a turn collection. Every field is populated even for
// empty input, so consumers never special-case "no data".
type LinguisticsResult struct {
	QuestionRatio          float64           `json:"question_ratio"`
	ImperativeRatio        float64           `json:"imperative_ratio"`
	PromptLength           PromptLengthStats `json:"prompt_length"`
	FrequentNgrams         NgramSets         `json:"frequent_ngrams"`
	CertaintyMarkers       CertaintyMarkers  `json:"certainty_markers"`
	AgencyFraming          AgencyFraming     `json:"agency_framing"`
	PromptLengthByPosition PositionalLengths `json:"prompt_length_by_position"`
}

// PromptLengthStats is the word-count distribution across prompts.
type PromptLengthStats struct {
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Stddev float64 `json:"stddev"`
	Count  int     `json:"count"`
}

// NgramCount is one n-gram with its aggregate occurrence count.
type NgramCount struct {
	Ngram string `json:"ngram"`
	Count int    `json:"count"`
}

// NgramSets holds the most frequent bigrams and trigrams.
type NgramSets struct {
	Bigrams  []NgramCount `json:"bigrams"`
	Trigrams []NgramCount `json:"trigrams"`
}

// CertaintyMarkers counts hedging and assertive phrasing across prompts.
// Ratio is nil (an explicit unknown, not zero) when no hedging was seen.
type CertaintyMarkers struct {
	HedgingCount     int            `json:"hedging_count"`
	AssertiveCount   int            `json:"assertive_count"`
	Ratio            *float64       `json:"ratio"`
	HedgingPhrases   map[string]int `json:"hedging_phrases"`
	AssertivePhrases map[string]int `json:"assertive_phrases"`
}

// AgencyFraming counts first-person, first-person-plural, second-person,
// and "let's" phrasing patterns.
type AgencyFraming struct {
	ICount    int    `json:"i_count"`
	WeCount   int    `json:"we_count"`
	YouCount  int    `json:"you_count"`
	LetsCount int    `json:"lets_count"`
	Dominant  string `json:"dominant"`
}

// PositionalLengths is the average prompt word count in the first quarter,
// middle half, and last quarter of the ordered prompt sequence.
type PositionalLengths struct {
	FirstQuarterAvg float64 `json:"first_quarter_avg"`
	MiddleHalfAvg   float64 `json:"middle_half_avg"`
	LastQuarterAvg  float64 `json:"last_quarter_avg"`
}

// EffectivenessResult captures correction and tool-dispersion signals over
// consecutive same-session turn pairs.
type EffectivenessResult struct {
	CorrectionRate          float64                `json:"correction_rate"`
	CorrectionsTotal        int                    `json:"corrections_total"`
	EligibleTurns           int                    `json:"eligible_turns"`
	PerStyleEffectiveness   PerStyleEffectiveness  `json:"per_style_effectiveness"`
	ToolScatter             ToolScatter            `json:"tool_scatter"`
	FirstResponseAcceptance float64                `json:"first_response_acceptance"`
	SessionProgression      SessionProgression     `json:"session_progression"`
}

// PerStyleEffectiveness buckets pair outcomes by the earlier turn's style.
type PerStyleEffectiveness struct {
	Question   StyleStats `json:"question"`
	Imperative StyleStats `json:"imperative"`
	Statement  StyleStats `json:"statement"`
}

// bucket returns the stats slot for a style.
func (p *PerStyleEffectiveness) bucket(s PromptStyle) *StyleStats {
	switch s {
	case StyleQuestion:
		return &p.Question
	case StyleImperative:
		return &p.Imperative
	default:
		return &p.Statement
	}
}

// StyleStats summarizes the eligible turns of one prompt style.
type StyleStats struct {
	Count          int     `json:"count"`
	CorrectionRate float64 `json:"correction_rate"`
	AvgToolCount   float64 `json:"avg_tool_count"`
	AvgTokens      float64 `json:"avg_tokens"`
}

// ToolScatter is the mean ratio of distinct files touched to total tool
// calls, per style and overall. Higher values mean more scattered file
// access; turns without tool calls contribute 0.
type ToolScatter struct {
	Question   float64 `json:"question"`
	Imperative float64 `json:"imperative"`
	Statement  float64 `json:"statement"`
	Overall    float64 `json:"overall"`
}

// SessionProgression compares correction rates between the first and second
// halves of the eligible-pair sequence. WarmingUp is set only when the first
// half's rate is strictly higher.
type SessionProgression struct {
	FirstHalfCorrectionRate  float64 `json:"first_half_correction_rate"`
	SecondHalfCorrectionRate float64 `json:"second_half_correction_rate"`
	WarmingUp                bool    `json:"warming_up"`
}
