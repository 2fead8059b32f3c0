package analyzer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/blackwell-systems/confessional/internal/transcript"
)

func promptTurns(prompts ...string) []transcript.Turn {
	turns := make([]transcript.Turn, len(prompts))
	for i, p := range prompts {
		turns[i] = transcript.Turn{Prompt: p, SessionID: "s1"}
	}
	return turns
}

func TestComputeLinguistics_EmptyInput(t *testing.T) {
	result := ComputeLinguistics(nil)

	if result.QuestionRatio != 0 || result.ImperativeRatio != 0 {
		t.Errorf("ratios not zero: %+v", result)
	}
	if result.PromptLength.Count != 0 {
		t.Errorf("Count = %d, want 0", result.PromptLength.Count)
	}
	if result.FrequentNgrams.Bigrams == nil || result.FrequentNgrams.Trigrams == nil {
		t.Error("n-gram slices must be non-nil for empty input")
	}
	if result.CertaintyMarkers.Ratio != nil {
		t.Error("certainty ratio must be nil for empty input")
	}
	if result.CertaintyMarkers.HedgingPhrases["maybe"] != 0 {
		t.Error("hedging phrase map must be pre-zeroed")
	}
	if result.AgencyFraming.Dominant != "none" {
		t.Errorf("Dominant = %q, want none", result.AgencyFraming.Dominant)
	}
}

func TestComputeLinguistics_Deterministic(t *testing.T) {
	turns := promptTurns(
		"fix the parser for example inputs",
		"why does it fail? maybe the buffer",
		"for example, try again with a bigger buffer for example",
	)
	first := ComputeLinguistics(turns)
	second := ComputeLinguistics(turns)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated runs over the same turns diverged")
	}
}

func TestComputeLinguistics_Ratios(t *testing.T) {
	turns := promptTurns(
		"why is this broken?",  // question
		"fix the parser",       // imperative
		"the parser is broken", // statement
		"Run. the tests",       // imperative, punctuation-stripped first word
	)
	result := ComputeLinguistics(turns)

	if result.QuestionRatio != 0.25 {
		t.Errorf("QuestionRatio = %v, want 0.25", result.QuestionRatio)
	}
	if result.ImperativeRatio != 0.5 {
		t.Errorf("ImperativeRatio = %v, want 0.5", result.ImperativeRatio)
	}
}

func TestComputeLinguistics_LengthStats(t *testing.T) {
	turns := promptTurns(
		"one two",                // 2 words
		"one two three four",     // 4
		"one two three four five six", // 6
	)
	stats := ComputeLinguistics(turns).PromptLength

	if stats.Count != 3 {
		t.Fatalf("Count = %d, want 3", stats.Count)
	}
	if stats.Min != 2 || stats.Max != 6 {
		t.Errorf("Min/Max = %d/%d, want 2/6", stats.Min, stats.Max)
	}
	if stats.Median != 4 {
		t.Errorf("Median = %v, want 4", stats.Median)
	}
	if stats.Mean != 4 {
		t.Errorf("Mean = %v, want 4", stats.Mean)
	}
	// Population stddev of {2,4,6} is sqrt(8/3) ~ 1.633.
	if stats.Stddev < 1.63 || stats.Stddev > 1.64 {
		t.Errorf("Stddev = %v, want ~1.633", stats.Stddev)
	}
}

func TestComputeLinguistics_StddevZeroForSinglePrompt(t *testing.T) {
	stats := ComputeLinguistics(promptTurns("just one prompt")).PromptLength
	if stats.Stddev != 0 {
		t.Errorf("Stddev = %v, want 0 for a single prompt", stats.Stddev)
	}
}

func TestFrequentNgrams_CountsAcrossPrompts(t *testing.T) {
	turns := promptTurns(
		"use for example the cache",
		"for example the store",
		"and for example, the hook",
	)
	bigrams := ComputeLinguistics(turns).FrequentNgrams.Bigrams

	if len(bigrams) == 0 {
		t.Fatal("expected bigrams")
	}
	if bigrams[0].Ngram != "for example" || bigrams[0].Count != 3 {
		t.Errorf("top bigram = %+v, want {for example 3}", bigrams[0])
	}
}

func TestFrequentNgrams_DropsAllStopwordGrams(t *testing.T) {
	bigrams := ComputeLinguistics(promptTurns("the of and the of and")).FrequentNgrams.Bigrams
	if len(bigrams) != 0 {
		t.Errorf("all-stopword bigrams survived: %v", bigrams)
	}
}

func TestFrequentNgrams_TieBrokenByDiscoveryOrder(t *testing.T) {
	bigrams := ComputeLinguistics(promptTurns("alpha beta", "gamma delta")).FrequentNgrams.Bigrams
	if len(bigrams) != 2 {
		t.Fatalf("expected 2 bigrams, got %v", bigrams)
	}
	if bigrams[0].Ngram != "alpha beta" || bigrams[1].Ngram != "gamma delta" {
		t.Errorf("tie not broken by discovery order: %v", bigrams)
	}
}

func TestCertaintyMarkers_RatioNilWithoutHedging(t *testing.T) {
	markers := ComputeLinguistics(promptTurns("you must always ensure this")).CertaintyMarkers

	if markers.HedgingCount != 0 {
		t.Fatalf("HedgingCount = %d, want 0", markers.HedgingCount)
	}
	if markers.AssertiveCount == 0 {
		t.Fatal("expected assertive phrases to be counted")
	}
	if markers.Ratio != nil {
		t.Errorf("Ratio = %v, want nil when no hedging was seen", *markers.Ratio)
	}
}

func TestCertaintyMarkers_Ratio(t *testing.T) {
	markers := ComputeLinguistics(promptTurns(
		"maybe we should do this",
		"you must do this",
	)).CertaintyMarkers

	// "maybe" hedges once; "should" and "must" assert.
	if markers.HedgingCount != 1 {
		t.Fatalf("HedgingCount = %d, want 1", markers.HedgingCount)
	}
	if markers.AssertiveCount != 2 {
		t.Fatalf("AssertiveCount = %d, want 2", markers.AssertiveCount)
	}
	if markers.Ratio == nil || *markers.Ratio != 2 {
		t.Errorf("Ratio = %v, want 2", markers.Ratio)
	}
}

func TestAgencyFraming_DominantAndTies(t *testing.T) {
	tests := []struct {
		name     string
		prompts  []string
		dominant string
	}{
		{"i dominant", []string{"I want the cache gone", "I need logs"}, "i"},
		{"lets", []string{"let's refactor this"}, "lets"},
		{"lets apostrophe free", []string{"lets go"}, "lets"},
		{"tie resolves to earlier label", []string{"I want it and you should do it"}, "i"},
		{"none", []string{"the build is green"}, "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			framing := ComputeLinguistics(promptTurns(tt.prompts...)).AgencyFraming
			if framing.Dominant != tt.dominant {
				t.Errorf("Dominant = %q, want %q (counts %+v)", framing.Dominant, tt.dominant, framing)
			}
		})
	}
}

func TestPositionalLengths_TinyCollection(t *testing.T) {
	// Two prompts: quarter size clamps to 1, quarters meet, so the middle
	// falls back to the whole sequence.
	pos := ComputeLinguistics(promptTurns("one two", "one two three four")).PromptLengthByPosition

	if pos.FirstQuarterAvg != 2 {
		t.Errorf("FirstQuarterAvg = %v, want 2", pos.FirstQuarterAvg)
	}
	if pos.LastQuarterAvg != 4 {
		t.Errorf("LastQuarterAvg = %v, want 4", pos.LastQuarterAvg)
	}
	if pos.MiddleHalfAvg != 3 {
		t.Errorf("MiddleHalfAvg = %v, want 3 (whole-sequence fallback)", pos.MiddleHalfAvg)
	}
}

func TestPositionalLengths_EightPrompts(t *testing.T) {
	prompts := make([]string, 8)
	for i := range prompts {
		prompts[i] = strings.Repeat("w ", i+1) // 1..8 words
	}
	pos := ComputeLinguistics(promptTurns(prompts...)).PromptLengthByPosition

	if pos.FirstQuarterAvg != 1.5 { // prompts 1,2
		t.Errorf("FirstQuarterAvg = %v, want 1.5", pos.FirstQuarterAvg)
	}
	if pos.MiddleHalfAvg != 4.5 { // prompts 3..6
		t.Errorf("MiddleHalfAvg = %v, want 4.5", pos.MiddleHalfAvg)
	}
	if pos.LastQuarterAvg != 7.5 { // prompts 7,8
		t.Errorf("LastQuarterAvg = %v, want 7.5", pos.LastQuarterAvg)
	}
}

func TestClassifyStyle(t *testing.T) {
	tests := []struct {
		prompt string
		want   PromptStyle
	}{
		{"why is this slow?", StyleQuestion},
		{"fix it? or not", StyleQuestion}, // question wins over imperative
		{"fix the parser", StyleImperative},
		{"the parser works now", StyleStatement},
		{"", StyleStatement},
	}
	for _, tt := range tests {
		if got := ClassifyStyle(tt.prompt); got != tt.want {
			t.Errorf("ClassifyStyle(%q) = %v, want %v", tt.prompt, got, tt.want)
		}
	}
}

func TestIsSkillExpansion(t *testing.T) {
	// The header "# Deploy" contributes two fields, so these land exactly
	// at 100 and 99 words.
	body98 := strings.Repeat("word ", 98)
	body97 := strings.Repeat("word ", 97)

	tests := []struct {
		name   string
		prompt string
		want   bool
	}{
		{"at threshold", "# Deploy\n" + body98, true},
		{"one under threshold", "# Deploy\n" + body97, false},
		{"no header", strings.Repeat("word ", 150), false},
		{"header only", "# Run Tests", false},
		{"header with blank body", "# Run Tests\n\n   \n", false},
		{"leading whitespace", "  # Deploy\n" + body98, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSkillExpansion(tt.prompt, DefaultSkillExpansionWords); got != tt.want {
				t.Errorf("IsSkillExpansion = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzableTurns_Filters(t *testing.T) {
	expansion := "# Deploy\n" + strings.Repeat("word ", 120)
	turns := promptTurns("real prompt", "   ", expansion, "another real one")

	kept := AnalyzableTurns(turns, DefaultSkillExpansionWords)
	if len(kept) != 2 {
		t.Fatalf("kept %d turns, want 2", len(kept))
	}
	if kept[0].Prompt != "real prompt" || kept[1].Prompt != "another real one" {
		t.Errorf("wrong turns kept: %+v", kept)
	}
}
