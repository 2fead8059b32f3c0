package analyzer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/blackwell-systems/confessional/internal/transcript"
)

// stopWords excludes n-grams made entirely of function words.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"the a an and or but in on at to for of with by from is it this " +
			"that are was be have has had do does did will would could should " +
			"may might can shall not no so if then than too very just about " +
			"up out all also as into like through after before between each " +
			"more some such only other new when what which where who how i " +
			"me my we our you your he she they them its been being am were " +
			"here there") {
		stopWords[w] = struct{}{}
	}
}

// imperativeVerbs is the closed set of verbs that mark a prompt as
// imperative when they appear as its first word.
var imperativeVerbs = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"fix add make create update change remove delete write read show " +
			"run build implement move rename refactor test check find search " +
			"look use try set get put install deploy push pull merge revert " +
			"undo do go stop start open close list print log debug explain " +
			"describe summarize analyze compare review clean format sort " +
			"filter group split join combine convert extract parse validate " +
			"verify ensure handle catch throw raise return pass call invoke " +
			"apply map reduce wrap unwrap flatten copy clone extend import " +
			"export require include load save store fetch send post patch") {
		imperativeVerbs[w] = struct{}{}
	}
}

// hedgingPhrases and assertivePhrases drive the certainty-marker counts.
var hedgingPhrases = []string{
	"maybe", "perhaps", "i think", "not sure", "what if", "could we", "might",
}

var assertivePhrases = []string{
	"must", "always", "definitely", "need to", "should", "have to",
	"make sure", "ensure",
}

// Agency framing patterns.
var (
	agencyIRe    = regexp.MustCompile(`\bi (want|need|think)\b`)
	agencyWeRe   = regexp.MustCompile(`\bwe (should|could|need)\b`)
	agencyYouRe  = regexp.MustCompile(`\byou (should|can|need)\b`)
	agencyLetsRe = regexp.MustCompile(`\blet'?s\b`)
)

// topNgrams bounds the reported n-gram lists.
const topNgrams = 15

// wordPunctuation is the punctuation set stripped from token edges.
const wordPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ComputeLinguistics derives corpus-level linguistic statistics from the
// authored prompts of a turn collection. Turns must already be filtered via
// AnalyzableTurns. The computation is a pure function: the same input always
// yields identical output, and empty input yields a fully-zeroed result.
func ComputeLinguistics(turns []transcript.Turn) LinguisticsResult {
	result := emptyLinguistics()

	prompts := make([]string, 0, len(turns))
	for _, t := range turns {
		if strings.TrimSpace(t.Prompt) != "" {
			prompts = append(prompts, t.Prompt)
		}
	}
	if len(prompts) == 0 {
		return result
	}

	count := len(prompts)

	questions := 0
	imperatives := 0
	for _, p := range prompts {
		if strings.Contains(p, "?") {
			questions++
		}
		if isImperative(p) {
			imperatives++
		}
	}
	result.QuestionRatio = float64(questions) / float64(count)
	result.ImperativeRatio = float64(imperatives) / float64(count)

	wordCounts := make([]int, count)
	for i, p := range prompts {
		wordCounts[i] = len(strings.Fields(p))
	}
	result.PromptLength = lengthStats(wordCounts)

	result.FrequentNgrams = NgramSets{
		Bigrams:  frequentNgrams(prompts, 2),
		Trigrams: frequentNgrams(prompts, 3),
	}

	result.CertaintyMarkers = certaintyMarkers(prompts)
	result.AgencyFraming = agencyFraming(prompts)
	result.PromptLengthByPosition = positionalLengths(wordCounts)

	return result
}

// emptyLinguistics is the fully-populated zero result.
func emptyLinguistics() LinguisticsResult {
	hedging := make(map[string]int, len(hedgingPhrases))
	for _, p := range hedgingPhrases {
		hedging[p] = 0
	}
	assertive := make(map[string]int, len(assertivePhrases))
	for _, p := range assertivePhrases {
		assertive[p] = 0
	}
	return LinguisticsResult{
		FrequentNgrams: NgramSets{
			Bigrams:  []NgramCount{},
			Trigrams: []NgramCount{},
		},
		CertaintyMarkers: CertaintyMarkers{
			HedgingPhrases:   hedging,
			AssertivePhrases: assertive,
		},
		AgencyFraming: AgencyFraming{Dominant: AgencyNone.String()},
	}
}

// isImperative reports whether the prompt's first word, punctuation-stripped
// and case-folded, is an imperative verb.
func isImperative(prompt string) bool {
	fields := strings.Fields(prompt)
	if len(fields) == 0 {
		return false
	}
	first := strings.Trim(strings.ToLower(fields[0]), wordPunctuation)
	_, ok := imperativeVerbs[first]
	return ok
}

// ClassifyStyle assigns a prompt style: question wins over imperative, and
// statement is the fallback.
func ClassifyStyle(prompt string) PromptStyle {
	if strings.Contains(prompt, "?") {
		return StyleQuestion
	}
	if isImperative(prompt) {
		return StyleImperative
	}
	return StyleStatement
}

// lengthStats computes the word-count distribution. Stddev is the population
// standard deviation, 0 when fewer than two prompts.
func lengthStats(wordCounts []int) PromptLengthStats {
	n := len(wordCounts)
	stats := PromptLengthStats{Count: n}
	if n == 0 {
		return stats
	}

	sorted := make([]int, n)
	copy(sorted, wordCounts)
	sort.Ints(sorted)

	stats.Min = sorted[0]
	stats.Max = sorted[n-1]
	if n%2 == 1 {
		stats.Median = float64(sorted[n/2])
	} else {
		stats.Median = float64(sorted[n/2-1]+sorted[n/2]) / 2
	}

	sum := 0
	for _, wc := range wordCounts {
		sum += wc
	}
	mean := float64(sum) / float64(n)
	stats.Mean = mean

	if n >= 2 {
		var variance float64
		for _, wc := range wordCounts {
			d := float64(wc) - mean
			variance += d * d
		}
		stats.Stddev = math.Sqrt(variance / float64(n))
	}
	return stats
}

// frequentNgrams extracts the top n-grams across prompts by sliding window
// over punctuation-stripped, lower-cased tokens. N-grams composed entirely
// of stop words are discarded. Ties are broken by discovery order.
func frequentNgrams(prompts []string, n int) []NgramCount {
	counts := map[string]int{}
	order := map[string]int{}
	next := 0

	for _, prompt := range prompts {
		words := tokenize(prompt)
		for i := 0; i+n <= len(words); i++ {
			gram := words[i : i+n]
			if allStopWords(gram) {
				continue
			}
			key := strings.Join(gram, " ")
			if _, seen := counts[key]; !seen {
				order[key] = next
				next++
			}
			counts[key]++
		}
	}

	ranked := make([]NgramCount, 0, len(counts))
	for key, c := range counts {
		ranked = append(ranked, NgramCount{Ngram: key, Count: c})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return order[ranked[i].Ngram] < order[ranked[j].Ngram]
	})

	if len(ranked) > topNgrams {
		ranked = ranked[:topNgrams]
	}
	if ranked == nil {
		ranked = []NgramCount{}
	}
	return ranked
}

// tokenize lower-cases and splits a prompt, stripping punctuation from token
// edges and dropping tokens that vanish entirely.
func tokenize(prompt string) []string {
	fields := strings.Fields(strings.ToLower(prompt))
	words := fields[:0]
	for _, f := range fields {
		w := strings.Trim(f, wordPunctuation)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

func allStopWords(gram []string) bool {
	for _, w := range gram {
		if _, ok := stopWords[w]; !ok {
			return false
		}
	}
	return true
}

// certaintyMarkers counts hedging and assertive phrase occurrences across
// prompts. The ratio is nil when no hedging phrase appears: division by zero
// here is a defined unknown, not an error.
func certaintyMarkers(prompts []string) CertaintyMarkers {
	hedging := make(map[string]int, len(hedgingPhrases))
	for _, p := range hedgingPhrases {
		hedging[p] = 0
	}
	assertive := make(map[string]int, len(assertivePhrases))
	for _, p := range assertivePhrases {
		assertive[p] = 0
	}

	for _, prompt := range prompts {
		lower := strings.ToLower(prompt)
		for _, phrase := range hedgingPhrases {
			hedging[phrase] += strings.Count(lower, phrase)
		}
		for _, phrase := range assertivePhrases {
			assertive[phrase] += strings.Count(lower, phrase)
		}
	}

	markers := CertaintyMarkers{
		HedgingPhrases:   hedging,
		AssertivePhrases: assertive,
	}
	for _, c := range hedging {
		markers.HedgingCount += c
	}
	for _, c := range assertive {
		markers.AssertiveCount += c
	}
	if markers.HedgingCount > 0 {
		ratio := float64(markers.AssertiveCount) / float64(markers.HedgingCount)
		markers.Ratio = &ratio
	}
	return markers
}

// agencyFraming counts the framing patterns and picks the dominant label.
// Ties resolve in the fixed enumeration order i, we, you, lets; all-zero
// counts yield "none".
func agencyFraming(prompts []string) AgencyFraming {
	framing := AgencyFraming{}
	for _, prompt := range prompts {
		lower := strings.ToLower(prompt)
		framing.ICount += len(agencyIRe.FindAllString(lower, -1))
		framing.WeCount += len(agencyWeRe.FindAllString(lower, -1))
		framing.YouCount += len(agencyYouRe.FindAllString(lower, -1))
		framing.LetsCount += len(agencyLetsRe.FindAllString(lower, -1))
	}

	counts := []struct {
		label AgencyLabel
		count int
	}{
		{AgencyI, framing.ICount},
		{AgencyWe, framing.WeCount},
		{AgencyYou, framing.YouCount},
		{AgencyLets, framing.LetsCount},
	}

	dominant := AgencyNone
	best := 0
	for _, c := range counts {
		if c.count > best {
			best = c.count
			dominant = c.label
		}
	}
	framing.Dominant = dominant.String()
	return framing
}

// positionalLengths averages word counts in the first quarter, middle half,
// and last quarter of the ordered prompt sequence. The quarter size is
// max(1, n/4) so tiny collections still populate every bucket; when the
// quarters meet, the middle falls back to the whole sequence.
func positionalLengths(wordCounts []int) PositionalLengths {
	n := len(wordCounts)
	if n == 0 {
		return PositionalLengths{}
	}

	quarter := n / 4
	if quarter < 1 {
		quarter = 1
	}
	q1End := quarter
	q3Start := n - quarter

	first := wordCounts[:q1End]
	last := wordCounts[q3Start:]
	middle := wordCounts
	if q1End < q3Start {
		middle = wordCounts[q1End:q3Start]
	}

	return PositionalLengths{
		FirstQuarterAvg: meanInts(first),
		MiddleHalfAvg:   meanInts(middle),
		LastQuarterAvg:  meanInts(last),
	}
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
