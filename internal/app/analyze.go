package app

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/confessional/internal/analyzer"
	"github.com/blackwell-systems/confessional/internal/output"
)

var analyzeFlagSince string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [cwd]",
	Short: "Full prompt analysis for a project directory",
	Long: `Runs the complete analysis over a project's transcripts: turn and tool
statistics, linguistic profile, and effectiveness signals. Renders a
styled terminal summary, or the full payload with --json.

Examples:
  confessional analyze
  confessional analyze ~/src/demo --since 2026-08-01T00:00:00Z
  confessional analyze --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFlagSince, "since", "", "Only include entries at or after this ISO timestamp")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cwd := ""
	if len(args) == 1 {
		cwd = args[0]
	}
	corpus, err := corpusFor(cfg, cwd, analyzeFlagSince)
	if err != nil {
		return err
	}

	analysis := analyzer.Analyze(corpus, cfg.Analysis.SkillExpansionWords)

	if flagJSON {
		return printJSON(analysis)
	}

	renderAnalysis(analysis)
	return nil
}

func renderAnalysis(a analyzer.Analysis) {
	fmt.Println(output.Section("Corpus"))
	fmt.Println()
	fmt.Println(output.Metric("Turns", strconv.Itoa(a.TurnCount)))
	fmt.Println(output.Metric("Sessions", strconv.Itoa(len(a.Sessions))))
	fmt.Println(output.Metric("Tool calls", strconv.Itoa(a.ToolStats.Total)))
	fmt.Println(output.Metric("Subagent tasks", strconv.Itoa(a.ToolStats.SubagentCount)))
	fmt.Println(output.Metric("Input tokens", strconv.Itoa(a.TokenStats.TotalInput)))
	fmt.Println(output.Metric("Output tokens", strconv.Itoa(a.TokenStats.TotalOutput)))

	if a.TurnCount == 0 {
		fmt.Println()
		fmt.Printf(" %s\n", output.StyleMuted.Render("No turns found. Is this a Claude Code project directory?"))
		return
	}

	renderTopTools(a.ToolStats.ByTool)

	ling := a.PromptLinguistics
	fmt.Println(output.Section("Prompt Voice"))
	fmt.Println()
	fmt.Println(output.Metric("Questions", output.RatioBar(ling.QuestionRatio, 20)))
	fmt.Println(output.Metric("Imperatives", output.RatioBar(ling.ImperativeRatio, 20)))
	fmt.Println(output.Metric("Median length", fmt.Sprintf("%.0f words", ling.PromptLength.Median)))
	fmt.Println(output.Metric("Dominant agency", ling.AgencyFraming.Dominant))

	hedging := "none"
	if ling.CertaintyMarkers.Ratio != nil {
		hedging = fmt.Sprintf("%.2f assertive per hedge", *ling.CertaintyMarkers.Ratio)
	} else if ling.CertaintyMarkers.AssertiveCount > 0 {
		hedging = "fully assertive"
	}
	fmt.Println(output.Metric("Certainty", hedging))

	eff := a.EffectivenessSignals
	fmt.Println(output.Section("Effectiveness"))
	fmt.Println()
	fmt.Println(output.Metric("Eligible turns", strconv.Itoa(eff.EligibleTurns)))
	fmt.Println(output.Metric("Correction rate", output.RatioBar(eff.CorrectionRate, 20)))
	fmt.Println(output.Metric("First acceptance", output.RatioBar(eff.FirstResponseAcceptance, 20)))

	arc := eff.SessionProgression
	delta := arc.SecondHalfCorrectionRate - arc.FirstHalfCorrectionRate
	arrow := output.TrendArrow(delta, false)
	fmt.Println(output.Metric("Session arc", arrow))
	if arc.WarmingUp {
		fmt.Println(output.Metric("", output.StyleSuccess.Render("warming up: fewer corrections later in sessions")))
	}

	fmt.Println(output.Section("By Prompt Style"))
	fmt.Println()
	tbl := output.NewTable("Style", "Turns", "Corrections", "Avg Tools", "Avg Tokens", "Scatter")
	styleRow := func(name string, s analyzer.StyleStats, scatter float64) {
		rate := fmt.Sprintf("%.0f%%", s.CorrectionRate*100)
		if s.Count > 0 && s.CorrectionRate >= 0.5 {
			rate = output.StyleWarning.Render(rate)
		}
		tbl.AddRow(
			name,
			strconv.Itoa(s.Count),
			rate,
			fmt.Sprintf("%.1f", s.AvgToolCount),
			fmt.Sprintf("%.0f", s.AvgTokens),
			fmt.Sprintf("%.2f", scatter),
		)
	}
	styleRow("question", eff.PerStyleEffectiveness.Question, eff.ToolScatter.Question)
	styleRow("imperative", eff.PerStyleEffectiveness.Imperative, eff.ToolScatter.Imperative)
	styleRow("statement", eff.PerStyleEffectiveness.Statement, eff.ToolScatter.Statement)
	tbl.Print()

	renderNgrams(ling.FrequentNgrams)

	fmt.Println()
	fmt.Printf(" %s\n", output.StyleMuted.Render("Use --json for the full payload"))
}

// renderTopTools prints the five most used tools in descending order.
func renderTopTools(byTool map[string]int) {
	if len(byTool) == 0 {
		return
	}

	type toolEntry struct {
		name  string
		count int
	}
	var tools []toolEntry
	for name, count := range byTool {
		tools = append(tools, toolEntry{name, count})
	}
	sort.Slice(tools, func(i, j int) bool {
		if tools[i].count != tools[j].count {
			return tools[i].count > tools[j].count
		}
		return tools[i].name < tools[j].name
	})
	if len(tools) > 5 {
		tools = tools[:5]
	}

	fmt.Println(output.Section("Tools (top 5)"))
	fmt.Println()
	for _, t := range tools {
		fmt.Println(output.Metric(t.name, strconv.Itoa(t.count)))
	}
}

func renderNgrams(sets analyzer.NgramSets) {
	if len(sets.Bigrams) == 0 && len(sets.Trigrams) == 0 {
		return
	}

	fmt.Println(output.Section("Frequent Phrases"))
	fmt.Println()

	limit := func(n []analyzer.NgramCount) []analyzer.NgramCount {
		if len(n) > 5 {
			return n[:5]
		}
		return n
	}
	for _, ng := range limit(sets.Bigrams) {
		fmt.Println(output.Metric(ng.Ngram, strconv.Itoa(ng.Count)))
	}
	for _, ng := range limit(sets.Trigrams) {
		fmt.Println(output.Metric(ng.Ngram, strconv.Itoa(ng.Count)))
	}
}
