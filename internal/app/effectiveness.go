package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/confessional/internal/analyzer"
)

var effectivenessFlagSince string

var effectivenessCmd = &cobra.Command{
	Use:   "effectiveness [cwd]",
	Short: "Analyze correction and first-response acceptance signals",
	Long: `Computes effectiveness signals over consecutive same-session turns:
how often a prompt corrects the previous response, which prompt styles
get corrected most, how scattered the tool file access was, and whether
sessions improve as they go. Output is JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEffectiveness,
}

func init() {
	effectivenessCmd.Flags().StringVar(&effectivenessFlagSince, "since", "", "Only include entries at or after this ISO timestamp")
	rootCmd.AddCommand(effectivenessCmd)
}

func runEffectiveness(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cwd := ""
	if len(args) == 1 {
		cwd = args[0]
	}
	corpus, err := corpusFor(cfg, cwd, effectivenessFlagSince)
	if err != nil {
		return err
	}

	turns := analyzer.AnalyzableTurns(corpus.Turns, cfg.Analysis.SkillExpansionWords)
	return printJSON(analyzer.ComputeEffectiveness(turns))
}
