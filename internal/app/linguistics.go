package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/confessional/internal/analyzer"
)

var linguisticsFlagSince string

var linguisticsCmd = &cobra.Command{
	Use:   "linguistics [cwd]",
	Short: "Analyze prompt phrasing, vocabulary, and certainty markers",
	Long: `Computes linguistic statistics over the genuine prompts of a project's
transcripts: question and imperative ratios, length distribution, frequent
n-grams, hedging versus assertive phrasing, and agency framing. Prompts
that are expanded skill invocations are excluded. Output is JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLinguistics,
}

func init() {
	linguisticsCmd.Flags().StringVar(&linguisticsFlagSince, "since", "", "Only include entries at or after this ISO timestamp")
	rootCmd.AddCommand(linguisticsCmd)
}

func runLinguistics(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cwd := ""
	if len(args) == 1 {
		cwd = args[0]
	}
	corpus, err := corpusFor(cfg, cwd, linguisticsFlagSince)
	if err != nil {
		return err
	}

	turns := analyzer.AnalyzableTurns(corpus.Turns, cfg.Analysis.SkillExpansionWords)
	return printJSON(analyzer.ComputeLinguistics(turns))
}
