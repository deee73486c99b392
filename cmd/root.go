package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/daxquiz/internal/logger"
	"github.com/abhisek/daxquiz/internal/questionfile"
	"github.com/abhisek/daxquiz/internal/quiz"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "daxquiz",
	Short:        "DAX quiz: SUM vs SUMX",
	Long:         "daxquiz — a terminal quiz on DAX aggregation. Pick an answer for each question, then check them all at once.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("questions", "", "Path to a YAML or JSON question file (overrides DAXQUIZ_QUESTIONS env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides DAXQUIZ_LOG_FILE env var)")
	rootCmd.PersistentFlags().String("log-mode", "dev", "Log format: dev or prod")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveQuestionsPath returns the question file path using --questions
// (highest priority), then DAXQUIZ_QUESTIONS. Empty means the built-in set.
func resolveQuestionsPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		return p
	}
	return os.Getenv("DAXQUIZ_QUESTIONS")
}

// resolveQuestionSet loads the question set selected by flags or env,
// falling back to the built-in DAX questions.
func resolveQuestionSet(cmd *cobra.Command) (*quiz.QuestionSet, error) {
	path := resolveQuestionsPath(cmd)
	if path == "" {
		return quiz.Default()
	}
	set, err := questionfile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return set, nil
}

// resolveLogger builds the logger from --log-file / DAXQUIZ_LOG_FILE and
// --log-mode.
func resolveLogger(cmd *cobra.Command) (*logger.Logger, error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		path = os.Getenv("DAXQUIZ_LOG_FILE")
	}
	mode, _ := cmd.Flags().GetString("log-mode")

	log, err := logger.New(mode, path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return log, nil
}
