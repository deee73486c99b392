package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/daxquiz/internal/quiz"
	"github.com/abhisek/daxquiz/internal/report"
	"github.com/spf13/cobra"
)

const checkReportWidth = 80

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check answers without the interactive UI",
	Long: `Evaluate a set of answers and print the same per-question report the
quiz shows. Answers are given as question ID and 1-based option number,
e.g. --answer 1=2 picks option B for question 1. Questions without an
answer are reported as skipped.`,
	Example: "  daxquiz check --answer 1=2 --answer 2=1 --answer 3=2",
	RunE:    runCheck,
}

func init() {
	checkCmd.Flags().StringArray("answer", nil, "Answer as ID=N with N the 1-based option number (repeatable)")
	checkCmd.Flags().Bool("strict", false, "Exit with an error unless every answer is correct")
}

func runCheck(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetStringArray("answer")
	strict, _ := cmd.Flags().GetBool("strict")

	set, err := resolveQuestionSet(cmd)
	if err != nil {
		return err
	}

	answers, err := parseAnswers(raw)
	if err != nil {
		return err
	}

	session := quiz.NewSession(set)
	for _, a := range answers {
		if err := session.SetAnswer(a.questionID, a.option); err != nil {
			return fmt.Errorf("answer %s: %w", a.raw, err)
		}
	}

	res := session.Evaluate(set)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.Render(res, checkReportWidth))

	if strict && res.CorrectCount < res.TotalCount {
		return fmt.Errorf("%d of %d answers incorrect or missing", res.TotalCount-res.CorrectCount, res.TotalCount)
	}
	return nil
}

type answerArg struct {
	raw        string
	questionID int
	option     int // 0-based
}

// parseAnswers parses ID=N pairs. N is 1-based on the command line.
func parseAnswers(raw []string) ([]answerArg, error) {
	answers := make([]answerArg, 0, len(raw))
	for _, r := range raw {
		idStr, optStr, ok := strings.Cut(r, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer %q: want ID=N", r)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: bad question id: %w", r, err)
		}
		opt, err := strconv.Atoi(strings.TrimSpace(optStr))
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: bad option number: %w", r, err)
		}
		answers = append(answers, answerArg{raw: r, questionID: id, option: opt - 1})
	}
	return answers, nil
}
