package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/daxquiz/internal/questionfile"
	"github.com/abhisek/daxquiz/internal/quiz"
	"github.com/abhisek/daxquiz/internal/ui/components"
	"github.com/abhisek/daxquiz/internal/ui/markup"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Inspect and validate question sets",
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in the active set",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := resolveQuestionSet(cmd)
		if err != nil {
			return err
		}
		writeQuestionTable(cmd.OutOrStdout(), set)
		return nil
	},
}

var questionsValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a question file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := questionfile.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", args[0], pluralize(set.Len(), "question", "questions"))
		return nil
	},
}

var questionsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the active question set as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := resolveQuestionSet(cmd)
		if err != nil {
			return err
		}
		data, err := questionfile.Encode(set)
		if err != nil {
			return fmt.Errorf("encode questions: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

const titleColumnWidth = 50

// writeQuestionTable prints one row per question. Titles are cut and
// padded by display width so wide runes keep the columns aligned.
func writeQuestionTable(w io.Writer, set *quiz.QuestionSet) {
	fmt.Fprintln(w, set.Title())
	fmt.Fprintln(w)

	// Header.
	fmt.Fprintf(w, "%4s  %s  %7s  %s\n", "ID", padRight("Title", titleColumnWidth), "Options", "Answer")
	fmt.Fprintln(w, strings.Repeat("─", 75))

	for _, q := range set.All() {
		title := ansi.Truncate(markup.Plain(q.Title), titleColumnWidth, "...")
		fmt.Fprintf(w, "%4d  %s  %7d  %s\n",
			q.ID, padRight(title, titleColumnWidth), q.NumOptions(), components.OptionLabel(q.Correct))
	}

	fmt.Fprintf(w, "\n%s\n", pluralize(set.Len(), "question", "questions"))
}

func padRight(s string, width int) string {
	if n := ansi.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

func init() {
	questionsCmd.AddCommand(questionsListCmd)
	questionsCmd.AddCommand(questionsValidateCmd)
	questionsCmd.AddCommand(questionsExportCmd)
}
