package cmd

import (
	"github.com/abhisek/daxquiz/internal/app"
	"github.com/spf13/cobra"
)

// runApp loads the question set, sets up logging, and launches the TUI.
// A malformed question set stops here, before the terminal is taken over.
func runApp(cmd *cobra.Command) error {
	set, err := resolveQuestionSet(cmd)
	if err != nil {
		return err
	}

	log, err := resolveLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("starting quiz", "title", set.Title(), "questions", set.Len(), "version", version)

	return app.Run(app.Options{
		Set:    set,
		Logger: log,
	})
}
