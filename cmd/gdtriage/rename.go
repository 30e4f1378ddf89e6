package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/gdtriage/internal/output"
	"github.com/jackzampolin/gdtriage/internal/triage"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Derive titles for untitled documents from their content",
	Long: `Scan every Google Doc in the Drive and process the ones whose title is a
placeholder ("Untitled" or "Untitled document"). The first meaningful line of
the document body becomes the new title after sanitization. Documents with no
usable content are moved to trash. Well-titled documents are left untouched.

Examples:
  gdtriage rename                 # Process all untitled documents
  gdtriage rename -o json         # Emit the run report as JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := setup(ctx)
		if err != nil {
			return err
		}

		runner := triage.New(env.runnerConfig())
		env.watchPause(runner)

		report, err := runner.RenameUntitled(ctx)
		if err != nil {
			return err
		}
		return output.Write(report)
	},
}
