package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/gdtriage/internal/classify"
	"github.com/jackzampolin/gdtriage/internal/folders"
	"github.com/jackzampolin/gdtriage/internal/output"
	"github.com/jackzampolin/gdtriage/internal/triage"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Classify documents by title and file them into category folders",
	Long: `Classify every Google Doc in the Drive by its current title using the
configured OpenAI model, then move each document into its category's folder.
Folders are created on first use. Titles the model cannot place land in the
fallback category ("Other" by default).

The category vocabulary, fallback label, and model are set in config.yaml;
the API key is read from ${OPENAI_API_KEY} unless overridden.

Examples:
  gdtriage sort                   # Sort all documents
  gdtriage sort -o json           # Emit the run report as JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := setup(ctx)
		if err != nil {
			return err
		}

		classifier := classify.New(classify.Config{
			APIKey:     env.cfg.ResolveAPIKey(),
			Model:      env.cfg.Classifier.Model,
			Categories: env.cfg.Triage.Categories,
			Fallback:   env.cfg.Triage.FallbackCategory,
			Timeout:    time.Duration(env.cfg.Classifier.TimeoutSeconds) * time.Second,
			Logger:     env.logger,
		})
		resolver := folders.New(env.store, env.cfg.Triage.ParentFolder, env.logger)

		runnerCfg := env.runnerConfig()
		runnerCfg.Classifier = classifier
		runnerCfg.Resolver = resolver

		runner := triage.New(runnerCfg)
		env.watchPause(runner)

		report, err := runner.Sort(ctx)
		if err != nil {
			return err
		}
		return output.Write(report)
	},
}
