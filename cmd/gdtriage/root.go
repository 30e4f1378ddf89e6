package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/gdtriage/internal/output"
	"github.com/jackzampolin/gdtriage/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "gdtriage",
	Short: "Triage Google Drive documents: derive titles and sort into folders",
	Long: `gdtriage automates cleanup of a Google Drive full of documents.

Two workflows:
  rename - give untitled Google Docs a title derived from their first line
           of content, trashing documents with no usable content
  sort   - classify documents by title with an LLM and file them into
           per-category folders

Credentials live in ~/.gdtriage: credentials.json (OAuth client secrets
from the Google Cloud console) and token.json (cached on first login).`,
	Version: version.GitRelease,

	// main prints the error itself; avoid cobra printing it a second time.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.gdtriage/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "gdtriage home directory (default: ~/.gdtriage)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		output.SetFormat(outputFormat)
	}

	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
