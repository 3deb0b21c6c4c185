package main

import (
	"github.com/spf13/cobra"

	"prosecraft/internal/config"
	"prosecraft/internal/log"
	"prosecraft/internal/workspace"
)

var (
	cfgFile      string
	workspaceDir string
	dbPath       string
	asJSON       bool
)

var (
	cfg   config.Config
	paths workspace.Paths
)

var rootCmd = &cobra.Command{
	Use:   "prosecraft",
	Short: "Manuscript craft analysis: readability, structure, POV and motifs",
	Long: `ProseCraft analyzes a manuscript for the craft signals an editor reads for:

  - Readability indices and estimated reading time
  - Narrative beat placement against a structure template
  - Point-of-view consistency across paragraphs
  - Recurring symbols, themes and repeated phrases

Input may be plain text, Markdown, DOCX or PDF. Runs can be saved to a local
history database for comparing drafts.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: <workspace>/configs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(
		&workspaceDir, "workspace", "", "workspace directory (default: ~/ProseCraft)")
	rootCmd.PersistentFlags().StringVar(
		&dbPath, "db", "", "history database (default: <workspace>/history/runs.db)")
	rootCmd.PersistentFlags().BoolVar(
		&asJSON, "json", false, "emit full JSON instead of a summary")

	rootCmd.PersistentPreRunE = setup
	rootCmd.AddCommand(analyzeCmd, readabilityCmd, beatsCmd, povCmd, motifsCmd, templatesCmd, historyCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if workspaceDir != "" {
		paths, err = workspace.EnsureAt(workspaceDir)
	} else {
		paths, err = workspace.EnsureDefault()
	}
	if err != nil {
		return err
	}

	if cfgFile == "" {
		cfgFile = paths.ConfigFile
	}
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	if dbPath == "" {
		dbPath = cfg.HistoryDB
	}
	if dbPath == "" {
		dbPath = paths.HistoryDB
	}

	return log.Init(cfg.Logging)
}
