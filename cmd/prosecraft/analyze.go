package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prosecraft/internal/engine"
	"prosecraft/internal/ingest"
	"prosecraft/internal/store"
	"prosecraft/internal/workspace"
)

var (
	templateName string
	saveRun      bool
	exportReport bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <manuscript>",
	Short: "Run the full analysis and print a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := ingest.ParseFile(args[0])
		if err != nil {
			return err
		}

		tpl, ok := cfg.Template(templateName)
		if !ok {
			return fmt.Errorf("unknown structure template %q", templateName)
		}

		rep := engine.BuildReport(parsed.Title, parsed.Text, engine.Options{Template: tpl})

		if saveRun {
			if err := store.SaveReport(dbPath, rep); err != nil {
				return fmt.Errorf("save run: %w", err)
			}
		}
		if exportReport {
			path, err := workspace.ExportReport(paths.ReportsDir, rep)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "report written to", path)
		}

		if asJSON {
			return printJSON(cmd, rep)
		}
		printSummary(cmd, rep)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&templateName, "template", "t", "", "structure template (default from config)")
	analyzeCmd.Flags().BoolVar(&saveRun, "save", false, "record this run in the history database")
	analyzeCmd.Flags().BoolVar(&exportReport, "export", false, "write the full report JSON into the workspace reports directory")
}

func printSummary(cmd *cobra.Command, rep engine.Report) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s  (%d words, run %s)\n", rep.Title, rep.WordCount, rep.RunID)
	fmt.Fprintf(w, "Overall craft score: %d/100\n\n", rep.OverallScore)

	fmt.Fprintf(w, "Readability: %s (FRE %.1f, grade %.1f), reading time %s\n",
		rep.Readability.ReadingLevel, rep.Readability.FleschReadingEase,
		rep.Readability.FleschKincaidGrade, rep.Readability.ReadingTimeDisplay)
	fmt.Fprintf(w, "Structure (%s): %d beats located\n", rep.Template, len(rep.Structure.Beats))
	for _, b := range rep.Structure.Beats {
		fmt.Fprintf(w, "  %-28s at %5.1f%%  (expected %3.0f%%, confidence %.0f)\n",
			b.Name, b.ActualPercent, b.ExpectedPercent, b.Confidence)
	}
	fmt.Fprintf(w, "Point of view: %s, consistency %d/100, %d shifts\n",
		rep.POV.DominantPOV, rep.POV.ConsistencyScore, rep.POV.ShiftCount)
	fmt.Fprintf(w, "Motifs: %d symbols, %d themes, %d repeated phrases\n",
		rep.Motifs.SymbolCount, rep.Motifs.ThemeCount, rep.Motifs.PhraseCount)

	recs := append([]string{}, rep.Readability.Recommendations...)
	recs = append(recs, rep.Structure.Recommendations...)
	recs = append(recs, rep.POV.Recommendations...)
	recs = append(recs, rep.Motifs.Recommendations...)
	if len(recs) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, r := range recs {
			fmt.Fprintf(w, "  - %s\n", r)
		}
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readManuscript loads one manuscript argument for the single-analyzer
// commands.
func readManuscript(path string) (*ingest.Parsed, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("manuscript: %w", err)
	}
	return ingest.ParseFile(path)
}
