package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prosecraft/internal/beats"
	"prosecraft/internal/motif"
	"prosecraft/internal/pov"
	"prosecraft/internal/readability"
)

var readabilityCmd = &cobra.Command{
	Use:   "readability <manuscript>",
	Short: "Compute readability indices and reading time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := readManuscript(args[0])
		if err != nil {
			return err
		}
		m := readability.Analyze(parsed.Text)
		if asJSON {
			return printJSON(cmd, m)
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Words: %d  Sentences: %d  Syllables: %d\n", m.TotalWords, m.TotalSentences, m.TotalSyllables)
		fmt.Fprintf(w, "Flesch Reading Ease:  %6.1f  (%s)\n", m.FleschReadingEase, m.ReadingLevel)
		fmt.Fprintf(w, "Flesch-Kincaid Grade: %6.1f\n", m.FleschKincaidGrade)
		fmt.Fprintf(w, "Gunning Fog:          %6.1f\n", m.GunningFog)
		fmt.Fprintf(w, "SMOG Index:           %6.1f\n", m.SMOGIndex)
		fmt.Fprintf(w, "Reading time: %s\n", m.ReadingTimeDisplay)
		for _, r := range m.Recommendations {
			fmt.Fprintf(w, "  - %s\n", r)
		}
		return nil
	},
}

var beatsTemplateName string

func init() {
	beatsCmd.Flags().StringVarP(&beatsTemplateName, "template", "t", "", "structure template (default from config)")
}

var beatsCmd = &cobra.Command{
	Use:   "beats <manuscript>",
	Short: "Locate narrative beats against a structure template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := readManuscript(args[0])
		if err != nil {
			return err
		}
		tpl, ok := cfg.Template(beatsTemplateName)
		if !ok {
			return fmt.Errorf("unknown structure template %q", beatsTemplateName)
		}
		a := beats.Analyze(parsed.Text, tpl)
		if asJSON {
			return printJSON(cmd, a)
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Template %s: %d beats located in %d words\n", a.Template, len(a.Beats), a.TotalWords)
		for _, b := range a.Beats {
			fmt.Fprintf(w, "  %-28s at %5.1f%%  (expected %3.0f%%, confidence %.0f)\n",
				b.Name, b.ActualPercent, b.ExpectedPercent, b.Confidence)
			fmt.Fprintf(w, "      %s\n", b.Excerpt)
		}
		for _, act := range a.Acts {
			fmt.Fprintf(w, "  %s: %d words (%.1f%%)\n", act.Name, act.Words, act.PercentOfTotal)
		}
		for _, r := range a.Recommendations {
			fmt.Fprintf(w, "  - %s\n", r)
		}
		return nil
	},
}

var povCmd = &cobra.Command{
	Use:   "pov <manuscript>",
	Short: "Check point-of-view consistency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := readManuscript(args[0])
		if err != nil {
			return err
		}
		a := pov.Analyze(parsed.Text)
		if asJSON {
			return printJSON(cmd, a)
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Dominant POV: %s  (consistency %d/100, %d paragraphs, %d shifts)\n",
			a.DominantPOV, a.ConsistencyScore, a.ParagraphCount, a.ShiftCount)
		for _, f := range a.Findings {
			fmt.Fprintf(w, "  [%s/%s] %s\n      %s\n", f.Category, f.Severity, f.Description, f.Excerpt)
		}
		for _, r := range a.Recommendations {
			fmt.Fprintf(w, "  - %s\n", r)
		}
		return nil
	},
}

var motifsCmd = &cobra.Command{
	Use:   "motifs <manuscript>",
	Short: "Track recurring symbols, themes and phrases",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := readManuscript(args[0])
		if err != nil {
			return err
		}
		a := motif.Analyze(parsed.Text)
		if asJSON {
			return printJSON(cmd, a)
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%d motifs (%d symbols, %d themes, %d phrases)\n",
			len(a.Motifs), a.SymbolCount, a.ThemeCount, a.PhraseCount)
		for _, m := range a.Motifs {
			if m.Significance != "" {
				fmt.Fprintf(w, "  [%s] %q x%d  (%s)\n", m.Category, m.Name, m.Count, m.Significance)
			} else {
				fmt.Fprintf(w, "  [%s] %q x%d\n", m.Category, m.Name, m.Count)
			}
		}
		for _, r := range a.Recommendations {
			fmt.Fprintf(w, "  - %s\n", r)
		}
		return nil
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available structure templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, name := range beats.Names() {
			fmt.Fprintln(w, name)
		}
		for _, t := range cfg.Templates {
			fmt.Fprintf(w, "%s (from config)\n", t.Name)
		}
		return nil
	},
}
