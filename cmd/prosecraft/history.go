package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"prosecraft/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analysis runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, err := store.ListRuns(dbPath, historyLimit)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd, runs)
		}
		w := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(w, "no saved runs")
			return nil
		}
		for _, r := range runs {
			fmt.Fprintf(w, "%s  %-24s  %6d words  score %3d  %-10s  %s\n",
				r.GeneratedAt.Local().Format(time.DateTime), r.Title,
				r.WordCount, r.OverallScore, r.DominantPOV, r.ID)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print the full saved report for one run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := store.LoadReport(dbPath, args[0])
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(cmd, rep)
		}
		printSummary(cmd, rep)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum runs to list")
	historyCmd.AddCommand(historyShowCmd)
}
