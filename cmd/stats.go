package cmd

import (
	"fmt"
	"io"

	"github.com/abhisek/mathcards/internal/i18n"
	"github.com/abhisek/mathcards/internal/stats"
	"github.com/abhisek/mathcards/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show saved session statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmdContext(cmd)
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		// Read before Load, which rewrites the document.
		savedAt, saved, err := st.UpdatedAt(ctx, store.StatsKey)
		if err != nil {
			warn("Could not read stats timestamp:", err)
		}
		history := store.NewStatsStore(st)
		history.Load(ctx)

		out := cmd.OutOrStdout()
		t := i18n.Get(resolveLanguage(ctx, cfg, st))
		printSummary(out, t, history.Summary())
		if saved {
			fmt.Fprintf(out, "Saved %s in %s\n", savedAt.Local().Format("2006-01-02 15:04"), cfg.DBPath)
		}
		return nil
	},
}

func printSummary(w io.Writer, t *i18n.Table, sum stats.Summary) {
	fmt.Fprintln(w, t.Summary.StatsTitle)
	fmt.Fprintf(w, t.Summary.TotalSessions+"\n", sum.TotalSessions)
	if sum.TotalSessions == 0 {
		return
	}
	fmt.Fprintf(w, t.Summary.BestScore+"\n", i18n.Score(sum.BestScore))
	fmt.Fprintf(w, t.Summary.AverageScore+"\n", i18n.Score(float64(sum.AverageScore)))

	for _, line := range []string{
		i18n.Optional(t.Summary.AverageDuration, stats.FormatOptional(sum.AverageDurationSeconds, t.Duration)),
		i18n.Optional(t.Summary.BestDuration, stats.FormatOptional(sum.BestDurationSeconds, t.Duration)),
		i18n.Optional(t.Summary.LastDuration, stats.FormatOptional(sum.LastDurationSeconds, t.Duration)),
	} {
		if line != "" {
			fmt.Fprintln(w, line)
		}
	}
	if last := sum.LastSession; last != nil && last.Timestamp != "" {
		fmt.Fprintf(w, t.Summary.LastUpdated+"\n", i18n.Timestamp(last.Timestamp))
	}
}
