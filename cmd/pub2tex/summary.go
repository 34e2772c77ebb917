package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/changgoo/pub2tex/internal/cv"
)

var summaryAsOf string

func init() {
	summaryCmd.Flags().StringVar(&summaryAsOf, "as-of", "", "Date of the metrics, YYYY-MM-DD (default today)")
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show citation metrics for refereed papers",
	Long: `Show count, citations and h-index for all refereed papers and for the
first-author, significant-contribution and co-author groups.`,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	s := mustLoadSettings()

	asOf, err := parseAsOf(summaryAsOf, time.Now())
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	f := newFormatter(s, newLogger(s))
	pubs := mustReadPublications(s)
	summary := cv.NewSummary(f.Entries(f.Filter(pubs), nil), asOf)

	if humanOutput {
		printSummaryHuman(summary)
	} else {
		outputJSON(summary)
	}
	return nil
}

func printSummaryHuman(s cv.Summary) {
	fmt.Printf("Refereed publications as of %s\n\n", s.AsOf.Format(time.DateOnly))
	fmt.Printf("  %-14s %6s %10s %8s\n", "", "count", "citations", "h-index")
	rows := []struct {
		label string
		m     cv.Metrics
	}{
		{"all", s.Refereed},
		{"first author", s.FirstAuthor},
		{"significant", s.Significant},
		{"co-author", s.CoAuthor},
	}
	for _, r := range rows {
		fmt.Printf("  %-14s %6d %10d %8d\n", r.label, r.m.Count, r.m.Citations, r.m.HIndex)
	}
}
