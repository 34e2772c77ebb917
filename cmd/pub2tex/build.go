package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/changgoo/pub2tex/internal/config"
	"github.com/changgoo/pub2tex/internal/cv"
	"github.com/changgoo/pub2tex/internal/storage"
)

var (
	buildPeriods []string
	buildAsOf    string
	buildOutDir  string
	buildDryRun  bool
)

func init() {
	buildCmd.Flags().StringArrayVar(&buildPeriods, "period", nil, "Also write lists for a date window START:END (repeatable)")
	buildCmd.Flags().StringVar(&buildAsOf, "as-of", "", "Date printed in the summary, YYYY-MM-DD (default today)")
	buildCmd.Flags().StringVar(&buildOutDir, "out", "", "Directory for the fragments (default --data-dir)")
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "Report what would be written without writing")
	buildCmd.Flags().Int("max-authors", cv.DefaultMaxAuthors, "Authors shown before et al.")
	bindFlag(buildCmd.Flags().Lookup("max-authors"), config.KeyMaxAuthors)
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the CV LaTeX fragments",
	Long: `Write the CV LaTeX fragments from the publication records.

Produces summary.tex, summary_1st.tex, summary_2nd.tex, summary_co.tex,
pubs_ref.tex, pubs_ref_1st.tex, pubs_ref_2nd.tex, pubs_ref_co.tex and
pubs_arxiv.tex, plus pubs_ref_<years>.tex and pubs_arxiv_<years>.tex for
each --period.

Examples:
  pub2tex build
  pub2tex build --period 2023-01-01:2024-12-31
  pub2tex build --data-dir ~/cv/data --human`,
	RunE: runBuild,
}

// BuildResult is the response for the build command.
type BuildResult struct {
	Status    string     `json:"status"`
	Input     string     `json:"input"`
	Records   int        `json:"records"`
	Refereed  int        `json:"refereed"`
	Preprints int        `json:"preprints"`
	Files     []string   `json:"files"`
	Summary   cv.Summary `json:"summary"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	s := mustLoadSettings()

	asOf, err := parseAsOf(buildAsOf, time.Now())
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	windows, err := parsePeriods(buildPeriods)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	log := newLogger(s)
	f := newFormatter(s, log)
	pubs := mustReadPublications(s)

	report := f.Report(pubs, asOf, windows)
	frags := report.Fragments(s.ADSLink)

	outDir := s.DataDir
	if buildOutDir != "" {
		outDir = config.ExpandTilde(buildOutDir)
	}

	var files []string
	if buildDryRun {
		for _, frag := range frags {
			files = append(files, frag.Name)
		}
	} else {
		files, err = storage.WriteFragments(outDir, frags)
		if err != nil {
			exitWithError(ExitDataError, "%v", err)
		}
	}

	result := BuildResult{
		Status:    "ok",
		Input:     s.InputPath(),
		Records:   len(pubs),
		Refereed:  len(report.Lists.Refereed),
		Preprints: len(report.Lists.Preprint),
		Files:     files,
		Summary:   report.Summary,
	}
	if buildDryRun {
		result.Status = "dry_run"
	}

	if humanOutput {
		verb := "Wrote"
		if buildDryRun {
			verb = "Would write"
		}
		fmt.Printf("Read %d records from %s\n", result.Records, result.Input)
		fmt.Printf("%d refereed papers, %d preprints\n\n", result.Refereed, result.Preprints)
		fmt.Printf("%s %d fragments to %s:\n", verb, len(files), outDir)
		for _, name := range files {
			fmt.Printf("  %s\n", name)
		}
	} else {
		outputJSON(result)
	}
	return nil
}

// parseAsOf parses the summary date; an empty value means now.
func parseAsOf(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}

// parsePeriods parses every --period value.
func parsePeriods(values []string) ([]cv.DateRange, error) {
	var windows []cv.DateRange
	for _, v := range values {
		w, err := cv.ParseDateRange(v)
		if err != nil {
			return nil, fmt.Errorf("parsing --period: %w", err)
		}
		windows = append(windows, w)
	}
	return windows, nil
}
