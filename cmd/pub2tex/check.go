package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/changgoo/pub2tex/internal/cv"
	"github.com/changgoo/pub2tex/internal/reference"
)

var checkExcludedOnly bool

func init() {
	checkCmd.Flags().BoolVar(&checkExcludedOnly, "excluded", false, "Only list records left out of the CV")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Show which records make it into the CV",
	Long: `Screen every publication record and report whether it is kept, and
if not, why (no venue, skipped venue, unrecognized venue, blocked title).`,
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Records  int         `json:"records"`
	Kept     int         `json:"kept"`
	Excluded int         `json:"excluded"`
	Items    []CheckItem `json:"items"`
}

// CheckItem is the verdict on one record.
type CheckItem struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Venue  string `json:"venue"`
	Kept   bool   `json:"kept"`
	Reason string `json:"reason,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	s := mustLoadSettings()
	f := newFormatter(s, newLogger(s))
	pubs := mustReadPublications(s)

	result := screenAll(f, pubs, checkExcludedOnly)

	if humanOutput {
		for _, item := range result.Items {
			status := "KEEP"
			if !item.Kept {
				status = "SKIP"
			}
			fmt.Printf("[%s] %s\n", status, truncateString(item.Title, TitleMaxLen))
			if item.Kept {
				fmt.Printf("       %s\n", item.Venue)
			} else {
				fmt.Printf("       %s (%s)\n", item.Venue, item.Reason)
			}
		}
		fmt.Printf("\n%d records: %d kept, %d excluded\n", result.Records, result.Kept, result.Excluded)
	} else {
		outputJSON(result)
	}
	return nil
}

// screenAll screens pubs in input order. With excludedOnly, kept records
// are counted but not listed.
func screenAll(f *cv.Formatter, pubs []reference.Publication, excludedOnly bool) CheckResult {
	result := CheckResult{Records: len(pubs), Items: []CheckItem{}}
	for i, p := range pubs {
		v := f.Screen(p)
		if v.Kept {
			result.Kept++
		} else {
			result.Excluded++
		}
		if excludedOnly && v.Kept {
			continue
		}
		result.Items = append(result.Items, CheckItem{
			Index:  i,
			Title:  p.Title,
			Venue:  p.Pub,
			Kept:   v.Kept,
			Reason: v.Reason,
		})
	}
	return result
}
