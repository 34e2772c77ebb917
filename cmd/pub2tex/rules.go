package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/changgoo/pub2tex/internal/rules"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the built-in rule tables",
	Long: `Print the built-in rule tables: the CV subject, journal abbreviations,
skipped venues, the student roster and the authorship-role table.`,
	RunE: runRules,
}

// RulesResponse is the response for the rules command.
type RulesResponse struct {
	Subject        rules.Subject        `json:"subject"`
	Venues         map[string]string    `json:"venues"`
	Skip           []string             `json:"skip"`
	TitleBlocklist []string             `json:"title_blocklist"`
	Students       map[string]YearsJSON `json:"students"`
	PreprintStatus string               `json:"preprint_status"`
	PreprintSkip   []string             `json:"preprint_exclude_first_authors"`
	Roles          []RoleJSON           `json:"roles"`
}

// YearsJSON is an inclusive year range.
type YearsJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// RoleJSON is one row of the role table.
type RoleJSON struct {
	Bucket              string   `json:"bucket"`
	SubjectAt           *int     `json:"subject_at,omitempty"`
	StudentMarked       bool     `json:"student_marked,omitempty"`
	FirstAuthorContains []string `json:"first_author_contains,omitempty"`
}

func runRules(cmd *cobra.Command, args []string) error {
	r, err := rules.Default()
	if err != nil {
		exitWithError(ExitError, "loading rules: %v", err)
	}
	resp := describeRules(r)

	if humanOutput {
		printRulesHuman(resp)
	} else {
		outputJSON(resp)
	}
	return nil
}

func describeRules(r *rules.Rules) RulesResponse {
	resp := RulesResponse{
		Subject:        r.Subject,
		Venues:         map[string]string(r.Venues),
		Skip:           r.Skip.Strings(),
		TitleBlocklist: r.TitleBlocklist,
		Students:       make(map[string]YearsJSON, len(r.Students)),
		PreprintStatus: r.PreprintStatus,
		PreprintSkip:   r.PreprintExclusions,
	}
	for name, years := range r.Students {
		resp.Students[name] = YearsJSON{Start: years.Start, End: years.End}
	}
	for _, rule := range r.Roles {
		resp.Roles = append(resp.Roles, RoleJSON{
			Bucket:              string(rule.Bucket),
			SubjectAt:           rule.SubjectAt,
			StudentMarked:       rule.StudentMarked,
			FirstAuthorContains: rule.FirstAuthorContains,
		})
	}
	return resp
}

func printRulesHuman(resp RulesResponse) {
	fmt.Printf("Subject: %s (%s, matched on %q)\n\n", resp.Subject.Display, resp.Subject.Initials, resp.Subject.Token)

	fmt.Println("Venues:")
	for _, name := range sortedKeys(resp.Venues) {
		fmt.Printf("  %-58s %s\n", name, resp.Venues[name])
	}

	fmt.Println("\nSkipped venues:")
	for _, p := range resp.Skip {
		fmt.Printf("  %s\n", p)
	}

	fmt.Println("\nStudents:")
	names := make([]string, 0, len(resp.Students))
	for name := range resp.Students {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		y := resp.Students[name]
		fmt.Printf("  %-12s %d-%d\n", name, y.Start, y.End)
	}

	fmt.Println("\nRoles (first match wins):")
	for i, role := range resp.Roles {
		fmt.Printf("  %d. %-12s %s\n", i+1, role.Bucket, describeRole(role))
	}
}

func describeRole(r RoleJSON) string {
	var conds []string
	if r.SubjectAt != nil {
		conds = append(conds, fmt.Sprintf("subject is author %d", *r.SubjectAt+1))
	}
	if r.StudentMarked {
		conds = append(conds, "student first author")
	}
	if len(r.FirstAuthorContains) > 0 {
		conds = append(conds, fmt.Sprintf("first author in %v", r.FirstAuthorContains))
	}
	if len(conds) == 0 {
		return "always"
	}
	return strings.Join(conds, " and ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
