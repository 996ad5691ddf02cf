package cmd

import (
	"fmt"
	"strings"

	"github.com/rmagpantay/aral/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the assessment catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all assessments (optionally filtered by subject or age group)",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		ageGroup, _ := cmd.Flags().GetString("ages")

		var assessments []catalog.Assessment
		for _, a := range catalog.All() {
			if subject != "" && string(a.Subject) != subject {
				continue
			}
			if ageGroup != "" && a.AgeGroup != ageGroup {
				continue
			}
			assessments = append(assessments, a)
		}
		if len(assessments) == 0 {
			return fmt.Errorf("no assessments match the given filters")
		}

		fmt.Printf("%-24s  %-38s  %-12s  %-6s  %9s  %7s\n",
			"ID", "Title", "Subject", "Ages", "Questions", "Minutes")
		fmt.Println(strings.Repeat("─", 106))

		for _, a := range assessments {
			title := a.Title
			if len(title) > 38 {
				title = title[:35] + "..."
			}
			fmt.Printf("%-24s  %-38s  %-12s  %-6s  %9d  %7d\n",
				a.ID, title, a.Subject, a.AgeGroup,
				len(a.Questions), int(a.Duration.Minutes()))
		}

		fmt.Printf("\n%d assessments\n", len(assessments))
		return nil
	},
}

func init() {
	catalogListCmd.Flags().String("subject", "", "Filter by subject (mathematics, reading, science)")
	catalogListCmd.Flags().String("ages", "", "Filter by age group (e.g. 9-11)")

	catalogCmd.AddCommand(catalogListCmd)
}
