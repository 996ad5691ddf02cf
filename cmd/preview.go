package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rmagpantay/aral/internal/catalog"
	"github.com/rmagpantay/aral/internal/scoring"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Run an assessment on stdin/stdout (no database)",
	Long: `Answer an assessment's questions interactively and see the scored result.

This is a stateless developer tool — no database, no saved progress, no
events. Useful for reviewing question wording and checking the answer keys.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("assessment", "", "Assessment ID (required; see 'aral catalog list')")
	_ = previewCmd.MarkFlagRequired("assessment")
}

func runPreview(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("assessment")

	a, err := catalog.Get(id)
	if err != nil {
		return fmt.Errorf("assessment %q: %w", id, err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	answers := make(map[string]scoring.Answer, len(a.Questions))
	start := time.Now()

	fmt.Printf("%s — %s (ages %s, %d questions)\n\n", a.ID, a.Title, a.AgeGroup, len(a.Questions))

	for i, q := range a.Questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(a.Questions))
		fmt.Println(q.Prompt)
		if q.CulturalContext != "" {
			fmt.Println(q.CulturalContext)
		}
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		if q.IsMatching() {
			fmt.Print("\nYour answers (comma-separated numbers): ")
		} else {
			fmt.Print("\nYour answer: ")
		}
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		ans := parsePreviewAnswer(q, raw)
		answers[q.ID] = ans

		if correct, key := checkPreviewAnswer(q, ans); correct {
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", key)
		}
		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	result := scoring.Score(a, scoring.Submission{
		StartTime: start,
		EndTime:   time.Now(),
		Answers:   answers,
	})

	fmt.Printf("── Summary: %d/%d correct (%.0f%%), PISA projection %d ──\n",
		result.Score, len(a.Questions), result.Percentage, result.PISAProjection)
	return nil
}

// parsePreviewAnswer turns raw terminal input into an Answer. Option
// numbers are accepted anywhere options exist; free text passes through.
func parsePreviewAnswer(q catalog.Question, raw string) scoring.Answer {
	if q.IsMatching() {
		parts := strings.Split(raw, ",")
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			values = append(values, resolveOption(q, strings.TrimSpace(p)))
		}
		return scoring.Multi(values...)
	}
	return scoring.Single(resolveOption(q, raw))
}

// resolveOption maps a 1-based option number to its option text.
func resolveOption(q catalog.Question, raw string) string {
	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1]
	}
	return raw
}

// checkPreviewAnswer grades a single answer and returns the display key.
func checkPreviewAnswer(q catalog.Question, ans scoring.Answer) (bool, string) {
	probe := scoring.Score(
		catalog.Assessment{Questions: []catalog.Question{q}},
		scoring.Submission{Answers: map[string]scoring.Answer{q.ID: ans}},
	)
	key := q.CorrectAnswer
	if q.IsMatching() {
		key = strings.Join(q.CorrectAnswers, ", ")
	}
	return probe.Score == 1, key
}
