package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rmagpantay/aral/internal/progress"
	"github.com/rmagpantay/aral/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded assessment statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		userID, _ := cmd.Flags().GetString("user")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		if userID != "" {
			return printLearnerStats(ctx, s, userID)
		}
		return printEventStats(ctx, s, subject)
	},
}

// printEventStats aggregates the result event log across all learners.
func printEventStats(ctx context.Context, s *store.Store, subject string) error {
	events, err := s.EventRepo().QueryResults(ctx, store.QueryOpts{Subject: subject})
	if err != nil {
		return fmt.Errorf("query results: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No assessment attempts recorded yet.")
		return nil
	}

	type bucket struct {
		attempts int
		pctSum   float64
		bestPct  float64
		minutes  int
	}
	bySubject := make(map[string]*bucket)
	var order []string
	total := bucket{}

	for _, e := range events {
		b := bySubject[e.Subject]
		if b == nil {
			b = &bucket{}
			bySubject[e.Subject] = b
			order = append(order, e.Subject)
		}
		b.attempts++
		b.pctSum += e.Percentage
		if e.Percentage > b.bestPct {
			b.bestPct = e.Percentage
		}
		b.minutes += e.DurationMinutes

		total.attempts++
		total.pctSum += e.Percentage
		if e.Percentage > total.bestPct {
			total.bestPct = e.Percentage
		}
		total.minutes += e.DurationMinutes
	}

	fmt.Printf("%-14s  %8s  %8s  %8s  %8s\n",
		"Subject", "Attempts", "Avg", "Best", "Minutes")
	fmt.Println(strings.Repeat("─", 56))
	for _, subj := range order {
		b := bySubject[subj]
		fmt.Printf("%-14s  %8d  %7.1f%%  %7.1f%%  %8d\n",
			subj, b.attempts, b.pctSum/float64(b.attempts), b.bestPct, b.minutes)
	}
	fmt.Println(strings.Repeat("─", 56))
	fmt.Printf("%-14s  %8d  %7.1f%%  %7.1f%%  %8d\n",
		"TOTAL", total.attempts, total.pctSum/float64(total.attempts), total.bestPct, total.minutes)

	return nil
}

// printLearnerStats renders one learner's progress document: overall
// stats, per-subject trends, skill areas, and achievements.
func printLearnerStats(ctx context.Context, s *store.Store, userID string) error {
	p, err := progress.NewService(s.ProgressRepo()).Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	if p.OverallStats.TotalAssessments == 0 {
		fmt.Printf("No assessments recorded for %s yet.\n", userID)
		return nil
	}

	o := p.OverallStats
	fmt.Printf("Learner %s\n", userID)
	fmt.Println(strings.Repeat("─", 56))
	fmt.Printf("Assessments:  %d\n", o.TotalAssessments)
	fmt.Printf("Average:      %.1f%%\n", o.AverageScore)
	fmt.Printf("Best:         %.1f%%\n", o.BestScore)
	fmt.Printf("Time spent:   %d min\n", o.TotalTimeSpentMinutes)
	if o.StrongestSubject != "" {
		fmt.Printf("Strongest:    %s\n", o.StrongestSubject)
		fmt.Printf("Weakest:      %s\n", o.WeakestSubject)
	}

	fmt.Println("\nSubjects")
	fmt.Println(strings.Repeat("─", 56))
	for _, subj := range sortedKeys(p.SubjectProgress) {
		st := p.SubjectProgress[subj]
		fmt.Printf("%-14s  %2d taken  avg %5.1f%%  latest %5.1f%%  %s\n",
			subj, st.AssessmentCount, st.AverageScore, st.LatestScore, st.Trend)
	}

	fmt.Println("\nSkill areas")
	fmt.Println(strings.Repeat("─", 56))
	for _, area := range sortedKeys(p.SkillAreas) {
		st := p.SkillAreas[area]
		marker := ""
		if st.NeedsImprovement {
			marker = "  ▲ practice"
		}
		fmt.Printf("%-22s  avg %5.1f%%  latest %5.1f%%%s\n",
			area, st.AverageScore, st.LatestScore, marker)
	}

	if len(p.Achievements) > 0 {
		fmt.Println("\nAchievements")
		fmt.Println(strings.Repeat("─", 56))
		for _, a := range p.Achievements {
			fmt.Printf("%s %s — earned %s\n", a.Icon, a.Title, a.EarnedAt.Format("Jan 02, 2006"))
		}
	}

	return nil
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func init() {
	statsCmd.Flags().StringP("subject", "s", "", "Filter the event summary by subject (mathematics, reading, science)")
	statsCmd.Flags().StringP("user", "u", "", "Show one learner's full progress instead of the event summary")
}
