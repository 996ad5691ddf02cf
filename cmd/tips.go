package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmagpantay/aral/internal/llm"
	"github.com/rmagpantay/aral/internal/progress"
	"github.com/rmagpantay/aral/internal/store"
	"github.com/rmagpantay/aral/internal/tutor"
	"github.com/spf13/cobra"
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Generate study tips for a learner from their recorded progress",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		p, err := progress.NewService(s.ProgressRepo()).Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		tips, err := tutor.NewService(provider).GenerateTips(ctx, p)
		if errors.Is(err, tutor.ErrNoHistory) {
			fmt.Printf("No assessment history for %s yet. Take an assessment first.\n", userID)
			return nil
		}
		if err != nil {
			return err
		}

		for i, tip := range tips.Tips {
			fmt.Printf("%d. %s\n   %s\n   Try: %s\n\n", i+1, tip.SkillArea, tip.Tip, tip.Activity)
		}
		if tips.Encouragement != "" {
			fmt.Println(tips.Encouragement)
		}
		return nil
	},
}

func init() {
	tipsCmd.Flags().StringP("user", "u", "user-001", "Learner ID to generate tips for")
}
