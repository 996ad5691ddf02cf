package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmagpantay/aral/internal/analytics"
	"github.com/rmagpantay/aral/internal/app"
	asmt "github.com/rmagpantay/aral/internal/assessment"
	"github.com/rmagpantay/aral/internal/catalog"
	"github.com/rmagpantay/aral/internal/identity"
	"github.com/rmagpantay/aral/internal/llm"
	"github.com/rmagpantay/aral/internal/progress"
	"github.com/rmagpantay/aral/internal/scoring"
	"github.com/rmagpantay/aral/internal/store"
	"github.com/rmagpantay/aral/internal/tutor"
)

// attemptRecorder folds a scored result into the learner's progress
// document and appends the attempt summary to the event log.
type attemptRecorder struct {
	progress  *progress.Service
	eventRepo store.EventRepo
}

var _ asmt.Recorder = (*attemptRecorder)(nil)

func (r *attemptRecorder) RecordResult(ctx context.Context, userID string, result scoring.Result) error {
	if err := r.progress.RecordResult(ctx, userID, result); err != nil {
		return err
	}

	subject := ""
	if a, err := catalog.Get(result.AssessmentID); err == nil {
		subject = string(a.Subject)
	}

	return r.eventRepo.AppendResult(ctx, store.ResultEventData{
		ResultID:        result.ID,
		UserID:          userID,
		AssessmentID:    result.AssessmentID,
		Subject:         subject,
		Score:           result.Score,
		Percentage:      result.Percentage,
		PISAProjection:  result.PISAProjection,
		DurationMinutes: result.DurationMinutes(),
	})
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	progressSvc := progress.NewService(st.ProgressRepo())

	// The tracker attributes each event to whoever is signed in when it
	// fires, so it reads the identity service lazily.
	var ident *identity.Service
	tracker := analytics.NewSinkTracker(eventRepo, func() string {
		if id, ok := ident.CurrentUserID(); ok {
			return id
		}
		return ""
	})
	ident = identity.NewService(identity.Options{Analytics: tracker})

	engine := asmt.NewEngine(asmt.Options{
		Analytics: tracker,
		Identity:  ident,
		Recorder:  &attemptRecorder{progress: progressSvc, eventRepo: eventRepo},
	})

	opts := app.Options{
		Engine:    engine,
		Identity:  ident,
		Progress:  progressSvc,
		EventRepo: eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Study tips will be unavailable.")
	} else {
		opts.Tutor = tutor.NewService(provider)
	}

	return app.Run(opts)
}
