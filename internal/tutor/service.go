package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rmagpantay/aral/internal/llm"
	"github.com/rmagpantay/aral/internal/progress"
)

// ErrNoHistory is returned when tips are requested before any
// assessment has been completed.
var ErrNoHistory = errors.New("no assessment history to base tips on")

// Service generates study tips. GenerateTips is synchronous for the CLI;
// RequestTips/ConsumeTips serve the TUI without blocking its event loop.
type Service struct {
	provider llm.Provider

	mu      sync.Mutex
	pending *StudyTips
	err     error
	ready   bool
}

// NewService creates a tips service over the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// GenerateTips produces tips from the learner's progress.
func (s *Service) GenerateTips(ctx context.Context, p *progress.Progress) (*StudyTips, error) {
	if p == nil || p.OverallStats.TotalAssessments == 0 {
		return nil, ErrNoHistory
	}

	ctx = llm.WithPurpose(ctx, "study-tips")
	req := llm.Request{
		System: tipsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTipsUserMessage(p)},
		},
		Schema:    StudyTipsSchema,
		MaxTokens: 1024,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate study tips: %w", err)
	}

	var tips StudyTips
	if err := json.Unmarshal(resp.Content, &tips); err != nil {
		return nil, fmt.Errorf("decode study tips: %w", err)
	}
	return &tips, nil
}

// RequestTips starts async generation. A new request replaces any
// pending result.
func (s *Service) RequestTips(ctx context.Context, p *progress.Progress) {
	go func() {
		tips, err := s.GenerateTips(ctx, p)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = tips
		s.err = err
		s.ready = true
	}()
}

// ConsumeTips returns the pending result once generation finished.
// The second return reports completion; tips is nil when generation
// failed. After consumption, the pending slot is cleared.
func (s *Service) ConsumeTips() (*StudyTips, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	tips := s.pending
	s.pending = nil
	s.err = nil
	s.ready = false
	return tips, true
}
