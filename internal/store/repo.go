package store

import (
	"context"
	"time"

	"github.com/rmagpantay/aral/internal/analytics"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	UserID  string    // exact learner id match
	Subject string    // exact subject match
}

// ResultEventData captures one completed assessment attempt for the
// event log. The full graded detail lives in the progress document;
// the event log keeps the queryable summary.
type ResultEventData struct {
	ResultID        string
	UserID          string
	AssessmentID    string
	Subject         string
	Score           int
	Percentage      float64
	PISAProjection  int
	DurationMinutes int
}

// ResultEventRecord is a stored result event with its log position.
type ResultEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	ResultEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event with its row id.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendResult records a completed assessment attempt.
	AppendResult(ctx context.Context, data ResultEventData) error

	// QueryResults returns result events in ascending sequence order.
	QueryResults(ctx context.Context, opts QueryOpts) ([]ResultEventRecord, error)

	// AppendAnalytics records a product usage event.
	AppendAnalytics(ctx context.Context, ev analytics.Event) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single LLM request event by row id, or nil
	// if no such event exists.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
