package usecase

import (
	"context"

	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
)

// BatchItemResult is the per-item outcome of a batch scoring call. Either
// Result or Err is set; a failed item never blocks the rest of the batch.
type BatchItemResult struct {
	ItemKey types.ItemKey
	Result  *model.ScoreResult
	Err     error
}

// Review defines the interface for grooming session operations
type Review interface {
	// Rubric returns the active rubric
	Rubric() *model.Rubric

	// StartSession starts a new grooming session for a project
	StartSession(ctx context.Context, projectKey string) (*model.GroomingSession, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, id types.SessionID) (*model.GroomingSession, error)

	// ScoreItem scores one evaluation and persists the result
	ScoreItem(ctx context.Context, sessionID types.SessionID, eval *model.Evaluation) (*model.ScoreResult, error)

	// ScoreBatch scores a batch of evaluations, isolating per-item failures
	ScoreBatch(ctx context.Context, sessionID types.SessionID, evals []*model.Evaluation) ([]BatchItemResult, error)

	// SetStoryPoints records a story point estimate on a scored item
	SetStoryPoints(ctx context.Context, sessionID types.SessionID, itemKey types.ItemKey, points int) (*model.ScoreResult, error)

	// CompleteSession finalizes a session and returns its report
	CompleteSession(ctx context.Context, sessionID types.SessionID) (*model.SessionReport, error)

	// BuildReport builds a report for a session without completing it
	BuildReport(ctx context.Context, sessionID types.SessionID) (*model.SessionReport, error)
}
