package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	// Session operations
	PutSession(ctx context.Context, session *model.GroomingSession) error
	GetSession(ctx context.Context, id types.SessionID) (*model.GroomingSession, error)
	ListSessions(ctx context.Context) ([]*model.GroomingSession, error)

	// Score operations
	SaveScore(ctx context.Context, sessionID types.SessionID, result *model.ScoreResult) error
	GetScore(ctx context.Context, sessionID types.SessionID, itemKey types.ItemKey) (*model.ScoreResult, error)
	ListScores(ctx context.Context, sessionID types.SessionID) ([]*model.ScoreResult, error)

	// Close closes the repository connection
	Close() error
}
