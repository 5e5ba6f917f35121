package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/interfaces"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu       sync.RWMutex
	sessions map[types.SessionID]*model.GroomingSession
	scores   map[types.SessionID]map[types.ItemKey]*model.ScoreResult
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		sessions: make(map[types.SessionID]*model.GroomingSession),
		scores:   make(map[types.SessionID]map[types.ItemKey]*model.ScoreResult),
	}
}

// PutSession saves a session, overwriting any existing one with the same ID
func (m *Memory) PutSession(ctx context.Context, session *model.GroomingSession) error {
	if session == nil {
		return goerr.New("session is nil")
	}
	if session.ID == "" {
		return goerr.New("session ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sessionCopy := *session
	m.sessions[session.ID] = &sessionCopy
	return nil
}

// GetSession retrieves a session by ID
func (m *Memory) GetSession(ctx context.Context, id types.SessionID) (*model.GroomingSession, error) {
	if id == "" {
		return nil, goerr.New("session ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrSessionNotFound, "no such session",
			goerr.V("sessionID", id))
	}

	// Return a copy to prevent external modification
	sessionCopy := *session
	return &sessionCopy, nil
}

// ListSessions lists all sessions, newest first
func (m *Memory) ListSessions(ctx context.Context) ([]*model.GroomingSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := make([]*model.GroomingSession, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessionCopy := *session
		sessions = append(sessions, &sessionCopy)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})

	return sessions, nil
}

// SaveScore saves a score result, replacing any existing result for the
// same item in the session
func (m *Memory) SaveScore(ctx context.Context, sessionID types.SessionID, result *model.ScoreResult) error {
	if sessionID == "" {
		return goerr.New("session ID is empty")
	}
	if result == nil {
		return goerr.New("score result is nil")
	}
	if result.ItemKey == "" {
		return goerr.New("item key is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[sessionID]; !exists {
		return goerr.Wrap(model.ErrSessionNotFound, "cannot save score",
			goerr.V("sessionID", sessionID))
	}

	if m.scores[sessionID] == nil {
		m.scores[sessionID] = make(map[types.ItemKey]*model.ScoreResult)
	}
	m.scores[sessionID][result.ItemKey] = result.Clone()
	return nil
}

// GetScore retrieves a score result by session and item key
func (m *Memory) GetScore(ctx context.Context, sessionID types.SessionID, itemKey types.ItemKey) (*model.ScoreResult, error) {
	if sessionID == "" {
		return nil, goerr.New("session ID is empty")
	}
	if itemKey == "" {
		return nil, goerr.New("item key is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result, exists := m.scores[sessionID][itemKey]
	if !exists {
		return nil, goerr.Wrap(model.ErrScoreNotFound, "no score for item",
			goerr.V("sessionID", sessionID),
			goerr.V("itemKey", itemKey))
	}

	return result.Clone(), nil
}

// ListScores lists all score results for a session, ordered by scoring time
func (m *Memory) ListScores(ctx context.Context, sessionID types.SessionID) ([]*model.ScoreResult, error) {
	if sessionID == "" {
		return nil, goerr.New("session ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]*model.ScoreResult, 0, len(m.scores[sessionID]))
	for _, result := range m.scores[sessionID] {
		results = append(results, result.Clone())
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].ScoredAt.Equal(results[j].ScoredAt) {
			return results[i].ItemKey < results[j].ItemKey
		}
		return results[i].ScoredAt.Before(results[j].ScoredAt)
	})

	return results, nil
}

// Close is a no-op for the memory repository
func (m *Memory) Close() error {
	return nil
}
