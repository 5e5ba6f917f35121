package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
)

// GroomingSession represents one backlog review run
type GroomingSession struct {
	ID          types.SessionID
	ProjectKey  string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// NewGroomingSession creates a new GroomingSession
func NewGroomingSession(projectKey string) (*GroomingSession, error) {
	if projectKey == "" {
		return nil, goerr.New("project key is required")
	}

	id, err := types.NewSessionID()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate session ID")
	}

	return &GroomingSession{
		ID:         id,
		ProjectKey: projectKey,
		StartedAt:  time.Now(),
	}, nil
}

// Complete marks the session as completed
func (s *GroomingSession) Complete() error {
	if s.IsCompleted() {
		return goerr.Wrap(ErrSessionCompleted, "cannot complete session twice",
			goerr.V("sessionID", s.ID))
	}

	now := time.Now()
	s.CompletedAt = &now
	return nil
}

// IsCompleted returns true if the session has been completed
func (s *GroomingSession) IsCompleted() bool {
	return s.CompletedAt != nil
}

// SessionSummary aggregates tier membership over a session's results
type SessionSummary struct {
	TotalItems int
	TierCounts map[types.ReadinessTier]int
}

// NewSessionSummary computes the summary for a set of score results
func NewSessionSummary(results []*ScoreResult) *SessionSummary {
	summary := &SessionSummary{
		TotalItems: len(results),
		TierCounts: make(map[types.ReadinessTier]int),
	}
	for _, result := range results {
		summary.TierCounts[result.Tier]++
	}
	return summary
}

// Count returns the number of items classified into the tier
func (s *SessionSummary) Count(tier types.ReadinessTier) int {
	return s.TierCounts[tier]
}

// SessionReport is the structured output handed to report renderers
type SessionReport struct {
	Session     *GroomingSession
	Results     []*ScoreResult
	Summary     *SessionSummary
	GeneratedAt time.Time
}

// NewSessionReport builds a report for a session and its results
func NewSessionReport(session *GroomingSession, results []*ScoreResult) (*SessionReport, error) {
	if session == nil {
		return nil, goerr.New("session is nil")
	}

	return &SessionReport{
		Session:     session,
		Results:     results,
		Summary:     NewSessionSummary(results),
		GeneratedAt: time.Now(),
	}, nil
}
