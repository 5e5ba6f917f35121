package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/interfaces"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	sessionsCollection = "sessions"
	scoresCollection   = "scores"

	// Field names
	fieldStartedAt = "StartedAt"
	fieldScoredAt  = "ScoredAt"
)

// Firestore implements Repository interface with Firestore. Score results
// live in a "scores" subcollection under their session document.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Test connection by attempting to read from the sessions collection.
	// This fails fast on invalid project IDs or permission issues.
	_, err = client.Collection(sessionsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		// Other errors (like NotFound for new projects) are tolerable
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// PutSession saves a session to Firestore
func (f *Firestore) PutSession(ctx context.Context, session *model.GroomingSession) error {
	if session == nil {
		return goerr.New("session is nil")
	}
	if session.ID == "" {
		return goerr.New("session ID is empty")
	}

	_, err := f.client.Collection(sessionsCollection).Doc(session.ID.String()).Set(ctx, session)
	if err != nil {
		return goerr.Wrap(err, "failed to save session to firestore",
			goerr.V("sessionID", session.ID))
	}

	return nil
}

// GetSession retrieves a session by ID
func (f *Firestore) GetSession(ctx context.Context, id types.SessionID) (*model.GroomingSession, error) {
	if id == "" {
		return nil, goerr.New("session ID is empty")
	}

	doc, err := f.client.Collection(sessionsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrSessionNotFound, "no such session",
				goerr.V("sessionID", id))
		}
		return nil, goerr.Wrap(err, "failed to get session from firestore",
			goerr.V("sessionID", id))
	}

	var session model.GroomingSession
	if err := doc.DataTo(&session); err != nil {
		return nil, goerr.Wrap(err, "failed to decode session")
	}

	return &session, nil
}

// ListSessions lists all sessions, newest first
func (f *Firestore) ListSessions(ctx context.Context) ([]*model.GroomingSession, error) {
	iter := f.client.Collection(sessionsCollection).
		OrderBy(fieldStartedAt, firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var sessions []*model.GroomingSession
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate sessions")
		}

		var session model.GroomingSession
		if err := doc.DataTo(&session); err != nil {
			return nil, goerr.Wrap(err, "failed to decode session",
				goerr.V("docID", doc.Ref.ID))
		}
		sessions = append(sessions, &session)
	}

	return sessions, nil
}

// SaveScore saves a score result under its session document
func (f *Firestore) SaveScore(ctx context.Context, sessionID types.SessionID, result *model.ScoreResult) error {
	if sessionID == "" {
		return goerr.New("session ID is empty")
	}
	if result == nil {
		return goerr.New("score result is nil")
	}
	if result.ItemKey == "" {
		return goerr.New("item key is empty")
	}

	// Verify the session exists so scores never dangle
	if _, err := f.GetSession(ctx, sessionID); err != nil {
		return goerr.Wrap(err, "cannot save score",
			goerr.V("sessionID", sessionID))
	}

	_, err := f.client.Collection(sessionsCollection).Doc(sessionID.String()).
		Collection(scoresCollection).Doc(result.ItemKey.String()).Set(ctx, result)
	if err != nil {
		return goerr.Wrap(err, "failed to save score to firestore",
			goerr.V("sessionID", sessionID),
			goerr.V("itemKey", result.ItemKey))
	}

	return nil
}

// GetScore retrieves a score result by session and item key
func (f *Firestore) GetScore(ctx context.Context, sessionID types.SessionID, itemKey types.ItemKey) (*model.ScoreResult, error) {
	if sessionID == "" {
		return nil, goerr.New("session ID is empty")
	}
	if itemKey == "" {
		return nil, goerr.New("item key is empty")
	}

	doc, err := f.client.Collection(sessionsCollection).Doc(sessionID.String()).
		Collection(scoresCollection).Doc(itemKey.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrScoreNotFound, "no score for item",
				goerr.V("sessionID", sessionID),
				goerr.V("itemKey", itemKey))
		}
		return nil, goerr.Wrap(err, "failed to get score from firestore",
			goerr.V("sessionID", sessionID),
			goerr.V("itemKey", itemKey))
	}

	var result model.ScoreResult
	if err := doc.DataTo(&result); err != nil {
		return nil, goerr.Wrap(err, "failed to decode score result")
	}

	return &result, nil
}

// ListScores lists all score results for a session, ordered by scoring time
func (f *Firestore) ListScores(ctx context.Context, sessionID types.SessionID) ([]*model.ScoreResult, error) {
	if sessionID == "" {
		return nil, goerr.New("session ID is empty")
	}

	iter := f.client.Collection(sessionsCollection).Doc(sessionID.String()).
		Collection(scoresCollection).
		OrderBy(fieldScoredAt, firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var results []*model.ScoreResult
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate scores",
				goerr.V("sessionID", sessionID))
		}

		var result model.ScoreResult
		if err := doc.DataTo(&result); err != nil {
			return nil, goerr.Wrap(err, "failed to decode score result",
				goerr.V("docID", doc.Ref.ID))
		}
		results = append(results, &result)
	}

	return results, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}
