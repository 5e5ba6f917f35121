package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/interfaces"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
)

// ReviewUseCase implements the Review interface
type ReviewUseCase struct {
	repo   interfaces.Repository
	rubric *model.Rubric
}

// NewReview creates a new ReviewUseCase. The rubric must already be
// validated; an invalid rubric is a startup error, not a scoring error.
func NewReview(repo interfaces.Repository, rubric *model.Rubric) (*ReviewUseCase, error) {
	if repo == nil {
		return nil, goerr.New("repository is required")
	}
	if rubric == nil {
		return nil, goerr.New("rubric is required")
	}
	if err := rubric.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid rubric")
	}

	return &ReviewUseCase{
		repo:   repo,
		rubric: rubric,
	}, nil
}

// Rubric returns the active rubric
func (u *ReviewUseCase) Rubric() *model.Rubric {
	return u.rubric
}

// StartSession starts a new grooming session for a project
func (u *ReviewUseCase) StartSession(ctx context.Context, projectKey string) (*model.GroomingSession, error) {
	session, err := model.NewGroomingSession(projectKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create session")
	}

	if err := u.repo.PutSession(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to save session",
			goerr.V("sessionID", session.ID))
	}

	return session, nil
}

// GetSession retrieves a session by ID
func (u *ReviewUseCase) GetSession(ctx context.Context, id types.SessionID) (*model.GroomingSession, error) {
	session, err := u.repo.GetSession(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get session",
			goerr.V("sessionID", id))
	}
	return session, nil
}

// ScoreItem scores one evaluation against the rubric and persists the
// result under the session
func (u *ReviewUseCase) ScoreItem(ctx context.Context, sessionID types.SessionID, eval *model.Evaluation) (*model.ScoreResult, error) {
	session, err := u.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get session",
			goerr.V("sessionID", sessionID))
	}
	if session.IsCompleted() {
		return nil, goerr.Wrap(model.ErrSessionCompleted, "cannot score item in completed session",
			goerr.V("sessionID", sessionID))
	}

	result, err := u.rubric.Score(eval)
	if err != nil {
		return nil, err
	}

	if err := u.repo.SaveScore(ctx, sessionID, result); err != nil {
		return nil, goerr.Wrap(err, "failed to save score",
			goerr.V("sessionID", sessionID),
			goerr.V("itemKey", result.ItemKey))
	}

	return result, nil
}

// ScoreBatch scores each evaluation independently. An item failing to
// score (e.g. incomplete answers) is reported in its slot and does not
// abort the others.
func (u *ReviewUseCase) ScoreBatch(ctx context.Context, sessionID types.SessionID, evals []*model.Evaluation) ([]BatchItemResult, error) {
	if len(evals) == 0 {
		return nil, goerr.New("no evaluations to score")
	}

	results := make([]BatchItemResult, 0, len(evals))
	for _, eval := range evals {
		item := BatchItemResult{}
		if eval != nil {
			item.ItemKey = eval.ItemKey
		}

		result, err := u.ScoreItem(ctx, sessionID, eval)
		if err != nil {
			item.Err = err
		} else {
			item.Result = result
		}
		results = append(results, item)
	}

	return results, nil
}

// SetStoryPoints records a story point estimate on an already scored item
func (u *ReviewUseCase) SetStoryPoints(ctx context.Context, sessionID types.SessionID, itemKey types.ItemKey, points int) (*model.ScoreResult, error) {
	result, err := u.repo.GetScore(ctx, sessionID, itemKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get score",
			goerr.V("sessionID", sessionID),
			goerr.V("itemKey", itemKey))
	}

	if err := result.SetStoryPoints(points); err != nil {
		return nil, err
	}

	if err := u.repo.SaveScore(ctx, sessionID, result); err != nil {
		return nil, goerr.Wrap(err, "failed to save estimated score",
			goerr.V("sessionID", sessionID),
			goerr.V("itemKey", itemKey))
	}

	return result, nil
}

// CompleteSession finalizes the session and returns its report
func (u *ReviewUseCase) CompleteSession(ctx context.Context, sessionID types.SessionID) (*model.SessionReport, error) {
	session, err := u.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get session",
			goerr.V("sessionID", sessionID))
	}

	if err := session.Complete(); err != nil {
		return nil, err
	}

	if err := u.repo.PutSession(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to save completed session",
			goerr.V("sessionID", sessionID))
	}

	return u.buildReport(ctx, session)
}

// BuildReport builds a report for a session without changing its state
func (u *ReviewUseCase) BuildReport(ctx context.Context, sessionID types.SessionID) (*model.SessionReport, error) {
	session, err := u.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get session",
			goerr.V("sessionID", sessionID))
	}

	return u.buildReport(ctx, session)
}

func (u *ReviewUseCase) buildReport(ctx context.Context, session *model.GroomingSession) (*model.SessionReport, error) {
	results, err := u.repo.ListScores(ctx, session.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list scores",
			goerr.V("sessionID", session.ID))
	}

	report, err := model.NewSessionReport(session, results)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build report",
			goerr.V("sessionID", session.ID))
	}

	return report, nil
}
