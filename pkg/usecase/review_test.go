package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/refinery-lab/groomctl/pkg/domain/interfaces/mocks"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
	"github.com/refinery-lab/groomctl/pkg/repository"
	"github.com/refinery-lab/groomctl/pkg/usecase"
)

func newReviewUC(t *testing.T) *usecase.ReviewUseCase {
	t.Helper()
	uc, err := usecase.NewReview(repository.NewMemory(), model.DefaultRubric())
	gt.NoError(t, err).Required()
	return uc
}

func fullEvaluation(t *testing.T, itemKey types.ItemKey, answer bool) *model.Evaluation {
	t.Helper()
	rubric := model.DefaultRubric()
	answers := make(map[types.CriterionID]bool)
	for _, c := range rubric.Criteria {
		answers[c.ID] = answer
	}
	eval, err := model.NewEvaluation(itemKey, "", answers)
	gt.NoError(t, err)
	return eval
}

func partialEvaluation(t *testing.T, itemKey types.ItemKey) *model.Evaluation {
	t.Helper()
	// 9 of 10 answers
	answers := make(map[types.CriterionID]bool)
	for id := 1; id <= 9; id++ {
		answers[types.CriterionID(id)] = true
	}
	eval, err := model.NewEvaluation(itemKey, "", answers)
	gt.NoError(t, err)
	return eval
}

func TestNewReview(t *testing.T) {
	t.Run("rejects invalid rubric at startup", func(t *testing.T) {
		badRubric := &model.Rubric{Criteria: []model.Criterion{
			{ID: 1, Question: "Broken?", Weight: -1},
		}}
		_, err := usecase.NewReview(repository.NewMemory(), badRubric)
		gt.Error(t, err)
	})

	t.Run("rejects nil dependencies", func(t *testing.T) {
		_, err := usecase.NewReview(nil, model.DefaultRubric())
		gt.Error(t, err)
		_, err = usecase.NewReview(repository.NewMemory(), nil)
		gt.Error(t, err)
	})
}

func TestReviewFlow(t *testing.T) {
	ctx := context.Background()
	uc := newReviewUC(t)

	session, err := uc.StartSession(ctx, "PROJ")
	gt.NoError(t, err)
	gt.V(t, session).NotNil()

	retrieved, err := uc.GetSession(ctx, session.ID)
	gt.NoError(t, err)
	gt.Equal(t, retrieved.ID, session.ID)

	result, err := uc.ScoreItem(ctx, session.ID, fullEvaluation(t, "PROJ-101", true))
	gt.NoError(t, err)
	gt.Equal(t, result.Tier, types.TierReadyForSprint)

	estimated, err := uc.SetStoryPoints(ctx, session.ID, "PROJ-101", 5)
	gt.NoError(t, err)
	gt.Equal(t, *estimated.StoryPoints, 5)

	report, err := uc.CompleteSession(ctx, session.ID)
	gt.NoError(t, err)
	gt.True(t, report.Session.IsCompleted())
	gt.Equal(t, report.Summary.TotalItems, 1)
	gt.Equal(t, report.Summary.Count(types.TierReadyForSprint), 1)
	gt.V(t, report.Results[0].StoryPoints).NotNil()
}

func TestScoreItemGuards(t *testing.T) {
	ctx := context.Background()
	uc := newReviewUC(t)

	t.Run("unknown session", func(t *testing.T) {
		_, err := uc.ScoreItem(ctx, "no-such-session", fullEvaluation(t, "PROJ-1", true))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrSessionNotFound))
	})

	t.Run("completed session", func(t *testing.T) {
		session, err := uc.StartSession(ctx, "PROJ")
		gt.NoError(t, err)
		_, err = uc.CompleteSession(ctx, session.ID)
		gt.NoError(t, err)

		_, err = uc.ScoreItem(ctx, session.ID, fullEvaluation(t, "PROJ-1", true))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrSessionCompleted))
	})

	t.Run("incomplete evaluation produces no stored score", func(t *testing.T) {
		session, err := uc.StartSession(ctx, "PROJ")
		gt.NoError(t, err)

		_, err = uc.ScoreItem(ctx, session.ID, partialEvaluation(t, "PROJ-1"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrIncompleteEvaluation))

		report, err := uc.BuildReport(ctx, session.ID)
		gt.NoError(t, err)
		gt.Equal(t, report.Summary.TotalItems, 0)
	})
}

func TestScoreBatchIsolatesFailures(t *testing.T) {
	ctx := context.Background()
	uc := newReviewUC(t)

	session, err := uc.StartSession(ctx, "PROJ")
	gt.NoError(t, err)

	evals := []*model.Evaluation{
		fullEvaluation(t, "PROJ-101", true),
		partialEvaluation(t, "PROJ-102"),
		fullEvaluation(t, "PROJ-103", false),
	}

	results, err := uc.ScoreBatch(ctx, session.ID, evals)
	gt.NoError(t, err)
	gt.A(t, results).Length(3)

	gt.NoError(t, results[0].Err)
	gt.Equal(t, results[0].Result.Tier, types.TierReadyForSprint)

	gt.Error(t, results[1].Err)
	gt.True(t, errors.Is(results[1].Err, model.ErrIncompleteEvaluation))
	gt.V(t, results[1].Result).Nil()

	gt.NoError(t, results[2].Err)
	gt.Equal(t, results[2].Result.Tier, types.TierSignificantRefinement)

	// Only the two scorable items made it into the report
	report, err := uc.BuildReport(ctx, session.ID)
	gt.NoError(t, err)
	gt.Equal(t, report.Summary.TotalItems, 2)
}

func TestScoreBatchEmpty(t *testing.T) {
	ctx := context.Background()
	uc := newReviewUC(t)

	session, err := uc.StartSession(ctx, "PROJ")
	gt.NoError(t, err)

	_, err = uc.ScoreBatch(ctx, session.ID, nil)
	gt.Error(t, err)
}

func TestSetStoryPointsGuards(t *testing.T) {
	ctx := context.Background()
	uc := newReviewUC(t)

	session, err := uc.StartSession(ctx, "PROJ")
	gt.NoError(t, err)

	t.Run("unscored item", func(t *testing.T) {
		_, err := uc.SetStoryPoints(ctx, session.ID, "PROJ-404", 5)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrScoreNotFound))
	})

	t.Run("low-scoring item", func(t *testing.T) {
		_, err := uc.ScoreItem(ctx, session.ID, fullEvaluation(t, "PROJ-1", false))
		gt.NoError(t, err)

		_, err = uc.SetStoryPoints(ctx, session.ID, "PROJ-1", 5)
		gt.Error(t, err)
	})
}

func TestCompleteSessionTwice(t *testing.T) {
	ctx := context.Background()
	uc := newReviewUC(t)

	session, err := uc.StartSession(ctx, "PROJ")
	gt.NoError(t, err)

	_, err = uc.CompleteSession(ctx, session.ID)
	gt.NoError(t, err)

	_, err = uc.CompleteSession(ctx, session.ID)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrSessionCompleted))
}

func TestScoreItemSaveFailure(t *testing.T) {
	ctx := context.Background()

	session, err := model.NewGroomingSession("PROJ")
	gt.NoError(t, err)

	saveErr := errors.New("firestore unavailable")
	repo := &mocks.RepositoryMock{
		GetSessionFunc: func(ctx context.Context, id types.SessionID) (*model.GroomingSession, error) {
			return session, nil
		},
		SaveScoreFunc: func(ctx context.Context, sessionID types.SessionID, result *model.ScoreResult) error {
			return saveErr
		},
	}

	uc, err := usecase.NewReview(repo, model.DefaultRubric())
	gt.NoError(t, err)

	_, err = uc.ScoreItem(ctx, session.ID, fullEvaluation(t, "PROJ-1", true))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, saveErr))
	gt.A(t, repo.SaveScoreCalls()).Length(1)
}
