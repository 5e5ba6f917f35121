package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
)

func TestNewGroomingSession(t *testing.T) {
	t.Run("creates valid session", func(t *testing.T) {
		session, err := model.NewGroomingSession("PROJ")
		gt.NoError(t, err)
		gt.V(t, session).NotNil()
		gt.Equal(t, session.ProjectKey, "PROJ")
		gt.V(t, session.ID).NotEqual(types.SessionID(""))
		gt.V(t, session.CompletedAt).Nil()
		gt.False(t, session.IsCompleted())
	})

	t.Run("fails with empty project key", func(t *testing.T) {
		_, err := model.NewGroomingSession("")
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("project key is required")
	})
}

func TestGroomingSessionComplete(t *testing.T) {
	session, err := model.NewGroomingSession("PROJ")
	gt.NoError(t, err)

	gt.NoError(t, session.Complete())
	gt.True(t, session.IsCompleted())
	gt.V(t, session.CompletedAt).NotNil()

	err = session.Complete()
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrSessionCompleted))
}

func TestSessionSummary(t *testing.T) {
	rubric := model.DefaultRubric()

	score := func(t *testing.T, key types.ItemKey, trueCount int) *model.ScoreResult {
		t.Helper()
		answers := make(map[types.CriterionID]bool)
		for i, c := range rubric.Criteria {
			answers[c.ID] = i < trueCount
		}
		return mustScore(t, rubric, key, answers)
	}

	results := []*model.ScoreResult{
		score(t, "PROJ-1", 10), // 100%: Ready for Sprint
		score(t, "PROJ-2", 10), // 100%: Ready for Sprint
		score(t, "PROJ-3", 0),  // 0%: Significant Refinement Required
	}

	summary := model.NewSessionSummary(results)
	gt.Equal(t, summary.TotalItems, 3)
	gt.Equal(t, summary.Count(types.TierReadyForSprint), 2)
	gt.Equal(t, summary.Count(types.TierSignificantRefinement), 1)
	gt.Equal(t, summary.Count(types.TierNeedsDiscussion), 0)
	gt.Equal(t, summary.Count(types.TierMinorRefinements), 0)
}

func TestNewSessionReport(t *testing.T) {
	session, err := model.NewGroomingSession("PROJ")
	gt.NoError(t, err)

	report, err := model.NewSessionReport(session, nil)
	gt.NoError(t, err)
	gt.Equal(t, report.Summary.TotalItems, 0)

	_, err = model.NewSessionReport(nil, nil)
	gt.Error(t, err)
}
