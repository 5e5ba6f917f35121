package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
)

func TestSetStoryPoints(t *testing.T) {
	rubric := model.DefaultRubric()

	t.Run("eligible item accepts scale values", func(t *testing.T) {
		result := mustScore(t, rubric, "PROJ-1", answersFor(rubric, true))
		gt.True(t, result.EligibleForEstimate())

		gt.NoError(t, result.SetStoryPoints(13))
		gt.V(t, result.StoryPoints).NotNil()
		gt.Equal(t, *result.StoryPoints, 13)
	})

	t.Run("rejects off-scale values", func(t *testing.T) {
		result := mustScore(t, rubric, "PROJ-1", answersFor(rubric, true))

		gt.Error(t, result.SetStoryPoints(4))
		gt.Error(t, result.SetStoryPoints(0))
		gt.Error(t, result.SetStoryPoints(-3))
		gt.V(t, result.StoryPoints).Nil()
	})

	t.Run("rejects estimate on low-scoring item", func(t *testing.T) {
		result := mustScore(t, rubric, "PROJ-1", answersFor(rubric, false))
		gt.False(t, result.EligibleForEstimate())

		err := result.SetStoryPoints(5)
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("not refined enough")
	})
}

func TestStoryPointScale(t *testing.T) {
	scale := model.StoryPointScale()
	gt.Equal(t, scale, []int{1, 2, 3, 5, 8, 13, 21})

	// Mutating the returned slice must not affect validation
	scale[0] = 99
	gt.True(t, model.IsValidStoryPoints(1))
	gt.False(t, model.IsValidStoryPoints(99))
}

func TestScoreResultClone(t *testing.T) {
	rubric := model.DefaultRubric()
	result := mustScore(t, rubric, "PROJ-1", answersFor(rubric, true))
	gt.NoError(t, result.SetStoryPoints(8))

	clone := result.Clone()
	clone.Breakdown[0].Answer = false
	*clone.StoryPoints = 21

	gt.True(t, result.Breakdown[0].Answer)
	gt.Equal(t, *result.StoryPoints, 8)
}

func TestNewEvaluation(t *testing.T) {
	t.Run("copies answers", func(t *testing.T) {
		answers := map[types.CriterionID]bool{1: true}
		eval, err := model.NewEvaluation("PROJ-1", "Some item", answers)
		gt.NoError(t, err)

		answers[1] = false
		answer, ok := eval.Answer(1)
		gt.True(t, ok)
		gt.True(t, answer)
		gt.Equal(t, eval.AnswerCount(), 1)
	})

	t.Run("fails with empty item key", func(t *testing.T) {
		_, err := model.NewEvaluation("", "", nil)
		gt.Error(t, err)
	})
}
