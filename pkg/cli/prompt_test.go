package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/repository"
	"github.com/refinery-lab/groomctl/pkg/service/source"
	"github.com/refinery-lab/groomctl/pkg/usecase"
)

func TestAskYesNo(t *testing.T) {
	t.Run("accepts y and yes", func(t *testing.T) {
		var out bytes.Buffer
		p := newPrompter(strings.NewReader("y\nyes\n"), &out)

		answer, err := p.AskYesNo("Is it clear?")
		gt.NoError(t, err)
		gt.True(t, answer)

		answer, err = p.AskYesNo("Is it clear?")
		gt.NoError(t, err)
		gt.True(t, answer)
	})

	t.Run("accepts n and no", func(t *testing.T) {
		var out bytes.Buffer
		p := newPrompter(strings.NewReader("N\nNO\n"), &out)

		answer, err := p.AskYesNo("Is it clear?")
		gt.NoError(t, err)
		gt.False(t, answer)

		answer, err = p.AskYesNo("Is it clear?")
		gt.NoError(t, err)
		gt.False(t, answer)
	})

	t.Run("reasks on invalid input", func(t *testing.T) {
		var out bytes.Buffer
		p := newPrompter(strings.NewReader("maybe\ny\n"), &out)

		answer, err := p.AskYesNo("Is it clear?")
		gt.NoError(t, err)
		gt.True(t, answer)
		gt.S(t, out.String()).Contains("Please answer y or n")
	})

	t.Run("fails on exhausted input", func(t *testing.T) {
		var out bytes.Buffer
		p := newPrompter(strings.NewReader(""), &out)

		_, err := p.AskYesNo("Is it clear?")
		gt.Error(t, err)
	})
}

func TestAskStoryPoints(t *testing.T) {
	t.Run("accepts scale value", func(t *testing.T) {
		var out bytes.Buffer
		p := newPrompter(strings.NewReader("5\n"), &out)

		points, err := p.AskStoryPoints()
		gt.NoError(t, err)
		gt.V(t, points).NotNil()
		gt.Equal(t, *points, 5)
	})

	t.Run("empty input skips", func(t *testing.T) {
		var out bytes.Buffer
		p := newPrompter(strings.NewReader("\n"), &out)

		points, err := p.AskStoryPoints()
		gt.NoError(t, err)
		gt.V(t, points).Nil()
	})

	t.Run("reasks on off-scale value", func(t *testing.T) {
		var out bytes.Buffer
		p := newPrompter(strings.NewReader("4\nabc\n8\n"), &out)

		points, err := p.AskStoryPoints()
		gt.NoError(t, err)
		gt.V(t, points).NotNil()
		gt.Equal(t, *points, 8)
		gt.S(t, out.String()).Contains("Please pick a value from the scale")
	})
}

func TestRunReviewLoop(t *testing.T) {
	ctx := context.Background()

	reviewUC, err := usecase.NewReview(repository.NewMemory(), model.DefaultRubric())
	gt.NoError(t, err).Required()

	session, err := reviewUC.StartSession(ctx, "PROJ")
	gt.NoError(t, err)

	items, err := source.NewMock().FetchItems(ctx, "PROJ", 2)
	gt.NoError(t, err)
	gt.A(t, items).Length(2)

	// First item: all yes, estimate 5 points, continue.
	// Second item: all no (no estimate prompt follows).
	var input strings.Builder
	for range model.DefaultRubric().Criteria {
		input.WriteString("y\n")
	}
	input.WriteString("5\n")
	input.WriteString("y\n")
	for range model.DefaultRubric().Criteria {
		input.WriteString("n\n")
	}

	var out bytes.Buffer
	p := newPrompter(strings.NewReader(input.String()), &out)

	gt.NoError(t, runReviewLoop(ctx, p, reviewUC, session.ID, items))

	report, err := reviewUC.CompleteSession(ctx, session.ID)
	gt.NoError(t, err)
	gt.Equal(t, report.Summary.TotalItems, 2)

	gt.Equal(t, report.Results[0].Percentage, 100.0)
	gt.V(t, report.Results[0].StoryPoints).NotNil()
	gt.Equal(t, *report.Results[0].StoryPoints, 5)
	gt.Equal(t, report.Results[1].Percentage, 0.0)
	gt.V(t, report.Results[1].StoryPoints).Nil()

	gt.S(t, out.String()).Contains("Score: 100.0%")
	gt.S(t, out.String()).Contains("Ready for Sprint")
}

func TestItemBanner(t *testing.T) {
	item := &model.BacklogItem{
		Key:      "PROJ-101",
		Title:    "User authentication flow",
		Type:     "Story",
		Priority: "High",
		Status:   "To Do",
	}

	banner := itemBanner(item, 1, 3)
	gt.S(t, banner).Contains("Item 1 of 3")
	gt.S(t, banner).Contains("[PROJ-101] User authentication flow")
	gt.S(t, banner).Contains("Priority:    High")
}

func TestNewRenderer(t *testing.T) {
	r, err := newRenderer("markdown")
	gt.NoError(t, err)
	gt.V(t, r).NotNil()

	r, err = newRenderer("json")
	gt.NoError(t, err)
	gt.V(t, r).NotNil()

	_, err = newRenderer("xml")
	gt.Error(t, err)
}
