package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
)

// Evaluation holds the yes/no answers collected for a single backlog item.
// Answers are copied on construction; an Evaluation is never mutated after
// it has been scored.
type Evaluation struct {
	ItemKey    types.ItemKey
	Title      string
	answers    map[types.CriterionID]bool
	ReviewedAt time.Time
}

// NewEvaluation creates a new Evaluation from a complete answer map
func NewEvaluation(itemKey types.ItemKey, title string, answers map[types.CriterionID]bool) (*Evaluation, error) {
	if itemKey == "" {
		return nil, goerr.New("item key is required")
	}

	copied := make(map[types.CriterionID]bool, len(answers))
	for id, answer := range answers {
		copied[id] = answer
	}

	return &Evaluation{
		ItemKey:    itemKey,
		Title:      title,
		answers:    copied,
		ReviewedAt: time.Now(),
	}, nil
}

// Answer returns the recorded answer for a criterion and whether it exists
func (e *Evaluation) Answer(id types.CriterionID) (bool, bool) {
	answer, ok := e.answers[id]
	return answer, ok
}

// AnswerCount returns the number of recorded answers
func (e *Evaluation) AnswerCount() int {
	return len(e.answers)
}
