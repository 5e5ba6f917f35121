package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
)

// Criterion represents one weighted yes/no question of the grooming rubric
type Criterion struct {
	ID       types.CriterionID `yaml:"id"`
	Question string            `yaml:"question"`
	Weight   float64           `yaml:"weight"`
	Category string            `yaml:"category,omitempty"`
}

// Validate validates the criterion
func (c *Criterion) Validate() error {
	if c.ID <= 0 {
		return goerr.New("criterion ID must be positive", goerr.V("id", c.ID))
	}
	if c.Question == "" {
		return goerr.New("criterion question is required", goerr.V("id", c.ID))
	}
	if c.Weight <= 0 {
		return goerr.New("criterion weight must be positive",
			goerr.V("id", c.ID),
			goerr.V("weight", c.Weight))
	}
	return nil
}

// Rubric is the fixed set of weighted criteria a backlog item is judged
// against. It is loaded once at startup and never mutated afterwards.
type Rubric struct {
	Criteria []Criterion `yaml:"criteria"`
}

// Validate validates the rubric configuration. A rubric that fails
// validation is a startup error, not a per-item scoring error.
func (r *Rubric) Validate() error {
	if len(r.Criteria) == 0 {
		return goerr.New("at least one criterion is required")
	}

	idMap := make(map[types.CriterionID]bool)
	for i, c := range r.Criteria {
		if err := c.Validate(); err != nil {
			return goerr.Wrap(err, "invalid criterion at index",
				goerr.V("index", i),
				goerr.V("id", c.ID))
		}

		if idMap[c.ID] {
			return goerr.New("duplicate criterion ID", goerr.V("id", c.ID))
		}
		idMap[c.ID] = true
	}

	return nil
}

// MaxScore returns the sum of all criterion weights
func (r *Rubric) MaxScore() float64 {
	var total float64
	for _, c := range r.Criteria {
		total += c.Weight
	}
	return total
}

// FindCriterion finds a criterion by its ID
func (r *Rubric) FindCriterion(id types.CriterionID) *Criterion {
	for _, c := range r.Criteria {
		if c.ID == id {
			result := c
			return &result
		}
	}
	return nil
}

// Score evaluates a completed evaluation against the rubric and returns
// the score result. It is a pure function over in-memory data: the same
// evaluation always yields an identical score and tier.
//
// An evaluation missing an answer for any criterion fails with
// ErrIncompleteEvaluation and produces no partial result.
func (r *Rubric) Score(eval *Evaluation) (*ScoreResult, error) {
	if eval == nil {
		return nil, goerr.New("evaluation is nil")
	}

	var missing []types.CriterionID
	for _, c := range r.Criteria {
		if _, ok := eval.Answer(c.ID); !ok {
			missing = append(missing, c.ID)
		}
	}
	if len(missing) > 0 {
		return nil, goerr.Wrap(ErrIncompleteEvaluation, "cannot score evaluation",
			goerr.V("itemKey", eval.ItemKey),
			goerr.V("missing", missing),
			goerr.V("answered", len(r.Criteria)-len(missing)),
		)
	}

	max := r.MaxScore()
	var raw float64
	breakdown := make([]CriterionScore, 0, len(r.Criteria))
	for _, c := range r.Criteria {
		answer, _ := eval.Answer(c.ID)
		var contribution float64
		if answer {
			contribution = c.Weight
			raw += c.Weight
		}
		breakdown = append(breakdown, CriterionScore{
			CriterionID:  c.ID,
			Question:     c.Question,
			Category:     c.Category,
			Weight:       c.Weight,
			Answer:       answer,
			Contribution: contribution,
		})
	}

	percentage := raw / max * 100

	return &ScoreResult{
		ItemKey:    eval.ItemKey,
		Title:      eval.Title,
		Raw:        raw,
		Max:        max,
		Percentage: percentage,
		Tier:       types.TierForPercentage(percentage),
		Breakdown:  breakdown,
		ScoredAt:   time.Now(),
	}, nil
}

// DefaultRubric returns the built-in grooming rubric
func DefaultRubric() *Rubric {
	return &Rubric{
		Criteria: []Criterion{
			{ID: 1, Question: "Is the user story written from end-user perspective?", Weight: 1.0, Category: "clarity"},
			{ID: 2, Question: "Are acceptance criteria clearly defined?", Weight: 1.5, Category: "requirements"},
			{ID: 3, Question: "Is the business value clearly articulated?", Weight: 1.2, Category: "value"},
			{ID: 4, Question: "Is the scope well-defined and contained?", Weight: 1.3, Category: "scope"},
			{ID: 5, Question: "Are all dependencies identified?", Weight: 1.1, Category: "technical"},
			{ID: 6, Question: "Is the technical approach clear?", Weight: 1.2, Category: "technical"},
			{ID: 7, Question: "Can this be completed within one sprint?", Weight: 1.4, Category: "size"},
			{ID: 8, Question: "Are there clear test scenarios?", Weight: 1.0, Category: "quality"},
			{ID: 9, Question: "Is this story independent (can be developed in isolation)?", Weight: 1.1, Category: "technical"},
			{ID: 10, Question: "Is all necessary information available to start development?", Weight: 1.3, Category: "readiness"},
		},
	}
}
