package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
)

// estimateThreshold is the minimum percentage at which an item is
// considered refined enough to carry a story-point estimate.
const estimateThreshold = 75.0

// storyPointScale is the Fibonacci-style estimation scale
var storyPointScale = []int{1, 2, 3, 5, 8, 13, 21}

// StoryPointScale returns the allowed story point values
func StoryPointScale() []int {
	scale := make([]int, len(storyPointScale))
	copy(scale, storyPointScale)
	return scale
}

// IsValidStoryPoints checks if the value is on the estimation scale
func IsValidStoryPoints(points int) bool {
	for _, p := range storyPointScale {
		if p == points {
			return true
		}
	}
	return false
}

// CriterionScore is the per-criterion breakdown of a score result
type CriterionScore struct {
	CriterionID  types.CriterionID
	Question     string
	Category     string
	Weight       float64
	Answer       bool
	Contribution float64
}

// ScoreResult is the outcome of scoring one backlog item against the
// rubric. The tier is always derived from the percentage, never stored
// independently of it.
type ScoreResult struct {
	ItemKey     types.ItemKey
	Title       string
	Raw         float64
	Max         float64
	Percentage  float64
	Tier        types.ReadinessTier
	Breakdown   []CriterionScore
	StoryPoints *int
	ScoredAt    time.Time
}

// EligibleForEstimate returns true if the item scored high enough to be
// worth estimating
func (r *ScoreResult) EligibleForEstimate() bool {
	return r.Percentage >= estimateThreshold
}

// SetStoryPoints records a story point estimate on the result
func (r *ScoreResult) SetStoryPoints(points int) error {
	if !r.EligibleForEstimate() {
		return goerr.Wrap(ErrNotEstimable, "cannot set story points",
			goerr.V("itemKey", r.ItemKey),
			goerr.V("percentage", r.Percentage),
		)
	}
	if !IsValidStoryPoints(points) {
		return goerr.Wrap(ErrInvalidStoryPoints, "cannot set story points",
			goerr.V("points", points),
			goerr.V("scale", storyPointScale),
		)
	}

	r.StoryPoints = &points
	return nil
}

// Clone returns a deep copy of the score result
func (r *ScoreResult) Clone() *ScoreResult {
	copied := *r
	copied.Breakdown = make([]CriterionScore, len(r.Breakdown))
	copy(copied.Breakdown, r.Breakdown)
	if r.StoryPoints != nil {
		points := *r.StoryPoints
		copied.StoryPoints = &points
	}
	return &copied
}
