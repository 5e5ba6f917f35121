package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/interfaces"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
)

// JSON renders a session report as indented JSON
type JSON struct{}

// NewJSON creates a new JSON renderer
func NewJSON() interfaces.ReportRenderer {
	return &JSON{}
}

type jsonCriterion struct {
	ID           int     `json:"id"`
	Question     string  `json:"question"`
	Category     string  `json:"category,omitempty"`
	Weight       float64 `json:"weight"`
	Answer       bool    `json:"answer"`
	Contribution float64 `json:"contribution"`
}

type jsonResult struct {
	ItemKey     string          `json:"item_key"`
	Title       string          `json:"title,omitempty"`
	Raw         float64         `json:"raw_score"`
	Max         float64         `json:"max_score"`
	Percentage  float64         `json:"percentage"`
	Tier        string          `json:"readiness_level"`
	StoryPoints *int            `json:"story_points,omitempty"`
	ScoredAt    time.Time       `json:"scored_at"`
	Breakdown   []jsonCriterion `json:"evaluation"`
}

type jsonReport struct {
	SessionID   string         `json:"session_id"`
	ProjectKey  string         `json:"project_key"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
	TotalItems  int            `json:"total_items"`
	TierCounts  map[string]int `json:"tier_counts"`
	Results     []jsonResult   `json:"results"`
}

// Render writes the JSON report
func (r *JSON) Render(w io.Writer, report *model.SessionReport) error {
	if report == nil {
		return goerr.New("report is nil")
	}

	out := jsonReport{
		SessionID:   report.Session.ID.String(),
		ProjectKey:  report.Session.ProjectKey,
		StartedAt:   report.Session.StartedAt,
		CompletedAt: report.Session.CompletedAt,
		GeneratedAt: report.GeneratedAt,
		TotalItems:  report.Summary.TotalItems,
		TierCounts:  make(map[string]int, len(report.Summary.TierCounts)),
		Results:     make([]jsonResult, 0, len(report.Results)),
	}
	for tier, count := range report.Summary.TierCounts {
		out.TierCounts[tier.String()] = count
	}

	for _, result := range report.Results {
		jr := jsonResult{
			ItemKey:     result.ItemKey.String(),
			Title:       result.Title,
			Raw:         result.Raw,
			Max:         result.Max,
			Percentage:  result.Percentage,
			Tier:        result.Tier.String(),
			StoryPoints: result.StoryPoints,
			ScoredAt:    result.ScoredAt,
			Breakdown:   make([]jsonCriterion, 0, len(result.Breakdown)),
		}
		for _, cs := range result.Breakdown {
			jr.Breakdown = append(jr.Breakdown, jsonCriterion{
				ID:           cs.CriterionID.Int(),
				Question:     cs.Question,
				Category:     cs.Category,
				Weight:       cs.Weight,
				Answer:       cs.Answer,
				Contribution: cs.Contribution,
			})
		}
		out.Results = append(out.Results, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return goerr.Wrap(err, "failed to encode JSON report")
	}

	return nil
}
