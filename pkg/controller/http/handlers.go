package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
	"github.com/refinery-lab/groomctl/pkg/service/report"
	"github.com/refinery-lab/groomctl/pkg/usecase"
	"github.com/refinery-lab/groomctl/pkg/utils/apperr"
	"github.com/refinery-lab/groomctl/pkg/utils/async"
)

type handler struct {
	reviewUC usecase.Review
	notifyUC *usecase.NotifyUseCase
}

type criterionResponse struct {
	ID       int     `json:"id"`
	Question string  `json:"question"`
	Category string  `json:"category,omitempty"`
	Weight   float64 `json:"weight"`
}

type rubricResponse struct {
	Criteria        []criterionResponse `json:"criteria"`
	MaxScore        float64             `json:"max_score"`
	StoryPointScale []int               `json:"story_point_scale"`
}

type sessionResponse struct {
	ID          string     `json:"id"`
	ProjectKey  string     `json:"project_key"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type startSessionRequest struct {
	ProjectKey string `json:"project_key"`
}

type evaluationRequest struct {
	ItemKey string       `json:"item_key"`
	Title   string       `json:"title"`
	Answers map[int]bool `json:"answers"`
}

type batchScoreRequest struct {
	Evaluations []evaluationRequest `json:"evaluations"`
}

type storyPointsRequest struct {
	StoryPoints int `json:"story_points"`
}

type criterionScoreResponse struct {
	ID           int     `json:"id"`
	Question     string  `json:"question"`
	Category     string  `json:"category,omitempty"`
	Weight       float64 `json:"weight"`
	Answer       bool    `json:"answer"`
	Contribution float64 `json:"contribution"`
}

type scoreResponse struct {
	ItemKey     string                   `json:"item_key"`
	Title       string                   `json:"title,omitempty"`
	Raw         float64                  `json:"raw_score"`
	Max         float64                  `json:"max_score"`
	Percentage  float64                  `json:"percentage"`
	Tier        string                   `json:"readiness_level"`
	Estimable   bool                     `json:"eligible_for_estimate"`
	StoryPoints *int                     `json:"story_points,omitempty"`
	ScoredAt    time.Time                `json:"scored_at"`
	Breakdown   []criterionScoreResponse `json:"evaluation"`
}

type batchItemResponse struct {
	ItemKey string         `json:"item_key"`
	Result  *scoreResponse `json:"result,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type batchScoreResponse struct {
	Results []batchItemResponse `json:"results"`
}

func newSessionResponse(session *model.GroomingSession) sessionResponse {
	return sessionResponse{
		ID:          session.ID.String(),
		ProjectKey:  session.ProjectKey,
		StartedAt:   session.StartedAt,
		CompletedAt: session.CompletedAt,
	}
}

func newScoreResponse(result *model.ScoreResult) *scoreResponse {
	resp := &scoreResponse{
		ItemKey:     result.ItemKey.String(),
		Title:       result.Title,
		Raw:         result.Raw,
		Max:         result.Max,
		Percentage:  result.Percentage,
		Tier:        result.Tier.String(),
		Estimable:   result.EligibleForEstimate(),
		StoryPoints: result.StoryPoints,
		ScoredAt:    result.ScoredAt,
		Breakdown:   make([]criterionScoreResponse, 0, len(result.Breakdown)),
	}
	for _, cs := range result.Breakdown {
		resp.Breakdown = append(resp.Breakdown, criterionScoreResponse{
			ID:           cs.CriterionID.Int(),
			Question:     cs.Question,
			Category:     cs.Category,
			Weight:       cs.Weight,
			Answer:       cs.Answer,
			Contribution: cs.Contribution,
		})
	}
	return resp
}

func (req *evaluationRequest) toModel() (*model.Evaluation, error) {
	answers := make(map[types.CriterionID]bool, len(req.Answers))
	for id, answer := range req.Answers {
		answers[types.CriterionID(id)] = answer
	}
	return model.NewEvaluation(types.ItemKey(req.ItemKey), req.Title, answers)
}

// handleGetRubric returns the active rubric
func (h *handler) handleGetRubric(w http.ResponseWriter, r *http.Request) {
	rubric := h.reviewUC.Rubric()

	resp := rubricResponse{
		Criteria:        make([]criterionResponse, 0, len(rubric.Criteria)),
		MaxScore:        rubric.MaxScore(),
		StoryPointScale: model.StoryPointScale(),
	}
	for _, c := range rubric.Criteria {
		resp.Criteria = append(resp.Criteria, criterionResponse{
			ID:       c.ID.Int(),
			Question: c.Question,
			Category: c.Category,
			Weight:   c.Weight,
		})
	}

	respondJSON(w, r, http.StatusOK, resp)
}

// handleStartSession starts a new grooming session
func (h *handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if req.ProjectKey == "" {
		writeError(w, goerr.New("project_key is required"), http.StatusBadRequest)
		return
	}

	session, err := h.reviewUC.StartSession(r.Context(), req.ProjectKey)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, newSessionResponse(session))
}

// handleGetSession returns a session by ID
func (h *handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := types.SessionID(chi.URLParam(r, "sessionID"))

	session, err := h.reviewUC.GetSession(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, newSessionResponse(session))
}

// handleScoreItem scores a single backlog item in a session
func (h *handler) handleScoreItem(w http.ResponseWriter, r *http.Request) {
	sessionID := types.SessionID(chi.URLParam(r, "sessionID"))

	var req evaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	eval, err := req.toModel()
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	result, err := h.reviewUC.ScoreItem(r.Context(), sessionID, eval)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, newScoreResponse(result))
}

// handleScoreBatch scores several items at once. Item failures are
// reported per slot; the response is 200 as long as the batch itself ran.
func (h *handler) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	sessionID := types.SessionID(chi.URLParam(r, "sessionID"))

	var req batchScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if len(req.Evaluations) == 0 {
		writeError(w, goerr.New("evaluations are required"), http.StatusBadRequest)
		return
	}

	evals := make([]*model.Evaluation, 0, len(req.Evaluations))
	for _, er := range req.Evaluations {
		eval, err := er.toModel()
		if err != nil {
			writeError(w, goerr.Wrap(err, "invalid evaluation",
				goerr.V("itemKey", er.ItemKey)), http.StatusBadRequest)
			return
		}
		evals = append(evals, eval)
	}

	results, err := h.reviewUC.ScoreBatch(r.Context(), sessionID, evals)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	resp := batchScoreResponse{Results: make([]batchItemResponse, 0, len(results))}
	for _, item := range results {
		br := batchItemResponse{ItemKey: item.ItemKey.String()}
		if item.Err != nil {
			br.Error = item.Err.Error()
		} else {
			br.Result = newScoreResponse(item.Result)
		}
		resp.Results = append(resp.Results, br)
	}

	respondJSON(w, r, http.StatusOK, resp)
}

// handleSetStoryPoints records a story point estimate on a scored item
func (h *handler) handleSetStoryPoints(w http.ResponseWriter, r *http.Request) {
	sessionID := types.SessionID(chi.URLParam(r, "sessionID"))
	itemKey := types.ItemKey(chi.URLParam(r, "itemKey"))

	var req storyPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	result, err := h.reviewUC.SetStoryPoints(r.Context(), sessionID, itemKey, req.StoryPoints)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, newScoreResponse(result))
}

// handleCompleteSession finalizes a session and returns its report
func (h *handler) handleCompleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := types.SessionID(chi.URLParam(r, "sessionID"))

	sessionReport, err := h.reviewUC.CompleteSession(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	// Announce in the background so the response does not wait on Slack
	if h.notifyUC != nil {
		async.Dispatch(r.Context(), func(ctx context.Context) error {
			return h.notifyUC.PostSessionSummary(ctx, sessionReport)
		})
	}

	respondJSON(w, r, http.StatusOK, newSessionResponse(sessionReport.Session))
}

// handleGetReport renders the session report in the requested format
func (h *handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	sessionID := types.SessionID(chi.URLParam(r, "sessionID"))

	var renderer = report.NewJSON()
	contentType := "application/json"
	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		// default
	case "markdown":
		renderer = report.NewMarkdown()
		contentType = "text/markdown; charset=utf-8"
	default:
		writeError(w, goerr.New("unsupported report format",
			goerr.V("format", format)), http.StatusBadRequest)
		return
	}

	sessionReport, err := h.reviewUC.BuildReport(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if err := renderer.Render(w, sessionReport); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render report", "error", err)
	}
}

// respondError maps domain errors to HTTP status codes
func (h *handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		apperr.Handle(r.Context(), err)
	}
	writeError(w, err, status)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrSessionNotFound), errors.Is(err, model.ErrScoreNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrSessionCompleted):
		return http.StatusConflict
	case errors.Is(err, model.ErrIncompleteEvaluation),
		errors.Is(err, model.ErrNotEstimable),
		errors.Is(err, model.ErrInvalidStoryPoints):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if encErr := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); encErr != nil {
		ctxlog.From(context.Background()).Error("Failed to encode error response", "error", encErr)
	}
}
