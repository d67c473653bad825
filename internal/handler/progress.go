package handler

import (
	"net/http"

	"github.com/msomdec/mathpractice/internal/service"
)

// ProgressHandler records answers and serves the progress dashboard.
type ProgressHandler struct {
	progress *service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progress *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// HandleSave records one answered question for the caller.
// @Summary      Save progress
// @Tags         Progress
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      SaveProgressRequest  true  "Answered question"
// @Success      201   {object}  SaveProgressResponse
// @Failure      400   {object}  ErrorResponse  "question or topic missing"
// @Failure      401   {object}  MessageResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/progress/save [post]
func (h *ProgressHandler) HandleSave(w http.ResponseWriter, r *http.Request, userID int64) error {
	var req SaveProgressRequest
	if err := readJSON(w, r, &req); err != nil {
		return err
	}

	id, err := h.progress.Save(r.Context(), userID, service.SaveProgressInput{
		Question:      req.Question,
		UserAnswer:    req.UserAnswer,
		CorrectAnswer: req.CorrectAnswer,
		IsCorrect:     req.IsCorrect,
		Topic:         req.Topic,
		Difficulty:    req.Difficulty,
	})
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, SaveProgressResponse{
		Message:    "Progress saved successfully",
		ProgressID: id,
	})
	return nil
}

// HandleDashboard returns the caller's aggregated progress.
// @Summary      Progress dashboard
// @Description  Overall stats, per-topic and per-difficulty accuracy, and the ten most recent answers.
// @Tags         Progress
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  DashboardResponse
// @Failure      401  {object}  MessageResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/progress/dashboard [get]
func (h *ProgressHandler) HandleDashboard(w http.ResponseWriter, r *http.Request, userID int64) error {
	dash, err := h.progress.Dashboard(r.Context(), userID)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, toDashboardResponse(dash))
	return nil
}
