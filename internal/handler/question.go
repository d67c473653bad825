package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/msomdec/mathpractice/internal/service"
)

// QuestionHandler serves AI-generated practice questions.
type QuestionHandler struct {
	questions *service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questions *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// HandleGenerate asks the model for a new question. An empty body uses the
// defaults. Nothing is recorded.
// @Summary      Generate a question
// @Description  Topic defaults to algebra and difficulty to medium.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      GenerateQuestionRequest  false  "Question parameters"
// @Success      200   {object}  QuestionResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  MessageResponse
// @Failure      500   {object}  ErrorResponse  "model unavailable"
// @Router       /api/ai/generate_question [post]
func (h *QuestionHandler) HandleGenerate(w http.ResponseWriter, r *http.Request, _ int64) error {
	var req GenerateQuestionRequest
	if err := readJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	q, err := h.questions.Generate(r.Context(), service.GenerateQuestionInput{
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Request:    req.Request,
	})
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, QuestionResponse{
		Question:   q.Question,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
	})
	return nil
}
