package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/mathpractice/internal/domain"
)

const (
	defaultTopic      = "algebra"
	defaultDifficulty = "medium"
)

// GenerateQuestionInput is a request for a new practice question.
type GenerateQuestionInput struct {
	Topic      string
	Difficulty string
	Request    string // optional free-form instructions from the student
}

// GeneratedQuestion is the model output plus the parameters it was generated for.
type GeneratedQuestion struct {
	Question   string
	Topic      string
	Difficulty string
}

// QuestionService generates practice questions with a generative model.
// It keeps no state and writes nothing to the ledger.
type QuestionService struct {
	generator domain.QuestionGenerator
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(generator domain.QuestionGenerator) *QuestionService {
	return &QuestionService{generator: generator}
}

// Generate asks the model for a question on the requested topic and difficulty.
func (s *QuestionService) Generate(ctx context.Context, in GenerateQuestionInput) (*GeneratedQuestion, error) {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		topic = defaultTopic
	}
	difficulty := strings.TrimSpace(in.Difficulty)
	if difficulty == "" {
		difficulty = defaultDifficulty
	}

	text, err := s.generator.Generate(ctx, buildQuestionPrompt(topic, difficulty, strings.TrimSpace(in.Request)))
	if err != nil {
		return nil, fmt.Errorf("generate question: %w", err)
	}

	return &GeneratedQuestion{
		Question:   text,
		Topic:      topic,
		Difficulty: difficulty,
	}, nil
}

func buildQuestionPrompt(topic, difficulty, request string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write one university-level math practice question on the topic %q.\n", topic)
	fmt.Fprintf(&b, "Difficulty: %s.\n", difficulty)
	if request != "" {
		fmt.Fprintf(&b, "Student request: %s\n", request)
	}
	b.WriteString("Include the question, a step-by-step solution, the final answer, ")
	b.WriteString("and the formulas or concepts it relies on. Use clear mathematical notation.\n")
	return b.String()
}
