package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/msomdec/mathpractice/internal/domain"
)

const recentActivityLimit = 10

// SaveProgressInput describes one answered question.
type SaveProgressInput struct {
	Question      string
	UserAnswer    *string
	CorrectAnswer *string
	IsCorrect     *bool
	Topic         string
	Difficulty    string
}

// ProgressService records answers and reports on a user's answer history.
type ProgressService struct {
	progress domain.ProgressRepository
}

// NewProgressService creates a new ProgressService.
func NewProgressService(progress domain.ProgressRepository) *ProgressService {
	return &ProgressService{progress: progress}
}

// Save appends a progress entry for userID and returns its id.
func (s *ProgressService) Save(ctx context.Context, userID int64, in SaveProgressInput) (int64, error) {
	if strings.TrimSpace(in.Question) == "" || strings.TrimSpace(in.Topic) == "" {
		return 0, fmt.Errorf("%w: question and topic are required", domain.ErrInvalidInput)
	}

	difficulty := strings.TrimSpace(in.Difficulty)
	if difficulty == "" {
		difficulty = domain.DefaultDifficulty
	}

	entry := &domain.ProgressEntry{
		UserID:        userID,
		Question:      in.Question,
		UserAnswer:    in.UserAnswer,
		CorrectAnswer: in.CorrectAnswer,
		IsCorrect:     in.IsCorrect,
		Topic:         in.Topic,
		Difficulty:    difficulty,
	}
	if err := s.progress.Append(ctx, entry); err != nil {
		return 0, fmt.Errorf("append progress: %w", err)
	}
	return entry.ID, nil
}

// Dashboard computes the overall, per-topic, recent, and per-difficulty views
// for userID. Nothing is cached.
func (s *ProgressService) Dashboard(ctx context.Context, userID int64) (*domain.Dashboard, error) {
	overall, err := s.progress.OverallStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("overall stats: %w", err)
	}
	overall.OverallAccuracy = accuracy(overall.CorrectAnswers, overall.TotalQuestions)

	byTopic, err := s.progress.TopicPerformance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("topic performance: %w", err)
	}

	recent, err := s.progress.RecentActivity(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}

	byDifficulty, err := s.progress.DifficultyPerformance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("difficulty performance: %w", err)
	}

	return &domain.Dashboard{
		Overall:      *overall,
		ByTopic:      byTopic,
		Recent:       recent,
		ByDifficulty: byDifficulty,
	}, nil
}

// accuracy returns correct/total as a percentage rounded to two decimals,
// or 0 when total is 0.
func accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*100*100) / 100
}
