package domain

import (
	"context"
	"time"
)

const DefaultDifficulty = "medium"

// ProgressEntry records one answered question. Entries are append-only.
type ProgressEntry struct {
	ID            int64
	UserID        int64
	Question      string
	UserAnswer    *string
	CorrectAnswer *string
	IsCorrect     *bool // nil when the answer was not graded
	Topic         string
	Difficulty    string
	CreatedAt     time.Time
}

// OverallStats summarizes every entry of a user.
type OverallStats struct {
	TotalQuestions  int     `json:"total_questions"`
	CorrectAnswers  int     `json:"correct_answers"`
	TopicsPracticed int     `json:"topics_practiced"`
	OverallAccuracy float64 `json:"overall_accuracy"`
}

// GroupStats holds per-topic or per-difficulty performance. Key is the topic
// or difficulty the row was grouped by.
type GroupStats struct {
	Key            string
	TotalQuestions int
	CorrectAnswers int
	Accuracy       float64
}

// Activity is a recent progress entry as shown on the dashboard.
type Activity struct {
	Question   string
	UserAnswer *string
	IsCorrect  *bool
	Topic      string
	CreatedAt  time.Time
}

// Dashboard bundles the four aggregate views of a user's progress.
type Dashboard struct {
	Overall      OverallStats
	ByTopic      []GroupStats
	Recent       []Activity
	ByDifficulty []GroupStats
}

// ProgressRepository persists progress entries and computes aggregates over them.
type ProgressRepository interface {
	Append(ctx context.Context, entry *ProgressEntry) error
	OverallStats(ctx context.Context, userID int64) (*OverallStats, error)
	TopicPerformance(ctx context.Context, userID int64) ([]GroupStats, error)
	DifficultyPerformance(ctx context.Context, userID int64) ([]GroupStats, error)
	RecentActivity(ctx context.Context, userID int64, limit int) ([]Activity, error)
}
