package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/mathpractice/internal/domain"
)

type ProgressRepository struct {
	db DBTX
}

func NewProgressRepository(db DBTX) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Append(ctx context.Context, entry *domain.ProgressEntry) error {
	if entry.Difficulty == "" {
		entry.Difficulty = domain.DefaultDifficulty
	}

	query :=
		`INSERT INTO progress (user_id, question, user_answer, correct_answer, is_correct, topic, difficulty)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.Question,
		nullStringPtr(entry.UserAnswer), nullStringPtr(entry.CorrectAnswer), nullBoolPtr(entry.IsCorrect),
		entry.Topic, entry.Difficulty,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *ProgressRepository) OverallStats(ctx context.Context, userID int64) (*domain.OverallStats, error) {
	query :=
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0),
		        COUNT(DISTINCT topic)
		 FROM progress
		 WHERE user_id = $1`

	stats := &domain.OverallStats{}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&stats.TotalQuestions, &stats.CorrectAnswers, &stats.TopicsPracticed)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return stats, nil
}

const topicPerformanceQuery = `SELECT topic,
        COUNT(*) AS total_questions,
        SUM(CASE WHEN is_correct THEN 1 ELSE 0 END),
        ROUND(AVG(CASE WHEN is_correct THEN 100.0 ELSE 0.0 END), 2)::float8
 FROM progress
 WHERE user_id = $1
 GROUP BY topic
 ORDER BY total_questions DESC, topic ASC`

const difficultyPerformanceQuery = `SELECT difficulty,
        COUNT(*) AS total_questions,
        SUM(CASE WHEN is_correct THEN 1 ELSE 0 END),
        ROUND(AVG(CASE WHEN is_correct THEN 100.0 ELSE 0.0 END), 2)::float8
 FROM progress
 WHERE user_id = $1
 GROUP BY difficulty
 ORDER BY total_questions DESC, difficulty ASC`

func (r *ProgressRepository) TopicPerformance(ctx context.Context, userID int64) ([]domain.GroupStats, error) {
	return r.groupStats(ctx, topicPerformanceQuery, userID)
}

func (r *ProgressRepository) DifficultyPerformance(ctx context.Context, userID int64) ([]domain.GroupStats, error) {
	return r.groupStats(ctx, difficultyPerformanceQuery, userID)
}

func (r *ProgressRepository) groupStats(ctx context.Context, query string, userID int64) ([]domain.GroupStats, error) {
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	stats := []domain.GroupStats{}
	for rows.Next() {
		var s domain.GroupStats
		if err := rows.Scan(&s.Key, &s.TotalQuestions, &s.CorrectAnswers, &s.Accuracy); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return stats, nil
}

func (r *ProgressRepository) RecentActivity(ctx context.Context, userID int64, limit int) ([]domain.Activity, error) {
	query :=
		`SELECT question, user_answer, is_correct, topic, created_at
		 FROM progress
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	activity := []domain.Activity{}
	for rows.Next() {
		var (
			a          domain.Activity
			userAnswer sql.NullString
			isCorrect  sql.NullBool
		)
		if err := rows.Scan(&a.Question, &userAnswer, &isCorrect, &a.Topic, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if userAnswer.Valid {
			a.UserAnswer = &userAnswer.String
		}
		if isCorrect.Valid {
			a.IsCorrect = &isCorrect.Bool
		}
		activity = append(activity, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return activity, nil
}
