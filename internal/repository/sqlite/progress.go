package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/msomdec/mathpractice/internal/domain"
)

// ProgressRepository implements domain.ProgressRepository using SQLite.
type ProgressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new SQLite-backed ProgressRepository.
func NewProgressRepository(db *DB) *ProgressRepository {
	return &ProgressRepository{db: db.SqlDB}
}

func (r *ProgressRepository) Append(ctx context.Context, entry *domain.ProgressEntry) error {
	now := time.Now().UTC()
	if entry.Difficulty == "" {
		entry.Difficulty = domain.DefaultDifficulty
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO progress (user_id, question, user_answer, correct_answer, is_correct, topic, difficulty, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.UserID, entry.Question,
		nullStringPtr(entry.UserAnswer), nullStringPtr(entry.CorrectAnswer), nullBoolPtr(entry.IsCorrect),
		entry.Topic, entry.Difficulty, now,
	)
	if err != nil {
		return fmt.Errorf("insert progress: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	entry.ID = id
	entry.CreatedAt = now
	return nil
}

func (r *ProgressRepository) OverallStats(ctx context.Context, userID int64) (*domain.OverallStats, error) {
	stats := &domain.OverallStats{}
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0),
		        COUNT(DISTINCT topic)
		 FROM progress WHERE user_id = ?`, userID,
	).Scan(&stats.TotalQuestions, &stats.CorrectAnswers, &stats.TopicsPracticed)
	if err != nil {
		return nil, fmt.Errorf("query overall stats: %w", err)
	}
	return stats, nil
}

func (r *ProgressRepository) TopicPerformance(ctx context.Context, userID int64) ([]domain.GroupStats, error) {
	return r.groupStats(ctx, "topic", userID)
}

func (r *ProgressRepository) DifficultyPerformance(ctx context.Context, userID int64) ([]domain.GroupStats, error) {
	return r.groupStats(ctx, "difficulty", userID)
}

// groupStats aggregates a user's entries by column, which must be a trusted
// identifier and never user input.
func (r *ProgressRepository) groupStats(ctx context.Context, column string, userID int64) ([]domain.GroupStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+column+`,
		        COUNT(*) AS total_questions,
		        SUM(CASE WHEN is_correct THEN 1 ELSE 0 END),
		        ROUND(AVG(CASE WHEN is_correct THEN 100.0 ELSE 0.0 END), 2)
		 FROM progress WHERE user_id = ?
		 GROUP BY `+column+`
		 ORDER BY total_questions DESC, `+column+` ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query %s performance: %w", column, err)
	}
	defer rows.Close()

	stats := []domain.GroupStats{}
	for rows.Next() {
		var s domain.GroupStats
		if err := rows.Scan(&s.Key, &s.TotalQuestions, &s.CorrectAnswers, &s.Accuracy); err != nil {
			return nil, fmt.Errorf("scan %s performance: %w", column, err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *ProgressRepository) RecentActivity(ctx context.Context, userID int64, limit int) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT question, user_answer, is_correct, topic, created_at
		 FROM progress WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent activity: %w", err)
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
			return nil, fmt.Errorf("scan recent activity: %w", err)
		}
		if userAnswer.Valid {
			a.UserAnswer = &userAnswer.String
		}
		if isCorrect.Valid {
			a.IsCorrect = &isCorrect.Bool
		}
		activity = append(activity, a)
	}
	return activity, rows.Err()
}
