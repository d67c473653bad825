package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/msomdec/mathpractice/internal/domain"
	"github.com/msomdec/mathpractice/internal/repository/sqlite"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func newTestUser(t *testing.T, db *sqlite.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, Name: "Student", PasswordHash: "hash"}
	if err := sqlite.NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	return user
}

func TestProgressRepository_Append(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewProgressRepository(db)
	user := newTestUser(t, db, "append@example.com")
	ctx := context.Background()

	entry := &domain.ProgressEntry{
		UserID:        user.ID,
		Question:      "What is 2+2?",
		UserAnswer:    strPtr("4"),
		CorrectAnswer: strPtr("4"),
		IsCorrect:     boolPtr(true),
		Topic:         "arithmetic",
	}
	if err := repo.Append(ctx, entry); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if entry.ID == 0 {
		t.Fatal("expected entry ID to be set")
	}
	if entry.Difficulty != domain.DefaultDifficulty {
		t.Fatalf("expected default difficulty, got %q", entry.Difficulty)
	}
	if entry.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestProgressRepository_OverallStats_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewProgressRepository(db)
	user := newTestUser(t, db, "empty@example.com")

	stats, err := repo.OverallStats(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("OverallStats: %v", err)
	}
	if stats.TotalQuestions != 0 || stats.CorrectAnswers != 0 || stats.TopicsPracticed != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestProgressRepository_Aggregates(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewProgressRepository(db)
	user := newTestUser(t, db, "agg@example.com")
	other := newTestUser(t, db, "other@example.com")
	ctx := context.Background()

	entries := []*domain.ProgressEntry{
		{UserID: user.ID, Question: "q1", Topic: "A", IsCorrect: boolPtr(true), Difficulty: "easy"},
		{UserID: user.ID, Question: "q2", Topic: "A", IsCorrect: boolPtr(false)},
		{UserID: user.ID, Question: "q3", Topic: "B", IsCorrect: boolPtr(true)},
		{UserID: user.ID, Question: "q4", Topic: "B"}, // ungraded
		{UserID: other.ID, Question: "q5", Topic: "C", IsCorrect: boolPtr(true)},
	}
	for _, e := range entries {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("Append %s: %v", e.Question, err)
		}
	}

	stats, err := repo.OverallStats(ctx, user.ID)
	if err != nil {
		t.Fatalf("OverallStats: %v", err)
	}
	if stats.TotalQuestions != 4 || stats.CorrectAnswers != 2 || stats.TopicsPracticed != 2 {
		t.Fatalf("unexpected overall stats: %+v", stats)
	}

	topics, err := repo.TopicPerformance(ctx, user.ID)
	if err != nil {
		t.Fatalf("TopicPerformance: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(topics))
	}
	for _, tp := range topics {
		if tp.TotalQuestions != 2 || tp.CorrectAnswers != 1 || tp.Accuracy != 50 {
			t.Fatalf("unexpected topic stats: %+v", tp)
		}
	}
	// Equal counts fall back to alphabetical order.
	if topics[0].Key != "A" || topics[1].Key != "B" {
		t.Fatalf("unexpected topic order: %+v", topics)
	}

	difficulties, err := repo.DifficultyPerformance(ctx, user.ID)
	if err != nil {
		t.Fatalf("DifficultyPerformance: %v", err)
	}
	if len(difficulties) != 2 {
		t.Fatalf("expected 2 difficulties, got %d", len(difficulties))
	}
	if difficulties[0].Key != "medium" || difficulties[0].TotalQuestions != 3 {
		t.Fatalf("expected medium first with 3 entries, got %+v", difficulties[0])
	}
	if difficulties[0].Accuracy != 33.33 {
		t.Fatalf("expected medium accuracy 33.33, got %v", difficulties[0].Accuracy)
	}
	if difficulties[1].Key != "easy" || difficulties[1].Accuracy != 100 {
		t.Fatalf("unexpected easy stats: %+v", difficulties[1])
	}
}

func TestProgressRepository_RecentActivity(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewProgressRepository(db)
	user := newTestUser(t, db, "recent@example.com")
	ctx := context.Background()

	for i := range 12 {
		e := &domain.ProgressEntry{UserID: user.ID, Question: fmt.Sprintf("q%d", i), Topic: "algebra"}
		if i%2 == 0 {
			e.IsCorrect = boolPtr(true)
			e.UserAnswer = strPtr("yes")
		}
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	activity, err := repo.RecentActivity(ctx, user.ID, 10)
	if err != nil {
		t.Fatalf("RecentActivity: %v", err)
	}
	if len(activity) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(activity))
	}
	if activity[0].Question != "q11" {
		t.Fatalf("expected newest entry q11 first, got %s", activity[0].Question)
	}
	if activity[9].Question != "q2" {
		t.Fatalf("expected q2 last, got %s", activity[9].Question)
	}
	for i := 1; i < len(activity); i++ {
		if activity[i].CreatedAt.After(activity[i-1].CreatedAt) {
			t.Fatalf("entries out of order at %d", i)
		}
	}
	if activity[0].IsCorrect != nil || activity[0].UserAnswer != nil {
		t.Fatalf("expected ungraded q11 to have nil fields, got %+v", activity[0])
	}
	if activity[1].IsCorrect == nil || !*activity[1].IsCorrect {
		t.Fatalf("expected q10 to be correct, got %+v", activity[1])
	}
}
