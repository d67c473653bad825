package handler

import (
	"time"

	"github.com/msomdec/mathpractice/internal/domain"
	"github.com/msomdec/mathpractice/internal/service"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID    int64  `json:"id" example:"1"`
	Email string `json:"email" example:"student@example.com"`
	Name  string `json:"name" example:"Ada Student"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

// AuthResponse is returned by every successful authentication endpoint.
type AuthResponse struct {
	Message string  `json:"message" example:"Login successful"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

func toAuthResponse(message string, res *service.AuthResult) AuthResponse {
	return AuthResponse{
		Message: message,
		Token:   res.Token,
		User:    toUserDTO(res.User),
	}
}

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email" example:"student@example.com"`
	Password string `json:"password" example:"password123"`
	Name     string `json:"name" example:"Ada Student"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" example:"student@example.com"`
	Password string `json:"password" example:"password123"`
}

// GoogleLoginRequest is the body of POST /api/auth/google-login.
type GoogleLoginRequest struct {
	Token string `json:"token"`
}

// GenerateQuestionRequest is the body of POST /api/ai/generate_question.
// Every field is optional.
type GenerateQuestionRequest struct {
	Topic      string `json:"topic" example:"calculus"`
	Difficulty string `json:"difficulty" example:"hard"`
	Request    string `json:"request" example:"focus on integration by parts"`
}

// QuestionResponse carries a generated question.
type QuestionResponse struct {
	Question   string `json:"question"`
	Topic      string `json:"topic" example:"calculus"`
	Difficulty string `json:"difficulty" example:"hard"`
}

// SaveProgressRequest is the body of POST /api/progress/save.
type SaveProgressRequest struct {
	Question      string  `json:"question" example:"What is 2+2?"`
	UserAnswer    *string `json:"user_answer" example:"4"`
	CorrectAnswer *string `json:"correct_answer" example:"4"`
	IsCorrect     *bool   `json:"is_correct" example:"true"`
	Topic         string  `json:"topic" example:"arithmetic"`
	Difficulty    string  `json:"difficulty" example:"easy"`
}

// SaveProgressResponse is returned after an entry is recorded.
type SaveProgressResponse struct {
	Message    string `json:"message" example:"Progress saved successfully"`
	ProgressID int64  `json:"progress_id" example:"42"`
}

// TopicStatsDTO is one row of topic performance.
type TopicStatsDTO struct {
	Topic          string  `json:"topic"`
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
	Accuracy       float64 `json:"accuracy"`
}

// DifficultyStatsDTO is one row of difficulty performance.
type DifficultyStatsDTO struct {
	Difficulty     string  `json:"difficulty"`
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
	Accuracy       float64 `json:"accuracy"`
}

// ActivityDTO is a recent progress entry. Null answers and grades stay null.
type ActivityDTO struct {
	Question   string  `json:"question"`
	UserAnswer *string `json:"user_answer"`
	IsCorrect  *bool   `json:"is_correct"`
	Topic      string  `json:"topic"`
	CreatedAt  string  `json:"created_at"`
}

// DashboardResponse is the body of GET /api/progress/dashboard.
type DashboardResponse struct {
	OverallStats          domain.OverallStats  `json:"overall_stats"`
	TopicPerformance      []TopicStatsDTO      `json:"topic_performance"`
	RecentActivity        []ActivityDTO        `json:"recent_activity"`
	DifficultyPerformance []DifficultyStatsDTO `json:"difficulty_performance"`
}

func toDashboardResponse(d *domain.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		OverallStats:          d.Overall,
		TopicPerformance:      make([]TopicStatsDTO, len(d.ByTopic)),
		RecentActivity:        make([]ActivityDTO, len(d.Recent)),
		DifficultyPerformance: make([]DifficultyStatsDTO, len(d.ByDifficulty)),
	}
	for i, s := range d.ByTopic {
		resp.TopicPerformance[i] = TopicStatsDTO{
			Topic:          s.Key,
			TotalQuestions: s.TotalQuestions,
			CorrectAnswers: s.CorrectAnswers,
			Accuracy:       s.Accuracy,
		}
	}
	for i, a := range d.Recent {
		resp.RecentActivity[i] = ActivityDTO{
			Question:   a.Question,
			UserAnswer: a.UserAnswer,
			IsCorrect:  a.IsCorrect,
			Topic:      a.Topic,
			CreatedAt:  a.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	for i, s := range d.ByDifficulty {
		resp.DifficultyPerformance[i] = DifficultyStatsDTO{
			Difficulty:     s.Key,
			TotalQuestions: s.TotalQuestions,
			CorrectAnswers: s.CorrectAnswers,
			Accuracy:       s.Accuracy,
		}
	}
	return resp
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of an auth middleware rejection.
type MessageResponse struct {
	Message string `json:"message" example:"Token is missing!"`
}
