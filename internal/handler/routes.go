package handler

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/msomdec/mathpractice/internal/service"

	_ "github.com/msomdec/mathpractice/docs" // registers the OpenAPI document
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	progress *service.ProgressService,
	questions *service.QuestionService,
) {
	authHandler := NewAuthHandler(auth)
	progressHandler := NewProgressHandler(progress)
	questionHandler := NewQuestionHandler(questions)

	mux.HandleFunc("GET /api/health", HandleHealth)

	mux.Handle("POST /api/auth/signup", handle(authHandler.HandleSignup))
	mux.Handle("POST /api/auth/login", handle(authHandler.HandleLogin))
	mux.Handle("POST /api/auth/google-login", handle(authHandler.HandleGoogleLogin))

	mux.Handle("POST /api/ai/generate_question", RequireAuth(auth, questionHandler.HandleGenerate))
	mux.Handle("POST /api/progress/save", RequireAuth(auth, progressHandler.HandleSave))
	mux.Handle("GET /api/progress/dashboard", RequireAuth(auth, progressHandler.HandleDashboard))

	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
}
