package handler

import (
	"net/http"
)

// HandleHealth reports that the API is up.
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /api/health [get]
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "Math practice API is running",
	})
}
