package handler

import (
	"net/http"

	"github.com/msomdec/mathpractice/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleSignup creates a password account.
// @Summary      Sign up
// @Description  Create an account with email and password and receive a session token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignupRequest  true  "New account"
// @Success      201   {object}  AuthResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse  "email already registered"
// @Failure      500   {object}  ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) error {
	var req SignupRequest
	if err := readJSON(w, r, &req); err != nil {
		return err
	}

	res, err := h.auth.Signup(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, toAuthResponse("User created successfully", res))
	return nil
}

// HandleLogin authenticates with email and password.
// @Summary      Log in
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  AuthResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse  "invalid credentials"
// @Failure      500   {object}  ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) error {
	var req LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		return err
	}

	res, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, toAuthResponse("Login successful", res))
	return nil
}

// HandleGoogleLogin authenticates with a Google access token, creating or
// linking the account as needed.
// @Summary      Log in with Google
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      GoogleLoginRequest  true  "Google access token"
// @Success      200   {object}  AuthResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse  "token rejected by Google"
// @Failure      500   {object}  ErrorResponse
// @Router       /api/auth/google-login [post]
func (h *AuthHandler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) error {
	var req GoogleLoginRequest
	if err := readJSON(w, r, &req); err != nil {
		return err
	}

	res, err := h.auth.FederatedLogin(r.Context(), req.Token)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, toAuthResponse("Google login successful", res))
	return nil
}
