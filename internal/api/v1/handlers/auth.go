package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/auralabs/aura/internal/services/auth"
	"github.com/auralabs/aura/internal/services/session"
	"github.com/auralabs/aura/pkg/httpext"
)

// use a single instance of Validate, it caches struct info
var validate = validator.New(validator.WithRequiredStructEnabled())

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleSignup creates an account and opens a session
func HandleSignup(authService *auth.Service, sessions *session.Service, w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed signup request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		log.Warn().Err(err).Msg("Signup validation failed")
		httpext.JsonError(w, "name, a valid email and a password of at least 6 characters are required", http.StatusBadRequest)
		return
	}

	u, err := authService.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) || errors.Is(err, auth.ErrWeakPassword) {
			httpext.JsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("Signup failed")
		httpext.JsonError(w, "sign up error", http.StatusInternalServerError)
		return
	}

	if err := sessions.CreateSession(w, u.ID); err != nil {
		log.Error().Err(err).Msg("Failed to create session after signup")
		httpext.JsonError(w, "sign up error", http.StatusInternalServerError)
		return
	}

	httpext.JsonResponse(w, http.StatusCreated, u.ToView())
}

// HandleLogin verifies a credential and opens a session
func HandleLogin(authService *auth.Service, sessions *session.Service, w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed login request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		log.Warn().Err(err).Msg("Login validation failed")
		httpext.JsonError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	u, err := authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUnknownEmail) || errors.Is(err, auth.ErrBadPassword) {
			httpext.JsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("Login failed")
		httpext.JsonError(w, "login error", http.StatusInternalServerError)
		return
	}

	if err := sessions.CreateSession(w, u.ID); err != nil {
		log.Error().Err(err).Msg("Failed to create session after login")
		httpext.JsonError(w, "login error", http.StatusInternalServerError)
		return
	}

	httpext.JsonResponse(w, http.StatusOK, u.ToView())
}

// HandleLogout clears the session cookie and the stored session
func HandleLogout(sessions *session.Service, w http.ResponseWriter, r *http.Request) {
	sessions.ClearSession(w, r)
	httpext.JsonResponse(w, http.StatusOK, map[string]string{"message": "log out successfully"})
}
