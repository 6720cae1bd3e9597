// Package handler contains the HTTP layer: request parsing, response
// serialization, and the mapping from domain errors to status codes.
// Handlers never contain business rules — they translate between the wire
// and the service layer.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abarbosa/recados/internal/model"
	"github.com/abarbosa/recados/internal/service"
)

// UserHandler serves account registration and login.
type UserHandler struct {
	users  *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// signupRequest is the expected body for POST /signup.
type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the expected body for POST /login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse wraps a user record with a human-readable message, matching
// the API's established response shape. The password hash never appears —
// model.User tags it json:"-".
type userResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

// HandleSignup registers a new account.
//
// HTTP: POST /signup
// BODY: {"name": "Ana", "email": "ana@x.com", "password": "secret"}
//
// 201 on success; 400 for missing fields; 409 if the email is taken.
func (h *UserHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid signup JSON", slog.String("error", err.Error()))
		writeInvalidJSON(w)
		return
	}

	user, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{
		Message: fmt.Sprintf("Welcome %s! Account registered successfully.", user.Name),
		User:    user,
	})
}

// HandleLogin verifies credentials.
//
// HTTP: POST /login
// BODY: {"email": "ana@x.com", "password": "secret"}
//
// 200 with the matched identity on success. Failures are deliberately
// distinct: 400 missing field, 404 unknown email, 401 wrong password.
func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid login JSON", slog.String("error", err.Error()))
		writeInvalidJSON(w)
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		Message: fmt.Sprintf("Welcome back, %s! Logged in successfully.", user.Name),
		User:    user,
	})
}
