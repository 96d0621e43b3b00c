package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nickmonteleone/sharebandb-backend/internal/service"
	"github.com/nickmonteleone/sharebandb-backend/pkg/validator"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input service.CredentialsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateCredentials(input.Username, input.Password); errs.HasErrors() {
		writeFieldErrors(w, errs)
		return
	}

	token, err := h.authService.Signup(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			writeError(w, http.StatusBadRequest, "Username is unavailable.")
		} else {
			h.logger.Error("signup failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.CredentialsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.authService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCreds) {
			writeError(w, http.StatusUnauthorized, "Cannot login with these credentials")
		} else {
			h.logger.Error("login failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeFieldErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"error": errs})
}
