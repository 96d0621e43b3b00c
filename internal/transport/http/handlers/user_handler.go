package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nickmonteleone/sharebandb-backend/internal/service"
	"github.com/nickmonteleone/sharebandb-backend/internal/transport/http/middleware"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
		} else {
			h.logger.Error("get user failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": user.Public()})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tokenUser := middleware.GetUser(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	if err := h.userService.Delete(r.Context(), tokenUser.ID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotAccountSelf):
			writeError(w, http.StatusForbidden, "Only the account owner can delete it")
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			h.logger.Error("delete user failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
