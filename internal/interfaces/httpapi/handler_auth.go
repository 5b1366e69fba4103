package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/participando/liga-api/internal/usecase"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponseDTO struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expiresAt"`
	User      principalDTO `json:"user"`
}

type principalDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	session, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, loginResponseDTO{
		Token:     session.AccessToken,
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
		User: principalDTO{
			ID:       session.Principal.UserID,
			Username: session.Principal.Username,
		},
	})
}
