package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/participando/liga-api/internal/usecase"
)

type createCategoryRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	LeagueID   string `json:"leagueId" validate:"required"`
	IsEditable *bool  `json:"isEditable"`
}

type updateCategoryRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=100"`
	IsEditable *bool   `json:"isEditable"`
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCategory")
	defer span.End()

	var req createCategoryRequest
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

	// New categories are editable unless the payload says otherwise.
	isEditable := true
	if req.IsEditable != nil {
		isEditable = *req.IsEditable
	}

	item, err := h.categoryService.Create(ctx, usecase.CreateCategoryInput{
		Name:       req.Name,
		LeagueID:   req.LeagueID,
		IsEditable: isEditable,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create category failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, categoryToDTO(item))
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCategory")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))

	var req updateCategoryRequest
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

	item, err := h.categoryService.Update(ctx, categoryID, usecase.UpdateCategoryInput{
		Name:       req.Name,
		IsEditable: req.IsEditable,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update category failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, categoryToDTO(item))
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCategory")
	defer span.End()

	categoryID := strings.TrimSpace(r.PathValue("categoryID"))
	if err := h.categoryService.Delete(ctx, categoryID); err != nil {
		h.logger.WarnContext(ctx, "delete category failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}
