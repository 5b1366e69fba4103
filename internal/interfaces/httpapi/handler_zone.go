package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/participando/liga-api/internal/usecase"
)

type createZoneRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	CategoryID string `json:"categoryId" validate:"required"`
}

type updateZoneRequest struct {
	Name *string `json:"name" validate:"omitempty,max=100"`
}

func (h *Handler) ListZonesByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListZonesByCategory")
	defer span.End()

	categoryID := r.PathValue("categoryID")
	zones, err := h.zoneService.ListByCategory(ctx, categoryID)
	if err != nil {
		h.logger.WarnContext(ctx, "list zones failed", "category_id", categoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]zoneDTO, 0, len(zones))
	for _, z := range zones {
		items = append(items, zoneToDTO(z))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateZone(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateZone")
	defer span.End()

	var req createZoneRequest
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

	item, err := h.zoneService.Create(ctx, usecase.CreateZoneInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create zone failed", "category_id", req.CategoryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, zoneToDTO(item))
}

func (h *Handler) UpdateZone(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateZone")
	defer span.End()

	zoneID := strings.TrimSpace(r.PathValue("zoneID"))

	var req updateZoneRequest
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

	item, err := h.zoneService.Update(ctx, zoneID, usecase.UpdateZoneInput{Name: req.Name})
	if err != nil {
		h.logger.WarnContext(ctx, "update zone failed", "zone_id", zoneID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, zoneToDTO(item))
}

func (h *Handler) DeleteZone(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteZone")
	defer span.End()

	zoneID := strings.TrimSpace(r.PathValue("zoneID"))
	if err := h.zoneService.Delete(ctx, zoneID); err != nil {
		h.logger.WarnContext(ctx, "delete zone failed", "zone_id", zoneID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}
