package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/participando/liga-api/internal/usecase"
)

type createTeamRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Logo   string `json:"logo" validate:"omitempty,max=500"`
	ZoneID string `json:"zoneId" validate:"required"`
}

type updateTeamRequest struct {
	Name *string `json:"name" validate:"omitempty,max=100"`
	Logo *string `json:"logo" validate:"omitempty,max=500"`
}

func (h *Handler) ListTeamsByZone(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByZone")
	defer span.End()

	zoneID := r.PathValue("zoneID")
	teams, err := h.teamService.ListByZone(ctx, zoneID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "zone_id", zoneID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
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

	item, err := h.teamService.Create(ctx, usecase.CreateTeamInput{
		Name:   req.Name,
		Logo:   req.Logo,
		ZoneID: req.ZoneID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "zone_id", req.ZoneID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))

	var req updateTeamRequest
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

	item, err := h.teamService.Update(ctx, teamID, usecase.UpdateTeamInput{
		Name: req.Name,
		Logo: req.Logo,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	if err := h.teamService.Delete(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}
