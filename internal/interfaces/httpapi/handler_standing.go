package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/participando/liga-api/internal/usecase"
)

// Import payloads are whole CSV files; anything bigger than this is not a
// standings table.
const maxCSVImportBytes = 1 << 20

type createStandingRequest struct {
	TeamID string `json:"teamId" validate:"required"`
	ZoneID string `json:"zoneId" validate:"required"`
}

type updateStandingRequest struct {
	Points       *int `json:"points" validate:"omitempty,min=0"`
	Played       *int `json:"played" validate:"omitempty,min=0"`
	Won          *int `json:"won" validate:"omitempty,min=0"`
	Drawn        *int `json:"drawn" validate:"omitempty,min=0"`
	Lost         *int `json:"lost" validate:"omitempty,min=0"`
	GoalsFor     *int `json:"goalsFor" validate:"omitempty,min=0"`
	GoalsAgainst *int `json:"goalsAgainst" validate:"omitempty,min=0"`
}

type importResultDTO struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
}

func (h *Handler) ListStandingsByZone(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandingsByZone")
	defer span.End()

	zoneID := r.PathValue("zoneID")
	rows, err := h.standingService.ListByZone(ctx, zoneID)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "zone_id", zoneID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, standingToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateStanding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateStanding")
	defer span.End()

	var req createStandingRequest
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

	item, err := h.standingService.Create(ctx, usecase.CreateStandingInput{
		TeamID: req.TeamID,
		ZoneID: req.ZoneID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create standing failed", "team_id", req.TeamID, "zone_id", req.ZoneID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, standingToDTO(item))
}

func (h *Handler) UpdateStanding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateStanding")
	defer span.End()

	standingID := strings.TrimSpace(r.PathValue("standingID"))

	var req updateStandingRequest
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

	item, err := h.standingService.Update(ctx, standingID, usecase.UpdateStandingInput{
		Points:       req.Points,
		Played:       req.Played,
		Won:          req.Won,
		Drawn:        req.Drawn,
		Lost:         req.Lost,
		GoalsFor:     req.GoalsFor,
		GoalsAgainst: req.GoalsAgainst,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update standing failed", "standing_id", standingID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingToDTO(item))
}

func (h *Handler) DeleteStanding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteStanding")
	defer span.End()

	standingID := strings.TrimSpace(r.PathValue("standingID"))
	if err := h.standingService.Delete(ctx, standingID); err != nil {
		h.logger.WarnContext(ctx, "delete standing failed", "standing_id", standingID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) ImportStandingsCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportStandingsCSV")
	defer span.End()

	zoneID := strings.TrimSpace(r.PathValue("zoneID"))

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxCSVImportBytes))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read CSV body: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.standingService.ImportCSV(ctx, zoneID, string(payload))
	if err != nil {
		h.logger.WarnContext(ctx, "import standings csv failed", "zone_id", zoneID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, importResultDTO{
		Applied: result.Applied,
		Skipped: result.Skipped,
	})
}

func (h *Handler) ExportStandingsCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportStandingsCSV")
	defer span.End()

	zoneID := strings.TrimSpace(r.PathValue("zoneID"))
	format := strings.TrimSpace(r.URL.Query().Get("format"))

	file, err := h.standingService.ExportCSV(ctx, zoneID, format)
	if err != nil {
		h.logger.WarnContext(ctx, "export standings csv failed", "zone_id", zoneID, "format", format, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}
