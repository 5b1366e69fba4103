package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/participando/liga-api/internal/usecase"
)

type createFixtureRequest struct {
	Date      string               `json:"date" validate:"required,max=100"`
	MatchDate string               `json:"matchDate" validate:"omitempty,max=100"`
	ZoneID    string               `json:"zoneId" validate:"required"`
	Matches   []createMatchRequest `json:"matches" validate:"dive"`
}

type createMatchRequest struct {
	HomeTeamID string `json:"homeTeamId" validate:"required"`
	AwayTeamID string `json:"awayTeamId" validate:"required"`
}

type updateFixtureRequest struct {
	Date      *string `json:"date" validate:"omitempty,max=100"`
	MatchDate *string `json:"matchDate" validate:"omitempty,max=100"`
}

type matchResultRequest struct {
	HomeScore *int `json:"homeScore" validate:"required"`
	AwayScore *int `json:"awayScore" validate:"required"`
}

type matchResultDTO struct {
	Match            matchDTO `json:"match"`
	StandingsApplied bool     `json:"standingsApplied"`
}

func (h *Handler) ListFixturesByZone(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByZone")
	defer span.End()

	zoneID := r.PathValue("zoneID")
	fixtures, err := h.fixtureService.ListByZone(ctx, zoneID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "zone_id", zoneID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFixture")
	defer span.End()

	var req createFixtureRequest
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

	matches := make([]usecase.CreateMatchInput, 0, len(req.Matches))
	for _, m := range req.Matches {
		matches = append(matches, usecase.CreateMatchInput{
			HomeTeamID: m.HomeTeamID,
			AwayTeamID: m.AwayTeamID,
		})
	}

	item, err := h.fixtureService.Create(ctx, usecase.CreateFixtureInput{
		Date:      req.Date,
		MatchDate: req.MatchDate,
		ZoneID:    req.ZoneID,
		Matches:   matches,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create fixture failed", "zone_id", req.ZoneID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, fixtureToDTO(item))
}

func (h *Handler) UpdateFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFixture")
	defer span.End()

	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))

	var req updateFixtureRequest
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

	item, err := h.fixtureService.Update(ctx, fixtureID, usecase.UpdateFixtureInput{
		Date:      req.Date,
		MatchDate: req.MatchDate,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item))
}

func (h *Handler) DeleteFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFixture")
	defer span.End()

	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	if err := h.fixtureService.Delete(ctx, fixtureID); err != nil {
		h.logger.WarnContext(ctx, "delete fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) UpdateMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchResult")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req matchResultRequest
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

	result, err := h.fixtureService.UpdateMatchResult(ctx, matchID, *req.HomeScore, *req.AwayScore)
	if err != nil {
		h.logger.WarnContext(ctx, "update match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchResultDTO{
		Match:            matchToDTO(result.Match),
		StandingsApplied: result.StandingsApplied,
	})
}
