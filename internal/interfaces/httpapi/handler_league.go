package httpapi

import (
	"net/http"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	item, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) ListCategoriesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCategoriesByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	categories, err := h.leagueService.ListCategoriesByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list categories failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]categoryDTO, 0, len(categories))
	for _, c := range categories {
		items = append(items, categoryToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
