package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/prasetyowira/footdata/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	page, err := h.parsePageRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, total, err := h.leagueService.ListLeagues(ctx, page)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeList(ctx, w, total, page, items)
}

func (h *Handler) ListLeaguesByCountry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaguesByCountry")
	defer span.End()

	page, err := h.parsePageRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	country := r.PathValue("country")
	items, total, err := h.leagueService.ListLeaguesByCountry(ctx, country, page)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeList(ctx, w, total, page, items)
}

func (h *Handler) ListLeaguesBySeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaguesBySeason")
	defer span.End()

	page, err := h.parsePageRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	season, err := strconv.Atoi(strings.TrimSpace(r.PathValue("season")))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: season must be an integer", usecase.ErrInvalidInput))
		return
	}

	items, total, err := h.leagueService.ListLeaguesBySeason(ctx, season, page)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeList(ctx, w, total, page, items)
}

func (h *Handler) LeagueStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LeagueStats")
	defer span.End()

	stats, err := h.leagueService.Stats(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stats)
}
