package httpapi

import "net/http"

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	page, err := h.parsePageRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, total, err := h.fixtureService.ListFixtures(ctx, page)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeList(ctx, w, total, page, items)
}

func (h *Handler) ListFixturesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByLeague")
	defer span.End()

	page, err := h.parsePageRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID, err := parseInt64PathValue(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, total, err := h.fixtureService.ListFixturesByLeague(ctx, leagueID, page)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeList(ctx, w, total, page, items)
}

func (h *Handler) ListFixturesByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByTeam")
	defer span.End()

	page, err := h.parsePageRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID, err := parseInt64PathValue(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, total, err := h.fixtureService.ListFixturesByTeam(ctx, teamID, page)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeList(ctx, w, total, page, items)
}

func (h *Handler) ListFixturesByDateRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByDateRange")
	defer span.End()

	page, err := h.parsePageRequest(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	startDate := query.Get("start_date")
	endDate := query.Get("end_date")

	items, total, err := h.fixtureService.ListFixturesByDateRange(ctx, startDate, endDate, page)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeList(ctx, w, total, page, items)
}

func (h *Handler) FixtureStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FixtureStats")
	defer span.End()

	stats, err := h.fixtureService.Stats(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stats)
}
