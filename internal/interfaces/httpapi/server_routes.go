package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", handler.Healthz)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /leagues", handler.ListLeagues)
	mux.HandleFunc("GET /leagues/country/{country}", handler.ListLeaguesByCountry)
	mux.HandleFunc("GET /leagues/season/{season}", handler.ListLeaguesBySeason)
	mux.HandleFunc("GET /stats", handler.LeagueStats)
}

func registerFixtureRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /fixtures/league/{leagueID}", handler.ListFixturesByLeague)
	mux.HandleFunc("GET /fixtures/team/{teamID}", handler.ListFixturesByTeam)
	mux.HandleFunc("GET /fixtures/date-range", handler.ListFixturesByDateRange)
	mux.HandleFunc("GET /fixtures/stats", handler.FixtureStats)
}

func registerPipelineRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /pipeline/run", handler.RunPipeline)
	mux.HandleFunc("GET /pipeline/status", handler.PipelineStatus)
}
