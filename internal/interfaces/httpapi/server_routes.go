package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerQueryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
	mux.HandleFunc("GET /api/points-table", handler.ListPointsTable)
	mux.HandleFunc("GET /api/schedule", handler.ListSchedule)
	mux.HandleFunc("GET /api/matches/upcoming", handler.ListUpcomingMatches)
	mux.HandleFunc("GET /api/matches/live", handler.GetLiveMatch)
	mux.HandleFunc("GET /api/matches/{id}", handler.GetMatchByID)
}
