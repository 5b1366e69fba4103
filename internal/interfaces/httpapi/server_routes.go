package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)

	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/categories", handler.ListCategoriesByLeague)
	mux.HandleFunc("GET /v1/categories/{categoryID}/zones", handler.ListZonesByCategory)
	mux.HandleFunc("GET /v1/zones/{zoneID}/teams", handler.ListTeamsByZone)
	mux.HandleFunc("GET /v1/zones/{zoneID}/fixtures", handler.ListFixturesByZone)
	mux.HandleFunc("GET /v1/zones/{zoneID}/standings", handler.ListStandingsByZone)
	mux.HandleFunc("GET /v1/zones/{zoneID}/standings/export", handler.ExportStandingsCSV)
	mux.HandleFunc("GET /v1/courses", handler.ListCourses)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/categories", RequireAuth(verifier, http.HandlerFunc(handler.CreateCategory)))
	mux.Handle("PUT /v1/categories/{categoryID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateCategory)))
	mux.Handle("DELETE /v1/categories/{categoryID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteCategory)))

	mux.Handle("POST /v1/zones", RequireAuth(verifier, http.HandlerFunc(handler.CreateZone)))
	mux.Handle("PUT /v1/zones/{zoneID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateZone)))
	mux.Handle("DELETE /v1/zones/{zoneID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteZone)))

	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("PUT /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateTeam)))
	mux.Handle("DELETE /v1/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteTeam)))

	mux.Handle("POST /v1/fixtures", RequireAuth(verifier, http.HandlerFunc(handler.CreateFixture)))
	mux.Handle("PUT /v1/fixtures/{fixtureID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateFixture)))
	mux.Handle("DELETE /v1/fixtures/{fixtureID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteFixture)))
	mux.Handle("PUT /v1/matches/{matchID}/result", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMatchResult)))

	mux.Handle("POST /v1/standings", RequireAuth(verifier, http.HandlerFunc(handler.CreateStanding)))
	mux.Handle("PUT /v1/standings/{standingID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateStanding)))
	mux.Handle("DELETE /v1/standings/{standingID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteStanding)))
	mux.Handle("POST /v1/zones/{zoneID}/standings/import", RequireAuth(verifier, http.HandlerFunc(handler.ImportStandingsCSV)))

	mux.Handle("POST /v1/courses", RequireAuth(verifier, http.HandlerFunc(handler.CreateCourse)))
	mux.Handle("PUT /v1/courses/{courseID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateCourse)))
	mux.Handle("DELETE /v1/courses/{courseID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteCourse)))
}
