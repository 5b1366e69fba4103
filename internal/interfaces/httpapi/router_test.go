package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/participando/liga-api/internal/domain/category"
	"github.com/participando/liga-api/internal/domain/fixture"
	"github.com/participando/liga-api/internal/domain/league"
	"github.com/participando/liga-api/internal/domain/standing"
	"github.com/participando/liga-api/internal/domain/team"
	"github.com/participando/liga-api/internal/domain/zone"
	"github.com/participando/liga-api/internal/infrastructure/repository/memory"
	"github.com/participando/liga-api/internal/platform/id"
	"github.com/participando/liga-api/internal/usecase"
)

// newTestRouter wires the full stack over in-memory stores: one league, one
// category, one zone, two teams, one fixture with an unplayed match, and
// zeroed standings rows.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	leagueRepo := memory.NewLeagueRepository([]league.League{
		{ID: "liga_a", Name: "Liga A"},
	})
	categoryRepo := memory.NewCategoryRepository([]category.Category{
		{ID: "cat_a", Name: "Primera", LeagueID: "liga_a", IsEditable: true},
	})
	zoneRepo := memory.NewZoneRepository([]zone.Zone{
		{ID: "zone_a", Name: "Zona 1", LeagueID: "liga_a", CategoryID: "cat_a"},
	})
	teamRepo := memory.NewTeamRepository([]team.Team{
		{ID: "team_h", Name: "Local FC", LeagueID: "liga_a", CategoryID: "cat_a", ZoneID: "zone_a"},
		{ID: "team_v", Name: "Visitante FC", LeagueID: "liga_a", CategoryID: "cat_a", ZoneID: "zone_a"},
	})
	fixtureRepo := memory.NewFixtureRepository([]fixture.Fixture{
		{
			ID:         "fix_a",
			Date:       "1° FECHA",
			MatchDate:  "29 DE MARZO",
			LeagueID:   "liga_a",
			CategoryID: "cat_a",
			ZoneID:     "zone_a",
			Matches: []fixture.Match{
				{ID: "match_a", FixtureID: "fix_a", HomeTeamID: "team_h", AwayTeamID: "team_v"},
			},
		},
	})
	standingRepo := memory.NewStandingRepository([]standing.Standing{
		{ID: "st_h", TeamID: "team_h", LeagueID: "liga_a", CategoryID: "cat_a", ZoneID: "zone_a"},
		{ID: "st_v", TeamID: "team_v", LeagueID: "liga_a", CategoryID: "cat_a", ZoneID: "zone_a"},
	})
	courseRepo := memory.NewCourseRepository(nil)

	idGen := id.NewTimestampGenerator()

	authService := usecase.NewAuthService("admin", "admin", "test-secret", time.Hour, nil)
	handler := NewHandler(
		usecase.NewLeagueService(leagueRepo, categoryRepo),
		usecase.NewCategoryService(leagueRepo, categoryRepo, zoneRepo, teamRepo, fixtureRepo, standingRepo, idGen, nil),
		usecase.NewZoneService(categoryRepo, zoneRepo, teamRepo, fixtureRepo, standingRepo, idGen, nil),
		usecase.NewTeamService(zoneRepo, teamRepo, fixtureRepo, standingRepo, idGen, nil),
		usecase.NewFixtureService(zoneRepo, fixtureRepo, standingRepo, idGen, nil),
		usecase.NewStandingService(zoneRepo, teamRepo, standingRepo, idGen, nil),
		usecase.NewCourseService(courseRepo, idGen, nil),
		authService,
		nil,
	)

	return NewRouter(handler, authService, nil, []string{"*"})
}

func loginForToken(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/login", `{"username":"admin","password":"admin"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal login response: %v", err)
	}
	if envelope.Data.Token == "" {
		t.Fatal("empty token")
	}

	return envelope.Data.Token
}

func doJSON(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}
