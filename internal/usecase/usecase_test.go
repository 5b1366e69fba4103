package usecase

import (
	"fmt"

	"github.com/participando/liga-api/internal/domain/category"
	"github.com/participando/liga-api/internal/domain/fixture"
	"github.com/participando/liga-api/internal/domain/league"
	"github.com/participando/liga-api/internal/domain/standing"
	"github.com/participando/liga-api/internal/domain/team"
	"github.com/participando/liga-api/internal/domain/zone"
	"github.com/participando/liga-api/internal/infrastructure/repository/memory"
)

// seqIDGenerator hands out deterministic ids so tests can assert on them.
type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) NewID(prefix string) (string, error) {
	g.n++
	return fmt.Sprintf("%s_%d", prefix, g.n), nil
}

// testWorld is one league with one category, one zone, two teams, one
// fixture with a single unplayed match, and zeroed standings rows.
type testWorld struct {
	leagueRepo   *memory.LeagueRepository
	categoryRepo *memory.CategoryRepository
	zoneRepo     *memory.ZoneRepository
	teamRepo     *memory.TeamRepository
	fixtureRepo  *memory.FixtureRepository
	standingRepo *memory.StandingRepository
	idGen        *seqIDGenerator
}

func newTestWorld() *testWorld {
	return &testWorld{
		leagueRepo: memory.NewLeagueRepository([]league.League{
			{ID: "liga_a", Name: "Liga A"},
		}),
		categoryRepo: memory.NewCategoryRepository([]category.Category{
			{ID: "cat_a", Name: "Primera", LeagueID: "liga_a", IsEditable: true},
		}),
		zoneRepo: memory.NewZoneRepository([]zone.Zone{
			{ID: "zone_a", Name: "Zona 1", LeagueID: "liga_a", CategoryID: "cat_a"},
		}),
		teamRepo: memory.NewTeamRepository([]team.Team{
			{ID: "team_h", Name: "Local FC", LeagueID: "liga_a", CategoryID: "cat_a", ZoneID: "zone_a"},
			{ID: "team_v", Name: "Visitante FC", LeagueID: "liga_a", CategoryID: "cat_a", ZoneID: "zone_a"},
		}),
		fixtureRepo: memory.NewFixtureRepository([]fixture.Fixture{
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
		}),
		standingRepo: memory.NewStandingRepository([]standing.Standing{
			{ID: "st_h", TeamID: "team_h", LeagueID: "liga_a", CategoryID: "cat_a", ZoneID: "zone_a"},
			{ID: "st_v", TeamID: "team_v", LeagueID: "liga_a", CategoryID: "cat_a", ZoneID: "zone_a"},
		}),
		idGen: &seqIDGenerator{},
	}
}

func (w *testWorld) fixtureService() *FixtureService {
	return NewFixtureService(w.zoneRepo, w.fixtureRepo, w.standingRepo, w.idGen, nil)
}

func (w *testWorld) standingService() *StandingService {
	return NewStandingService(w.zoneRepo, w.teamRepo, w.standingRepo, w.idGen, nil)
}

func (w *testWorld) teamService() *TeamService {
	return NewTeamService(w.zoneRepo, w.teamRepo, w.fixtureRepo, w.standingRepo, w.idGen, nil)
}

func (w *testWorld) zoneService() *ZoneService {
	return NewZoneService(w.categoryRepo, w.zoneRepo, w.teamRepo, w.fixtureRepo, w.standingRepo, w.idGen, nil)
}

func (w *testWorld) categoryService() *CategoryService {
	return NewCategoryService(w.leagueRepo, w.categoryRepo, w.zoneRepo, w.teamRepo, w.fixtureRepo, w.standingRepo, w.idGen, nil)
}
