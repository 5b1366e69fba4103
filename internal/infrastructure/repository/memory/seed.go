package memory

import (
	"github.com/participando/liga-api/internal/domain/category"
	"github.com/participando/liga-api/internal/domain/course"
	"github.com/participando/liga-api/internal/domain/fixture"
	"github.com/participando/liga-api/internal/domain/league"
	"github.com/participando/liga-api/internal/domain/standing"
	"github.com/participando/liga-api/internal/domain/team"
	"github.com/participando/liga-api/internal/domain/zone"
)

const (
	LeagueIDMasculina  = "liga_masculina"
	LeagueIDLifufe     = "lifufe"
	LeagueIDMundialito = "mundialito"
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:          LeagueIDMasculina,
			Name:        "Liga Masculina",
			Description: "Competición de fútbol masculino",
			Logo:        "/images/liga-masculina.svg",
		},
		{
			ID:          LeagueIDLifufe,
			Name:        "LIFUFE",
			Description: "Liga de Fútbol Femenino",
			Logo:        "/images/lifufe.svg",
		},
		{
			ID:          LeagueIDMundialito,
			Name:        "Mundialito",
			Description: "Competición internacional de fútbol",
			Logo:        "/images/mundialito.svg",
		},
	}
}

func SeedCategories() []category.Category {
	return []category.Category{
		{ID: "cat_liga_masc_primera", Name: "Primera División", LeagueID: LeagueIDMasculina, IsEditable: true},
		{ID: "cat_liga_masc_segunda", Name: "Segunda División", LeagueID: LeagueIDMasculina, IsEditable: true},

		// LIFUFE ships with a fixed category set.
		{ID: "cat_lifufe_sub10", Name: "Sub10", LeagueID: LeagueIDLifufe, IsEditable: false},
		{ID: "cat_lifufe_sub13", Name: "Sub13", LeagueID: LeagueIDLifufe, IsEditable: false},
		{ID: "cat_lifufe_sub16", Name: "Sub16", LeagueID: LeagueIDLifufe, IsEditable: false},

		{ID: "cat_mundialito_grupo_a", Name: "Grupo A", LeagueID: LeagueIDMundialito, IsEditable: true},
		{ID: "cat_mundialito_grupo_b", Name: "Grupo B", LeagueID: LeagueIDMundialito, IsEditable: true},
	}
}

func SeedZones() []zone.Zone {
	return []zone.Zone{
		{ID: "zone_liga_masc_primera_norte", Name: "Zona Norte", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera"},
		{ID: "zone_liga_masc_primera_sur", Name: "Zona Sur", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera"},
		{ID: "zone_liga_masc_segunda_unica", Name: "Zona Única", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_segunda"},
		{ID: "zone_lifufe_sub10_unica", Name: "Zona Única", LeagueID: LeagueIDLifufe, CategoryID: "cat_lifufe_sub10"},
		{ID: "zone_lifufe_sub13_unica", Name: "Zona Única", LeagueID: LeagueIDLifufe, CategoryID: "cat_lifufe_sub13"},
		{ID: "zone_lifufe_sub16_unica", Name: "Zona Única", LeagueID: LeagueIDLifufe, CategoryID: "cat_lifufe_sub16"},
		{ID: "zone_mundialito_grupo_a_unica", Name: "Zona Única", LeagueID: LeagueIDMundialito, CategoryID: "cat_mundialito_grupo_a"},
		{ID: "zone_mundialito_grupo_b_unica", Name: "Zona Única", LeagueID: LeagueIDMundialito, CategoryID: "cat_mundialito_grupo_b"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team_1", Name: "Taladro FC", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera", ZoneID: "zone_liga_masc_primera_norte"},
		{ID: "team_2", Name: "Crecer", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera", ZoneID: "zone_liga_masc_primera_norte"},
		{ID: "team_3", Name: "Independiente", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera", ZoneID: "zone_liga_masc_primera_norte"},
		{ID: "team_4", Name: "Atlético Nacional", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera", ZoneID: "zone_liga_masc_primera_norte"},
		{ID: "team_5", Name: "Estrella Roja", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera", ZoneID: "zone_liga_masc_primera_sur"},
		{ID: "team_6", Name: "Deportivo Sur", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera", ZoneID: "zone_liga_masc_primera_sur"},
		{ID: "team_7", Name: "Sporting Club", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera", ZoneID: "zone_liga_masc_primera_sur"},
		{ID: "team_8", Name: "Real FC", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera", ZoneID: "zone_liga_masc_primera_sur"},
		{ID: "team_9", Name: "Pequeñas Estrellas", LeagueID: LeagueIDLifufe, CategoryID: "cat_lifufe_sub10", ZoneID: "zone_lifufe_sub10_unica"},
		{ID: "team_10", Name: "Atletico Junior", LeagueID: LeagueIDLifufe, CategoryID: "cat_lifufe_sub10", ZoneID: "zone_lifufe_sub10_unica"},
		{ID: "team_11", Name: "Las Aguilas", LeagueID: LeagueIDLifufe, CategoryID: "cat_lifufe_sub10", ZoneID: "zone_lifufe_sub10_unica"},
		{ID: "team_12", Name: "Club Deportivo Tigres", LeagueID: LeagueIDLifufe, CategoryID: "cat_lifufe_sub10", ZoneID: "zone_lifufe_sub10_unica"},
		{ID: "team_13", Name: "Brasil", LeagueID: LeagueIDMundialito, CategoryID: "cat_mundialito_grupo_a", ZoneID: "zone_mundialito_grupo_a_unica"},
		{ID: "team_14", Name: "Argentina", LeagueID: LeagueIDMundialito, CategoryID: "cat_mundialito_grupo_a", ZoneID: "zone_mundialito_grupo_a_unica"},
		{ID: "team_15", Name: "Francia", LeagueID: LeagueIDMundialito, CategoryID: "cat_mundialito_grupo_a", ZoneID: "zone_mundialito_grupo_a_unica"},
		{ID: "team_16", Name: "Italia", LeagueID: LeagueIDMundialito, CategoryID: "cat_mundialito_grupo_a", ZoneID: "zone_mundialito_grupo_a_unica"},
	}
}

func SeedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{
			ID:         "fixture_1",
			Date:       "1° FECHA",
			MatchDate:  "29 DE MARZO",
			LeagueID:   LeagueIDMasculina,
			CategoryID: "cat_liga_masc_primera",
			ZoneID:     "zone_liga_masc_primera_norte",
			Matches: []fixture.Match{
				{ID: "match_1", FixtureID: "fixture_1", HomeTeamID: "team_1", AwayTeamID: "team_2", HomeScore: intPtr(2), AwayScore: intPtr(1), Played: true},
				{ID: "match_2", FixtureID: "fixture_1", HomeTeamID: "team_3", AwayTeamID: "team_4", HomeScore: intPtr(0), AwayScore: intPtr(0), Played: true},
			},
		},
		{
			ID:         "fixture_2",
			Date:       "2° FECHA",
			MatchDate:  "5 DE ABRIL",
			LeagueID:   LeagueIDMasculina,
			CategoryID: "cat_liga_masc_primera",
			ZoneID:     "zone_liga_masc_primera_norte",
			Matches: []fixture.Match{
				{ID: "match_3", FixtureID: "fixture_2", HomeTeamID: "team_2", AwayTeamID: "team_3", HomeScore: intPtr(1), AwayScore: intPtr(3), Played: true},
				{ID: "match_4", FixtureID: "fixture_2", HomeTeamID: "team_4", AwayTeamID: "team_1", Played: false},
			},
		},
		{
			ID:         "fixture_3",
			Date:       "1° FECHA",
			MatchDate:  "29 DE MARZO",
			LeagueID:   LeagueIDLifufe,
			CategoryID: "cat_lifufe_sub10",
			ZoneID:     "zone_lifufe_sub10_unica",
			Matches: []fixture.Match{
				{ID: "match_5", FixtureID: "fixture_3", HomeTeamID: "team_9", AwayTeamID: "team_10", HomeScore: intPtr(3), AwayScore: intPtr(1), Played: true},
				{ID: "match_6", FixtureID: "fixture_3", HomeTeamID: "team_11", AwayTeamID: "team_12", HomeScore: intPtr(2), AwayScore: intPtr(2), Played: true},
			},
		},
	}
}

func SeedStandings() []standing.Standing {
	return []standing.Standing{
		{ID: "standing_1", TeamID: "team_1", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera", ZoneID: "zone_liga_masc_primera_norte", Points: 3, Played: 1, Won: 1, GoalsFor: 2, GoalsAgainst: 1},
		{ID: "standing_2", TeamID: "team_2", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera", ZoneID: "zone_liga_masc_primera_norte", Played: 1, Lost: 1, GoalsFor: 1, GoalsAgainst: 2},
		{ID: "standing_3", TeamID: "team_3", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera", ZoneID: "zone_liga_masc_primera_norte", Points: 1, Played: 1, Drawn: 1},
		{ID: "standing_4", TeamID: "team_4", LeagueID: LeagueIDMasculina, CategoryID: "cat_liga_masc_primera", ZoneID: "zone_liga_masc_primera_norte", Points: 1, Played: 1, Drawn: 1},
		{ID: "standing_9", TeamID: "team_9", LeagueID: LeagueIDLifufe, CategoryID: "cat_lifufe_sub10", ZoneID: "zone_lifufe_sub10_unica", Points: 3, Played: 1, Won: 1, GoalsFor: 3, GoalsAgainst: 1},
		{ID: "standing_10", TeamID: "team_10", LeagueID: LeagueIDLifufe, CategoryID: "cat_lifufe_sub10", ZoneID: "zone_lifufe_sub10_unica", Played: 1, Lost: 1, GoalsFor: 1, GoalsAgainst: 3},
		{ID: "standing_11", TeamID: "team_11", LeagueID: LeagueIDLifufe, CategoryID: "cat_lifufe_sub10", ZoneID: "zone_lifufe_sub10_unica", Points: 1, Played: 1, Drawn: 1, GoalsFor: 2, GoalsAgainst: 2},
		{ID: "standing_12", TeamID: "team_12", LeagueID: LeagueIDLifufe, CategoryID: "cat_lifufe_sub10", ZoneID: "zone_lifufe_sub10_unica", Points: 1, Played: 1, Drawn: 1, GoalsFor: 2, GoalsAgainst: 2},
	}
}

// SeedCourses is empty on purpose: the course listing starts blank and is
// populated through the admin surface.
func SeedCourses() []course.Course {
	return nil
}

func intPtr(v int) *int {
	return &v
}
