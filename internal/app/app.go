package app

import (
	"fmt"
	"net/http"

	"github.com/participando/liga-api/internal/config"
	"github.com/participando/liga-api/internal/infrastructure/repository/memory"
	"github.com/participando/liga-api/internal/interfaces/httpapi"
	idgen "github.com/participando/liga-api/internal/platform/id"
	"github.com/participando/liga-api/internal/platform/logging"
	"github.com/participando/liga-api/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	categoryRepo := memory.NewCategoryRepository(memory.SeedCategories())
	zoneRepo := memory.NewZoneRepository(memory.SeedZones())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	fixtureRepo := memory.NewFixtureRepository(memory.SeedFixtures())
	standingRepo := memory.NewStandingRepository(memory.SeedStandings())
	courseRepo := memory.NewCourseRepository(memory.SeedCourses())

	idGen := idgen.NewTimestampGenerator()

	leagueSvc := usecase.NewLeagueService(leagueRepo, categoryRepo)
	categorySvc := usecase.NewCategoryService(leagueRepo, categoryRepo, zoneRepo, teamRepo, fixtureRepo, standingRepo, idGen, logger)
	zoneSvc := usecase.NewZoneService(categoryRepo, zoneRepo, teamRepo, fixtureRepo, standingRepo, idGen, logger)
	teamSvc := usecase.NewTeamService(zoneRepo, teamRepo, fixtureRepo, standingRepo, idGen, logger)
	fixtureSvc := usecase.NewFixtureService(zoneRepo, fixtureRepo, standingRepo, idGen, logger)
	standingSvc := usecase.NewStandingService(zoneRepo, teamRepo, standingRepo, idGen, logger)
	courseSvc := usecase.NewCourseService(courseRepo, idGen, logger)
	authSvc := usecase.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret, cfg.TokenTTL, logger)

	handler := httpapi.NewHandler(
		leagueSvc,
		categorySvc,
		zoneSvc,
		teamSvc,
		fixtureSvc,
		standingSvc,
		courseSvc,
		authSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, authSvc, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
