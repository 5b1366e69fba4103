package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/participando/liga-api/internal/domain/category"
	"github.com/participando/liga-api/internal/domain/course"
	"github.com/participando/liga-api/internal/domain/fixture"
	"github.com/participando/liga-api/internal/domain/league"
	"github.com/participando/liga-api/internal/domain/standing"
	"github.com/participando/liga-api/internal/domain/team"
	"github.com/participando/liga-api/internal/domain/zone"
	"github.com/participando/liga-api/internal/platform/logging"
	"github.com/participando/liga-api/internal/usecase"
)

type Handler struct {
	leagueService   *usecase.LeagueService
	categoryService *usecase.CategoryService
	zoneService     *usecase.ZoneService
	teamService     *usecase.TeamService
	fixtureService  *usecase.FixtureService
	standingService *usecase.StandingService
	courseService   *usecase.CourseService
	authService     *usecase.AuthService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	categoryService *usecase.CategoryService,
	zoneService *usecase.ZoneService,
	teamService *usecase.TeamService,
	fixtureService *usecase.FixtureService,
	standingService *usecase.StandingService,
	courseService *usecase.CourseService,
	authService *usecase.AuthService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		leagueService:   leagueService,
		categoryService: categoryService,
		zoneService:     zoneService,
		teamService:     teamService,
		fixtureService:  fixtureService,
		standingService: standingService,
		courseService:   courseService,
		authService:     authService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type leagueDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

type categoryDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LeagueID   string `json:"leagueId"`
	IsEditable bool   `json:"isEditable"`
}

type zoneDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LeagueID   string `json:"leagueId"`
	CategoryID string `json:"categoryId"`
}

type teamDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Logo       string `json:"logo,omitempty"`
	LeagueID   string `json:"leagueId"`
	CategoryID string `json:"categoryId"`
	ZoneID     string `json:"zoneId"`
}

type matchDTO struct {
	ID         string `json:"id"`
	FixtureID  string `json:"fixtureId"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
	HomeScore  *int   `json:"homeScore"`
	AwayScore  *int   `json:"awayScore"`
	Played     bool   `json:"played"`
}

type fixtureDTO struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"`
	MatchDate  string     `json:"matchDate"`
	LeagueID   string     `json:"leagueId"`
	CategoryID string     `json:"categoryId"`
	ZoneID     string     `json:"zoneId"`
	Matches    []matchDTO `json:"matches"`
}

type standingDTO struct {
	ID             string `json:"id"`
	TeamID         string `json:"teamId"`
	LeagueID       string `json:"leagueId"`
	CategoryID     string `json:"categoryId"`
	ZoneID         string `json:"zoneId"`
	Points         int    `json:"points"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
}

type courseDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Date        string `json:"date"`
	Active      bool   `json:"active"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Logo:        v.Logo,
	}
}

func categoryToDTO(v category.Category) categoryDTO {
	return categoryDTO{
		ID:         v.ID,
		Name:       v.Name,
		LeagueID:   v.LeagueID,
		IsEditable: v.IsEditable,
	}
}

func zoneToDTO(v zone.Zone) zoneDTO {
	return zoneDTO{
		ID:         v.ID,
		Name:       v.Name,
		LeagueID:   v.LeagueID,
		CategoryID: v.CategoryID,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:         v.ID,
		Name:       v.Name,
		Logo:       v.Logo,
		LeagueID:   v.LeagueID,
		CategoryID: v.CategoryID,
		ZoneID:     v.ZoneID,
	}
}

func matchToDTO(v fixture.Match) matchDTO {
	return matchDTO{
		ID:         v.ID,
		FixtureID:  v.FixtureID,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
		Played:     v.Played,
	}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	matches := make([]matchDTO, 0, len(v.Matches))
	for _, m := range v.Matches {
		matches = append(matches, matchToDTO(m))
	}

	return fixtureDTO{
		ID:         v.ID,
		Date:       v.Date,
		MatchDate:  v.MatchDate,
		LeagueID:   v.LeagueID,
		CategoryID: v.CategoryID,
		ZoneID:     v.ZoneID,
		Matches:    matches,
	}
}

func standingToDTO(v standing.Standing) standingDTO {
	return standingDTO{
		ID:             v.ID,
		TeamID:         v.TeamID,
		LeagueID:       v.LeagueID,
		CategoryID:     v.CategoryID,
		ZoneID:         v.ZoneID,
		Points:         v.Points,
		Played:         v.Played,
		Won:            v.Won,
		Drawn:          v.Drawn,
		Lost:           v.Lost,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference(),
	}
}

func courseToDTO(v course.Course) courseDTO {
	return courseDTO{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		ImageURL:    v.ImageURL,
		Date:        v.Date,
		Active:      v.Active,
	}
}
