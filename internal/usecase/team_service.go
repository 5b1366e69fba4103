package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/participando/liga-api/internal/domain/fixture"
	"github.com/participando/liga-api/internal/domain/standing"
	"github.com/participando/liga-api/internal/domain/team"
	"github.com/participando/liga-api/internal/domain/zone"
	"github.com/participando/liga-api/internal/platform/id"
	"github.com/participando/liga-api/internal/platform/logging"
)

type TeamService struct {
	zoneRepo     zone.Repository
	teamRepo     team.Repository
	fixtureRepo  fixture.Repository
	standingRepo standing.Repository
	idGen        id.Generator
	logger       *logging.Logger
}

func NewTeamService(
	zoneRepo zone.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	standingRepo standing.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &TeamService{
		zoneRepo:     zoneRepo,
		teamRepo:     teamRepo,
		fixtureRepo:  fixtureRepo,
		standingRepo: standingRepo,
		idGen:        idGen,
		logger:       logger,
	}
}

func (s *TeamService) ListByZone(ctx context.Context, zoneID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByZone")
	defer span.End()

	zoneID = strings.TrimSpace(zoneID)
	if zoneID == "" {
		return []team.Team{}, nil
	}

	_, exists, err := s.zoneRepo.GetByID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("get zone: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: zone=%s", ErrNotFound, zoneID)
	}

	items, err := s.teamRepo.ListByZone(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("list teams by zone: %w", err)
	}

	return items, nil
}

type CreateTeamInput struct {
	Name   string
	Logo   string
	ZoneID string
}

// Create registers a team in the zone and opens its zeroed standings row. The
// team inherits league and category from the zone.
func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.ZoneID = strings.TrimSpace(input.ZoneID)

	z, exists, err := s.zoneRepo.GetByID(ctx, input.ZoneID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get zone: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: zone=%s", ErrNotFound, input.ZoneID)
	}

	teamID, err := s.idGen.NewID("team")
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:         teamID,
		Name:       input.Name,
		Logo:       strings.TrimSpace(input.Logo),
		LeagueID:   z.LeagueID,
		CategoryID: z.CategoryID,
		ZoneID:     z.ID,
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	standingID, err := s.idGen.NewID("standing")
	if err != nil {
		return team.Team{}, fmt.Errorf("generate standing id: %w", err)
	}
	if _, err := s.standingRepo.Upsert(ctx, standing.Standing{
		ID:         standingID,
		TeamID:     item.ID,
		LeagueID:   item.LeagueID,
		CategoryID: item.CategoryID,
		ZoneID:     item.ZoneID,
	}); err != nil {
		return team.Team{}, fmt.Errorf("open standing row: %w", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", item.ID, "zone_id", item.ZoneID)

	return item, nil
}

type UpdateTeamInput struct {
	Name *string
	Logo *string
}

func (s *TeamService) Update(ctx context.Context, teamID string, input UpdateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	item, exists, err := s.teamRepo.GetByID(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Logo != nil {
		item.Logo = strings.TrimSpace(*input.Logo)
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.teamRepo.Update(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !updated {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

// Delete removes the team, its standings row, and every match it appears in.
// Enclosing fixtures stay; only the team's matches are pruned from them.
func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	deleted, err := s.teamRepo.Delete(ctx, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	if _, err := s.standingRepo.DeleteByTeam(ctx, teamID); err != nil {
		return fmt.Errorf("delete standings by team: %w", err)
	}
	pruned, err := s.fixtureRepo.RemoveTeamMatches(ctx, teamID)
	if err != nil {
		return fmt.Errorf("remove team matches: %w", err)
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", teamID, "matches_pruned", pruned)

	return nil
}
