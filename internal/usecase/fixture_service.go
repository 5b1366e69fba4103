package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/participando/liga-api/internal/domain/fixture"
	"github.com/participando/liga-api/internal/domain/standing"
	"github.com/participando/liga-api/internal/domain/zone"
	"github.com/participando/liga-api/internal/platform/id"
	"github.com/participando/liga-api/internal/platform/logging"
)

type FixtureService struct {
	zoneRepo     zone.Repository
	fixtureRepo  fixture.Repository
	standingRepo standing.Repository
	idGen        id.Generator
	logger       *logging.Logger
}

func NewFixtureService(
	zoneRepo zone.Repository,
	fixtureRepo fixture.Repository,
	standingRepo standing.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *FixtureService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &FixtureService{
		zoneRepo:     zoneRepo,
		fixtureRepo:  fixtureRepo,
		standingRepo: standingRepo,
		idGen:        idGen,
		logger:       logger,
	}
}

func (s *FixtureService) ListByZone(ctx context.Context, zoneID string) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListByZone")
	defer span.End()

	zoneID = strings.TrimSpace(zoneID)
	if zoneID == "" {
		return []fixture.Fixture{}, nil
	}

	_, exists, err := s.zoneRepo.GetByID(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("get zone: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: zone=%s", ErrNotFound, zoneID)
	}

	items, err := s.fixtureRepo.ListByZone(ctx, zoneID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by zone: %w", err)
	}

	return items, nil
}

type CreateMatchInput struct {
	HomeTeamID string
	AwayTeamID string
}

type CreateFixtureInput struct {
	Date      string
	MatchDate string
	ZoneID    string
	Matches   []CreateMatchInput
}

func (s *FixtureService) Create(ctx context.Context, input CreateFixtureInput) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Create")
	defer span.End()

	input.ZoneID = strings.TrimSpace(input.ZoneID)
	z, exists, err := s.zoneRepo.GetByID(ctx, input.ZoneID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get zone: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: zone=%s", ErrNotFound, input.ZoneID)
	}

	fixtureID, err := s.idGen.NewID("fixture")
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("generate fixture id: %w", err)
	}

	matches := make([]fixture.Match, 0, len(input.Matches))
	for _, m := range input.Matches {
		matchID, err := s.idGen.NewID("match")
		if err != nil {
			return fixture.Fixture{}, fmt.Errorf("generate match id: %w", err)
		}
		matches = append(matches, fixture.Match{
			ID:         matchID,
			FixtureID:  fixtureID,
			HomeTeamID: strings.TrimSpace(m.HomeTeamID),
			AwayTeamID: strings.TrimSpace(m.AwayTeamID),
		})
	}

	item := fixture.Fixture{
		ID:         fixtureID,
		Date:       strings.TrimSpace(input.Date),
		MatchDate:  strings.TrimSpace(input.MatchDate),
		LeagueID:   z.LeagueID,
		CategoryID: z.CategoryID,
		ZoneID:     z.ID,
		Matches:    matches,
	}
	if err := item.Validate(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.fixtureRepo.Create(ctx, item); err != nil {
		return fixture.Fixture{}, fmt.Errorf("create fixture: %w", err)
	}

	s.logger.InfoContext(ctx, "fixture created", "fixture_id", item.ID, "zone_id", item.ZoneID, "matches", len(matches))

	return item, nil
}

type UpdateFixtureInput struct {
	Date      *string
	MatchDate *string
}

func (s *FixtureService) Update(ctx context.Context, fixtureID string, input UpdateFixtureInput) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Update")
	defer span.End()

	item, exists, err := s.fixtureRepo.GetByID(ctx, strings.TrimSpace(fixtureID))
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}

	if input.Date != nil {
		item.Date = strings.TrimSpace(*input.Date)
	}
	if input.MatchDate != nil {
		item.MatchDate = strings.TrimSpace(*input.MatchDate)
	}
	if err := item.Validate(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.fixtureRepo.Update(ctx, item)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("update fixture: %w", err)
	}
	if !updated {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}

	return item, nil
}

func (s *FixtureService) Delete(ctx context.Context, fixtureID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Delete")
	defer span.End()

	deleted, err := s.fixtureRepo.Delete(ctx, strings.TrimSpace(fixtureID))
	if err != nil {
		return fmt.Errorf("delete fixture: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}

	return nil
}

// MatchResult reports what a result entry actually changed. StandingsApplied
// is false when either team has no standings row in the fixture's zone; the
// score is still recorded in that case.
type MatchResult struct {
	Match            fixture.Match
	StandingsApplied bool
}

// UpdateMatchResult records the score on the match and folds it into both
// teams' standings rows. Scores of 0 are valid. Re-entering a result for an
// already played match first reverses the previous contribution, so a
// correction never double-counts.
func (s *FixtureService) UpdateMatchResult(ctx context.Context, matchID string, homeScore, awayScore int) (MatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.UpdateMatchResult")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if homeScore < 0 || awayScore < 0 {
		return MatchResult{}, fmt.Errorf("%w: scores must be non-negative", ErrInvalidInput)
	}

	owner, match, exists, err := s.fixtureRepo.FindByMatch(ctx, matchID)
	if err != nil {
		return MatchResult{}, fmt.Errorf("find match: %w", err)
	}
	if !exists {
		return MatchResult{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	prior := match
	match.HomeScore = &homeScore
	match.AwayScore = &awayScore
	match.Played = true

	updated, err := s.fixtureRepo.UpdateMatch(ctx, match)
	if err != nil {
		return MatchResult{}, fmt.Errorf("update match: %w", err)
	}
	if !updated {
		return MatchResult{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	applied, err := s.reconcile(ctx, owner, prior, homeScore, awayScore)
	if err != nil {
		return MatchResult{}, err
	}

	s.logger.InfoContext(ctx, "match result recorded",
		"match_id", matchID,
		"home_score", homeScore,
		"away_score", awayScore,
		"standings_applied", applied,
	)

	return MatchResult{Match: match, StandingsApplied: applied}, nil
}

// reconcile updates the two standings rows keyed by the fixture's zone. Both
// rows are replaced in one store operation so readers never observe a
// half-applied result.
func (s *FixtureService) reconcile(ctx context.Context, owner fixture.Fixture, prior fixture.Match, homeScore, awayScore int) (bool, error) {
	home, homeOK, err := s.standingRepo.GetByTeamAndZone(ctx, prior.HomeTeamID, owner.ZoneID)
	if err != nil {
		return false, fmt.Errorf("get home standing: %w", err)
	}
	away, awayOK, err := s.standingRepo.GetByTeamAndZone(ctx, prior.AwayTeamID, owner.ZoneID)
	if err != nil {
		return false, fmt.Errorf("get away standing: %w", err)
	}
	if !homeOK || !awayOK {
		s.logger.WarnContext(ctx, "standings row missing, result not reconciled",
			"match_id", prior.ID,
			"zone_id", owner.ZoneID,
			"home_found", homeOK,
			"away_found", awayOK,
		)
		return false, nil
	}

	if prior.Played && prior.HomeScore != nil && prior.AwayScore != nil {
		standing.ReverseResult(&home, &away, *prior.HomeScore, *prior.AwayScore)
	}
	standing.ApplyResult(&home, &away, homeScore, awayScore)

	if err := s.standingRepo.UpdatePair(ctx, home, away); err != nil {
		return false, fmt.Errorf("update standings pair: %w", err)
	}

	return true, nil
}
