package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/participando/liga-api/internal/domain/category"
	"github.com/participando/liga-api/internal/domain/league"
)

type LeagueService struct {
	leagueRepo   league.Repository
	categoryRepo category.Repository
}

func NewLeagueService(leagueRepo league.Repository, categoryRepo category.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo:   leagueRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return item, nil
}

// ListCategoriesByLeague returns the league's categories in store insertion
// order. An empty league id yields an empty result rather than an error, which
// matches how the browse screens probe before a league is picked.
func (s *LeagueService) ListCategoriesByLeague(ctx context.Context, leagueID string) ([]category.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListCategoriesByLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return []category.Category{}, nil
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	items, err := s.categoryRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list categories by league: %w", err)
	}

	return items, nil
}
