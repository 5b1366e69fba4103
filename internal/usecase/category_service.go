package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/participando/liga-api/internal/domain/category"
	"github.com/participando/liga-api/internal/domain/fixture"
	"github.com/participando/liga-api/internal/domain/league"
	"github.com/participando/liga-api/internal/domain/standing"
	"github.com/participando/liga-api/internal/domain/team"
	"github.com/participando/liga-api/internal/domain/zone"
	"github.com/participando/liga-api/internal/platform/id"
	"github.com/participando/liga-api/internal/platform/logging"
)

type CategoryService struct {
	leagueRepo   league.Repository
	categoryRepo category.Repository
	zoneRepo     zone.Repository
	teamRepo     team.Repository
	fixtureRepo  fixture.Repository
	standingRepo standing.Repository
	idGen        id.Generator
	logger       *logging.Logger
}

func NewCategoryService(
	leagueRepo league.Repository,
	categoryRepo category.Repository,
	zoneRepo zone.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	standingRepo standing.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *CategoryService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &CategoryService{
		leagueRepo:   leagueRepo,
		categoryRepo: categoryRepo,
		zoneRepo:     zoneRepo,
		teamRepo:     teamRepo,
		fixtureRepo:  fixtureRepo,
		standingRepo: standingRepo,
		idGen:        idGen,
		logger:       logger,
	}
}

type CreateCategoryInput struct {
	Name       string
	LeagueID   string
	IsEditable bool
}

func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (category.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.Create")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.LeagueID = strings.TrimSpace(input.LeagueID)

	_, exists, err := s.leagueRepo.GetByID(ctx, input.LeagueID)
	if err != nil {
		return category.Category{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return category.Category{}, fmt.Errorf("%w: league=%s", ErrNotFound, input.LeagueID)
	}

	categoryID, err := s.idGen.NewID("cat")
	if err != nil {
		return category.Category{}, fmt.Errorf("generate category id: %w", err)
	}

	item := category.Category{
		ID:         categoryID,
		Name:       input.Name,
		LeagueID:   input.LeagueID,
		IsEditable: input.IsEditable,
	}
	if err := item.Validate(); err != nil {
		return category.Category{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.categoryRepo.Create(ctx, item); err != nil {
		return category.Category{}, fmt.Errorf("create category: %w", err)
	}

	s.logger.InfoContext(ctx, "category created", "category_id", item.ID, "league_id", item.LeagueID)

	return item, nil
}

type UpdateCategoryInput struct {
	Name       *string
	IsEditable *bool
}

func (s *CategoryService) Update(ctx context.Context, categoryID string, input UpdateCategoryInput) (category.Category, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.Update")
	defer span.End()

	item, exists, err := s.categoryRepo.GetByID(ctx, strings.TrimSpace(categoryID))
	if err != nil {
		return category.Category{}, fmt.Errorf("get category: %w", err)
	}
	if !exists {
		return category.Category{}, fmt.Errorf("%w: category=%s", ErrNotFound, categoryID)
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.IsEditable != nil {
		item.IsEditable = *input.IsEditable
	}
	if err := item.Validate(); err != nil {
		return category.Category{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.categoryRepo.Update(ctx, item)
	if err != nil {
		return category.Category{}, fmt.Errorf("update category: %w", err)
	}
	if !updated {
		return category.Category{}, fmt.Errorf("%w: category=%s", ErrNotFound, categoryID)
	}

	return item, nil
}

// Delete removes the category and everything underneath it: every zone in the
// category cascades to its teams, fixtures and standings. Categories from a
// league's predefined set (IsEditable=false) cannot be removed.
func (s *CategoryService) Delete(ctx context.Context, categoryID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.Delete")
	defer span.End()

	categoryID = strings.TrimSpace(categoryID)
	item, exists, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: category=%s", ErrNotFound, categoryID)
	}
	if !item.IsEditable {
		return fmt.Errorf("%w: category %q belongs to a fixed set and cannot be removed", ErrInvalidInput, item.Name)
	}

	zones, err := s.zoneRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("list zones by category: %w", err)
	}
	for _, z := range zones {
		if err := deleteZoneCascade(ctx, z.ID, s.zoneRepo, s.teamRepo, s.fixtureRepo, s.standingRepo); err != nil {
			return err
		}
	}

	deleted, err := s.categoryRepo.Delete(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: category=%s", ErrNotFound, categoryID)
	}

	s.logger.InfoContext(ctx, "category deleted", "category_id", categoryID, "zones_removed", len(zones))

	return nil
}
