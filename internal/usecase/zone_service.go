package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/participando/liga-api/internal/domain/category"
	"github.com/participando/liga-api/internal/domain/fixture"
	"github.com/participando/liga-api/internal/domain/standing"
	"github.com/participando/liga-api/internal/domain/team"
	"github.com/participando/liga-api/internal/domain/zone"
	"github.com/participando/liga-api/internal/platform/id"
	"github.com/participando/liga-api/internal/platform/logging"
)

type ZoneService struct {
	categoryRepo category.Repository
	zoneRepo     zone.Repository
	teamRepo     team.Repository
	fixtureRepo  fixture.Repository
	standingRepo standing.Repository
	idGen        id.Generator
	logger       *logging.Logger
}

func NewZoneService(
	categoryRepo category.Repository,
	zoneRepo zone.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	standingRepo standing.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *ZoneService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &ZoneService{
		categoryRepo: categoryRepo,
		zoneRepo:     zoneRepo,
		teamRepo:     teamRepo,
		fixtureRepo:  fixtureRepo,
		standingRepo: standingRepo,
		idGen:        idGen,
		logger:       logger,
	}
}

func (s *ZoneService) ListByCategory(ctx context.Context, categoryID string) ([]zone.Zone, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ZoneService.ListByCategory")
	defer span.End()

	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return []zone.Zone{}, nil
	}

	_, exists, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: category=%s", ErrNotFound, categoryID)
	}

	items, err := s.zoneRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list zones by category: %w", err)
	}

	return items, nil
}

type CreateZoneInput struct {
	Name       string
	CategoryID string
}

// Create registers a zone under the category; the zone inherits the
// category's league so the (league, category, zone) triple stays consistent.
func (s *ZoneService) Create(ctx context.Context, input CreateZoneInput) (zone.Zone, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ZoneService.Create")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	input.CategoryID = strings.TrimSpace(input.CategoryID)

	cat, exists, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return zone.Zone{}, fmt.Errorf("get category: %w", err)
	}
	if !exists {
		return zone.Zone{}, fmt.Errorf("%w: category=%s", ErrNotFound, input.CategoryID)
	}

	zoneID, err := s.idGen.NewID("zone")
	if err != nil {
		return zone.Zone{}, fmt.Errorf("generate zone id: %w", err)
	}

	item := zone.Zone{
		ID:         zoneID,
		Name:       input.Name,
		LeagueID:   cat.LeagueID,
		CategoryID: cat.ID,
	}
	if err := item.Validate(); err != nil {
		return zone.Zone{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.zoneRepo.Create(ctx, item); err != nil {
		return zone.Zone{}, fmt.Errorf("create zone: %w", err)
	}

	s.logger.InfoContext(ctx, "zone created", "zone_id", item.ID, "category_id", item.CategoryID)

	return item, nil
}

type UpdateZoneInput struct {
	Name *string
}

func (s *ZoneService) Update(ctx context.Context, zoneID string, input UpdateZoneInput) (zone.Zone, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ZoneService.Update")
	defer span.End()

	item, exists, err := s.zoneRepo.GetByID(ctx, strings.TrimSpace(zoneID))
	if err != nil {
		return zone.Zone{}, fmt.Errorf("get zone: %w", err)
	}
	if !exists {
		return zone.Zone{}, fmt.Errorf("%w: zone=%s", ErrNotFound, zoneID)
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if err := item.Validate(); err != nil {
		return zone.Zone{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.zoneRepo.Update(ctx, item)
	if err != nil {
		return zone.Zone{}, fmt.Errorf("update zone: %w", err)
	}
	if !updated {
		return zone.Zone{}, fmt.Errorf("%w: zone=%s", ErrNotFound, zoneID)
	}

	return item, nil
}

// Delete removes the zone together with its teams, fixtures and standings.
// Other zones are untouched.
func (s *ZoneService) Delete(ctx context.Context, zoneID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ZoneService.Delete")
	defer span.End()

	zoneID = strings.TrimSpace(zoneID)
	_, exists, err := s.zoneRepo.GetByID(ctx, zoneID)
	if err != nil {
		return fmt.Errorf("get zone: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: zone=%s", ErrNotFound, zoneID)
	}

	if err := deleteZoneCascade(ctx, zoneID, s.zoneRepo, s.teamRepo, s.fixtureRepo, s.standingRepo); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "zone deleted", "zone_id", zoneID)

	return nil
}

// deleteZoneCascade removes everything keyed to the zone, then the zone
// itself. Shared by zone deletion and the category cascade.
func deleteZoneCascade(
	ctx context.Context,
	zoneID string,
	zoneRepo zone.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	standingRepo standing.Repository,
) error {
	if _, err := teamRepo.DeleteByZone(ctx, zoneID); err != nil {
		return fmt.Errorf("delete teams by zone: %w", err)
	}
	if _, err := fixtureRepo.DeleteByZone(ctx, zoneID); err != nil {
		return fmt.Errorf("delete fixtures by zone: %w", err)
	}
	if _, err := standingRepo.DeleteByZone(ctx, zoneID); err != nil {
		return fmt.Errorf("delete standings by zone: %w", err)
	}
	if _, err := zoneRepo.Delete(ctx, zoneID); err != nil {
		return fmt.Errorf("delete zone: %w", err)
	}

	return nil
}
