package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/participando/liga-api/internal/domain/course"
	"github.com/participando/liga-api/internal/platform/id"
	"github.com/participando/liga-api/internal/platform/logging"
)

type CourseService struct {
	courseRepo course.Repository
	idGen      id.Generator
	logger     *logging.Logger
}

func NewCourseService(courseRepo course.Repository, idGen id.Generator, logger *logging.Logger) *CourseService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &CourseService{
		courseRepo: courseRepo,
		idGen:      idGen,
		logger:     logger,
	}
}

func (s *CourseService) List(ctx context.Context) ([]course.Course, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CourseService.List")
	defer span.End()

	items, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	return items, nil
}

type CreateCourseInput struct {
	Title       string
	Description string
	ImageURL    string
	Date        string
	Active      bool
}

func (s *CourseService) Create(ctx context.Context, input CreateCourseInput) (course.Course, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CourseService.Create")
	defer span.End()

	courseID, err := s.idGen.NewID("course")
	if err != nil {
		return course.Course{}, fmt.Errorf("generate course id: %w", err)
	}

	item := course.Course{
		ID:          courseID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Date:        strings.TrimSpace(input.Date),
		Active:      input.Active,
	}
	if err := item.Validate(); err != nil {
		return course.Course{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.courseRepo.Create(ctx, item); err != nil {
		return course.Course{}, fmt.Errorf("create course: %w", err)
	}

	s.logger.InfoContext(ctx, "course created", "course_id", item.ID)

	return item, nil
}

type UpdateCourseInput struct {
	Title       *string
	Description *string
	ImageURL    *string
	Date        *string
	Active      *bool
}

func (s *CourseService) Update(ctx context.Context, courseID string, input UpdateCourseInput) (course.Course, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CourseService.Update")
	defer span.End()

	item, exists, err := s.courseRepo.GetByID(ctx, strings.TrimSpace(courseID))
	if err != nil {
		return course.Course{}, fmt.Errorf("get course: %w", err)
	}
	if !exists {
		return course.Course{}, fmt.Errorf("%w: course=%s", ErrNotFound, courseID)
	}

	if input.Title != nil {
		item.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		item.Description = strings.TrimSpace(*input.Description)
	}
	if input.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.Date != nil {
		item.Date = strings.TrimSpace(*input.Date)
	}
	if input.Active != nil {
		item.Active = *input.Active
	}
	if err := item.Validate(); err != nil {
		return course.Course{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.courseRepo.Update(ctx, item)
	if err != nil {
		return course.Course{}, fmt.Errorf("update course: %w", err)
	}
	if !updated {
		return course.Course{}, fmt.Errorf("%w: course=%s", ErrNotFound, courseID)
	}

	return item, nil
}

func (s *CourseService) Delete(ctx context.Context, courseID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CourseService.Delete")
	defer span.End()

	deleted, err := s.courseRepo.Delete(ctx, strings.TrimSpace(courseID))
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: course=%s", ErrNotFound, courseID)
	}

	return nil
}
