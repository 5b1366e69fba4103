package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/participando/liga-api/internal/usecase"
)

type createCourseRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,max=500"`
	Date        string `json:"date" validate:"omitempty,max=100"`
	Active      bool   `json:"active"`
}

type updateCourseRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,max=500"`
	Date        *string `json:"date" validate:"omitempty,max=100"`
	Active      *bool   `json:"active"`
}

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCourses")
	defer span.End()

	courses, err := h.courseService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list courses failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]courseDTO, 0, len(courses))
	for _, c := range courses {
		items = append(items, courseToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCourse")
	defer span.End()

	var req createCourseRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.courseService.Create(ctx, usecase.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Date:        req.Date,
		Active:      req.Active,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create course failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, courseToDTO(item))
}

func (h *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCourse")
	defer span.End()

	courseID := strings.TrimSpace(r.PathValue("courseID"))

	var req updateCourseRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.courseService.Update(ctx, courseID, usecase.UpdateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Date:        req.Date,
		Active:      req.Active,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update course failed", "course_id", courseID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, courseToDTO(item))
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCourse")
	defer span.End()

	courseID := strings.TrimSpace(r.PathValue("courseID"))
	if err := h.courseService.Delete(ctx, courseID); err != nil {
		h.logger.WarnContext(ctx, "delete course failed", "course_id", courseID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}
