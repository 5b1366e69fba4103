package memory

import (
	"context"
	"sync"

	"github.com/participando/liga-api/internal/domain/course"
)

type CourseRepository struct {
	mu     sync.RWMutex
	items  map[string]course.Course
	orders []string
}

func NewCourseRepository(courses []course.Course) *CourseRepository {
	items := make(map[string]course.Course, len(courses))
	orders := make([]string, 0, len(courses))

	for _, c := range courses {
		items[c.ID] = c
		orders = append(orders, c.ID)
	}

	return &CourseRepository{
		items:  items,
		orders: orders,
	}
}

func (r *CourseRepository) List(_ context.Context) ([]course.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]course.Course, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *CourseRepository) GetByID(_ context.Context, courseID string) (course.Course, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[courseID]
	return item, ok, nil
}

func (r *CourseRepository) Create(_ context.Context, item course.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item

	return nil
}

func (r *CourseRepository) Update(_ context.Context, item course.Course) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return false, nil
	}
	r.items[item.ID] = item

	return true, nil
}

func (r *CourseRepository) Delete(_ context.Context, courseID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[courseID]; !exists {
		return false, nil
	}
	delete(r.items, courseID)
	r.orders = removeID(r.orders, courseID)

	return true, nil
}
