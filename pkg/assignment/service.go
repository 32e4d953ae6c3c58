package assignment

import (
	"context"
	"fmt"
)

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Create(ctx context.Context, assignment Assignment) (Assignment, error) {
	id, err := s.repo.Store(ctx, assignment)
	if err != nil {
		return Assignment{}, fmt.Errorf("failed to store assignment: %w", err)
	}
	assignment.Id = id
	return assignment, nil
}

// GetCourseAssignments implements Provider. Assignments come back in due-date
// order; the userId is part of the provider contract for per-user schedules,
// which all share the course-level dates for now.
func (s *ServiceImpl) GetCourseAssignments(ctx context.Context, courseId int, userId int) ([]Assignment, error) {
	return s.repo.GetForCourse(ctx, courseId)
}
