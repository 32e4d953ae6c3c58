package course

import (
	"context"
	"fmt"
)

type Service interface {
	Create(ctx context.Context, course Course) (Course, error)
	GetByKey(ctx context.Context, courseKey string) (Course, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Create(ctx context.Context, course Course) (Course, error) {
	id, err := s.repo.Store(ctx, course)
	if err != nil {
		return Course{}, fmt.Errorf("failed to store course: %w", err)
	}
	course.Id = id
	return course, nil
}

func (s *ServiceImpl) GetByKey(ctx context.Context, courseKey string) (Course, error) {
	return s.repo.GetByKey(ctx, courseKey)
}
