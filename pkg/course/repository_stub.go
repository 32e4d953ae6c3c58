package course

import (
	"context"
)

type RepositoryStub struct {
	nextId int
	data   map[string]Course
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		nextId: 1,
		data:   map[string]Course{},
	}
}

func (s *RepositoryStub) Store(ctx context.Context, course Course) (int, error) {
	course.Id = s.nextId
	s.data[course.Key] = course
	s.nextId++
	return course.Id, nil
}

func (s *RepositoryStub) GetByKey(ctx context.Context, courseKey string) (Course, error) {
	course, ok := s.data[courseKey]
	if !ok {
		return Course{}, ErrCourseNotFound
	}
	return course, nil
}
