package assignment

import (
	"context"
	"sort"
)

type RepositoryStub struct {
	nextId int
	data   []Assignment
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{nextId: 1}
}

func (s *RepositoryStub) Store(ctx context.Context, assignment Assignment) (int, error) {
	assignment.Id = s.nextId
	s.nextId++
	s.data = append(s.data, assignment)
	return assignment.Id, nil
}

func (s *RepositoryStub) GetForCourse(ctx context.Context, courseId int) ([]Assignment, error) {
	assignments := make([]Assignment, 0, len(s.data))
	for _, assignment := range s.data {
		if assignment.CourseId == courseId {
			assignments = append(assignments, assignment)
		}
	}
	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].DueDate.Before(assignments[j].DueDate)
	})
	return assignments, nil
}
