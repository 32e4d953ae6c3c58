package assignment

import (
	"context"
	"time"
)

// Assignment is a course work item with a due date and a block key
// identifying its location within the course content.
type Assignment struct {
	Id       int
	CourseId int
	Title    string
	DueDate  time.Time
	BlockKey string
}

// Provider resolves the ordered assignment list for a course and user.
type Provider interface {
	GetCourseAssignments(ctx context.Context, courseId int, userId int) ([]Assignment, error)
}
