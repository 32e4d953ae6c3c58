package course

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrCourseNotFound = errors.New("course not found")

type Repository interface {
	Store(ctx context.Context, course Course) (int, error)
	GetByKey(ctx context.Context, courseKey string) (Course, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, course Course) (int, error) {
	query := `INSERT INTO course (course_key, display_name, start_date) VALUES (?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, course.Key, course.DisplayName, course.StartDate.UnixMilli())
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not read inserted id: %v", err)
		log.Error(err)
		return 0, err
	}
	return int(id), nil
}

func (r *RepositoryImpl) GetByKey(ctx context.Context, courseKey string) (Course, error) {
	query := `SELECT id, course_key, display_name, start_date FROM course WHERE course_key = ?`

	var course Course
	var startDateMillis int64
	err := r.db.QueryRowContext(ctx, query, courseKey).
		Scan(&course.Id, &course.Key, &course.DisplayName, &startDateMillis)
	if errors.Is(err, sql.ErrNoRows) {
		return Course{}, ErrCourseNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query course: %w", err)
		log.Error(err)
		return Course{}, err
	}
	course.StartDate = time.UnixMilli(startDateMillis).UTC()
	return course, nil
}
