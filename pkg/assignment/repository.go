package assignment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, assignment Assignment) (int, error)
	GetForCourse(ctx context.Context, courseId int) ([]Assignment, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, assignment Assignment) (int, error) {
	query := `INSERT INTO assignment (course_id, title, block_key, due_date) VALUES (?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return 0, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, assignment.CourseId, assignment.Title, assignment.BlockKey, assignment.DueDate.UnixMilli())
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

func (r *RepositoryImpl) GetForCourse(ctx context.Context, courseId int) ([]Assignment, error) {
	query := `SELECT id, course_id, title, block_key, due_date
              FROM assignment
              WHERE course_id = ?
              ORDER BY due_date`

	rows, err := r.db.QueryContext(ctx, query, courseId)
	if err != nil {
		err := fmt.Errorf("could not query assignments: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	assignments := make([]Assignment, 0, 10)
	for rows.Next() {
		var assignment Assignment
		var dueDateMillis int64
		if err := rows.Scan(&assignment.Id, &assignment.CourseId, &assignment.Title, &assignment.BlockKey, &dueDateMillis); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		assignment.DueDate = time.UnixMilli(dueDateMillis).UTC()
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return assignments, nil
}
