package siteconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrValueNotFound = errors.New("site configuration value not found")

type Repository interface {
	GetValue(ctx context.Context, domain string, key string) (string, error)
	StoreValue(ctx context.Context, domain string, key string, value string) error
	GetAll(ctx context.Context, domain string) (map[string]string, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) GetValue(ctx context.Context, domain string, key string) (string, error) {
	query := `SELECT config_value FROM site_configuration WHERE site_domain = ? AND config_key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, domain, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrValueNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query site configuration: %w", err)
		log.Error(err)
		return "", err
	}
	return value, nil
}

func (r *RepositoryImpl) StoreValue(ctx context.Context, domain string, key string, value string) error {
	// Upsert keyed on (site_domain, config_key)
	query := `INSERT INTO site_configuration (site_domain, config_key, config_value) VALUES (?, ?, ?)
              ON CONFLICT (site_domain, config_key) DO UPDATE SET config_value = excluded.config_value`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, domain, key, value); err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context, domain string) (map[string]string, error) {
	query := `SELECT config_key, config_value FROM site_configuration WHERE site_domain = ?`

	rows, err := r.db.QueryContext(ctx, query, domain)
	if err != nil {
		err := fmt.Errorf("could not query site configuration: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		values[key] = value
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return values, nil
}
