package siteconfig

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type Service interface {
	// GetValue returns the site-specific override for key, or defaultValue
	// when the site has none. Lookup failures are non-fatal and also yield
	// the default.
	GetValue(ctx context.Context, domain string, key string, defaultValue string) string
	StoreValue(ctx context.Context, domain string, key string, value string) error
	GetAll(ctx context.Context, domain string) (map[string]string, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetValue(ctx context.Context, domain string, key string, defaultValue string) string {
	value, err := s.repo.GetValue(ctx, domain, key)
	if err != nil {
		if !errors.Is(err, ErrValueNotFound) {
			log.Warnf("site configuration lookup failed for %s/%s: %v", domain, key, err)
		}
		return defaultValue
	}
	return value
}

func (s *ServiceImpl) StoreValue(ctx context.Context, domain string, key string, value string) error {
	return s.repo.StoreValue(ctx, domain, key, value)
}

func (s *ServiceImpl) GetAll(ctx context.Context, domain string) (map[string]string, error) {
	return s.repo.GetAll(ctx, domain)
}
