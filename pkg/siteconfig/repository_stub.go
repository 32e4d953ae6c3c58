package siteconfig

import (
	"context"
)

type RepositoryStub struct {
	data map[string]map[string]string // domain -> key -> value
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{data: map[string]map[string]string{}}
}

func (s *RepositoryStub) GetValue(ctx context.Context, domain string, key string) (string, error) {
	value, ok := s.data[domain][key]
	if !ok {
		return "", ErrValueNotFound
	}
	return value, nil
}

func (s *RepositoryStub) StoreValue(ctx context.Context, domain string, key string, value string) error {
	if s.data[domain] == nil {
		s.data[domain] = map[string]string{}
	}
	s.data[domain][key] = value
	return nil
}

func (s *RepositoryStub) GetAll(ctx context.Context, domain string) (map[string]string, error) {
	values := make(map[string]string, len(s.data[domain]))
	for key, value := range s.data[domain] {
		values[key] = value
	}
	return values, nil
}
