package storage

import (
	"context"
	"sync"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/entity/user"
)

// InMemStorage is a Backend for tests and dry runs.
type InMemStorage struct {
	mu      sync.Mutex
	users   []user.ID
	records []record.Record
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{}
}

func (s *InMemStorage) LoadUsers(_ context.Context) ([]user.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]user.ID{}, s.users...), nil
}

func (s *InMemStorage) SaveUsers(_ context.Context, users []user.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]user.ID{}, users...)
	return nil
}

func (s *InMemStorage) LoadRecords(_ context.Context) ([]record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]record.Record{}, s.records...), nil
}

func (s *InMemStorage) SaveRecords(_ context.Context, records []record.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]record.Record{}, records...)
	return nil
}

func (s *InMemStorage) Close() error {
	return nil
}
