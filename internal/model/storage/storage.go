package storage

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/entity/user"
	"max.ks1230/ledger-bot/internal/logger"
	"max.ks1230/ledger-bot/internal/model/customerr"
)

const (
	usersCollection   = "users"
	recordsCollection = "records"
)

// Backend persists the two collections as whole documents.
// Loads report missing data as empty results with a nil error.
type Backend interface {
	LoadUsers(ctx context.Context) ([]user.ID, error)
	SaveUsers(ctx context.Context, users []user.ID) error
	LoadRecords(ctx context.Context) ([]record.Record, error)
	SaveRecords(ctx context.Context, records []record.Record) error
	Close() error
}

// Store re-reads the backend on every call, nothing is cached in memory.
// There is no locking: two concurrent appends may lose one of the writes.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// LoadUsers never fails, unreadable content degrades to no users.
func (s *Store) LoadUsers(ctx context.Context) []user.ID {
	users, err := s.backend.LoadUsers(ctx)
	if err != nil {
		logReadError(&customerr.PersistenceReadError{Collection: usersCollection, Err: err})
		return []user.ID{}
	}
	return user.Dedupe(users)
}

func (s *Store) SaveUsers(ctx context.Context, users []user.ID) error {
	return errors.Wrap(s.backend.SaveUsers(ctx, user.Dedupe(users)), "save users")
}

// LoadRecords never fails, unreadable content degrades to no records.
func (s *Store) LoadRecords(ctx context.Context) []record.Record {
	recs, err := s.backend.LoadRecords(ctx)
	if err != nil {
		logReadError(&customerr.PersistenceReadError{Collection: recordsCollection, Err: err})
		return []record.Record{}
	}
	if recs == nil {
		recs = []record.Record{}
	}
	return recs
}

func (s *Store) SaveRecords(ctx context.Context, records []record.Record) error {
	return errors.Wrap(s.backend.SaveRecords(ctx, records), "save records")
}

// AppendRecord rewrites the whole records collection with rec at the end.
func (s *Store) AppendRecord(ctx context.Context, rec record.Record) error {
	recs := s.LoadRecords(ctx)
	recs = append(recs, rec)
	if err := s.SaveRecords(ctx, recs); err != nil {
		logger.Error("append record failed, memory and disk may disagree", zap.Error(err))
		return errors.Wrap(err, "append record")
	}
	return nil
}

// RegisterUser adds id once and reports whether it was new.
func (s *Store) RegisterUser(ctx context.Context, id user.ID) (bool, error) {
	users := s.LoadUsers(ctx)
	if user.Contains(users, id) {
		return false, nil
	}
	users = append(users, id)
	if err := s.SaveUsers(ctx, users); err != nil {
		return false, errors.Wrap(err, "register user")
	}
	logger.Info("user registered", zap.String("user", id.String()))
	return true, nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func logReadError(err *customerr.PersistenceReadError) {
	logger.Warn("cannot load persisted data",
		zap.String("collection", err.Collection),
		zap.Error(err.Err))
}
