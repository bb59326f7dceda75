package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/entity/user"
)

const filePerm = 0o644

type filesConfig interface {
	UsersFile() string
	RecordsFile() string
}

// JSONStorage keeps each collection in its own JSON file.
type JSONStorage struct {
	usersPath   string
	recordsPath string
}

func NewJSONStorage(config filesConfig) *JSONStorage {
	return &JSONStorage{
		usersPath:   config.UsersFile(),
		recordsPath: config.RecordsFile(),
	}
}

func (s *JSONStorage) LoadUsers(_ context.Context) ([]user.ID, error) {
	raw, err := readFile(s.usersPath)
	if err != nil {
		return nil, errors.Wrap(err, "load users")
	}
	return decodeUsers(raw)
}

func (s *JSONStorage) SaveUsers(_ context.Context, users []user.ID) error {
	raw, err := encodeUsers(users)
	if err != nil {
		return errors.Wrap(err, "encode users")
	}
	return writeFile(s.usersPath, raw)
}

func (s *JSONStorage) LoadRecords(_ context.Context) ([]record.Record, error) {
	raw, err := readFile(s.recordsPath)
	if err != nil {
		return nil, errors.Wrap(err, "load records")
	}
	return decodeRecords(raw)
}

func (s *JSONStorage) SaveRecords(_ context.Context, records []record.Record) error {
	raw, err := encodeRecords(records)
	if err != nil {
		return errors.Wrap(err, "encode records")
	}
	return writeFile(s.recordsPath, raw)
}

func (s *JSONStorage) Close() error {
	return nil
}

// readFile returns nil content for a file that does not exist yet.
func readFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return raw, err
}

// writeFile replaces path through a rename of a sibling temp file.
// No fsync and no locking.
func writeFile(path string, raw []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create data dir")
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "write temp file")
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "close temp file")
	}
	if err = os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "chmod temp file")
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "replace file")
	}
	return nil
}
