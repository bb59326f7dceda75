package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/entity/user"
)

var (
	ledgerBucket = []byte("ledger")
	usersKey     = []byte(usersCollection)
	recordsKey   = []byte(recordsCollection)
)

// BoltStorage keeps the same JSON documents as JSONStorage under two keys
// of one bbolt bucket.
type BoltStorage struct {
	db *bbolt.DB
}

func NewBoltStorage(path string) (*BoltStorage, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open bolt db")
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(ledgerBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}
	return &BoltStorage{db: db}, nil
}

func (s *BoltStorage) LoadUsers(_ context.Context) ([]user.ID, error) {
	raw, err := s.get(usersKey)
	if err != nil {
		return nil, errors.Wrap(err, "load users")
	}
	return decodeUsers(raw)
}

func (s *BoltStorage) SaveUsers(_ context.Context, users []user.ID) error {
	raw, err := encodeUsers(users)
	if err != nil {
		return errors.Wrap(err, "encode users")
	}
	return s.put(usersKey, raw)
}

func (s *BoltStorage) LoadRecords(_ context.Context) ([]record.Record, error) {
	raw, err := s.get(recordsKey)
	if err != nil {
		return nil, errors.Wrap(err, "load records")
	}
	return decodeRecords(raw)
}

func (s *BoltStorage) SaveRecords(_ context.Context, records []record.Record) error {
	raw, err := encodeRecords(records)
	if err != nil {
		return errors.Wrap(err, "encode records")
	}
	return s.put(recordsKey, raw)
}

func (s *BoltStorage) Close() error {
	return s.db.Close()
}

// get copies the value out, bbolt memory is only valid inside the tx.
func (s *BoltStorage) get(key []byte) ([]byte, error) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(ledgerBucket)
		if bucket == nil {
			return nil
		}
		if v := bucket.Get(key); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	return raw, err
}

func (s *BoltStorage) put(key, raw []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(ledgerBucket)
		if err != nil {
			return err
		}
		return bucket.Put(key, raw)
	})
}
