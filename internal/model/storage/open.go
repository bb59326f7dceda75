package storage

import (
	"github.com/pkg/errors"

	"max.ks1230/ledger-bot/internal/config"
)

type storageConfig interface {
	filesConfig
	Driver() string
	BoltFile() string
}

// Open builds the Store for the configured driver.
func Open(cfg storageConfig, pg postgresConfig) (*Store, error) {
	var (
		backend Backend
		err     error
	)
	switch cfg.Driver() {
	case config.DriverJSON:
		backend = NewJSONStorage(cfg)
	case config.DriverBolt:
		backend, err = NewBoltStorage(cfg.BoltFile())
	case config.DriverPostgres:
		backend, err = NewPostgresStorage(pg)
	case config.DriverMemory:
		backend = NewInMemStorage()
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Driver())
	}
	if err != nil {
		return nil, err
	}
	return New(backend), nil
}
