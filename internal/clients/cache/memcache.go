package cache

import (
	"github.com/bradfitz/gomemcache/memcache"
	"go.uber.org/zap"

	"max.ks1230/ledger-bot/internal/logger"
)

const keyPrefix = "ledger:"

type MemcacheClient struct {
	client *memcache.Client
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func (mc *MemcacheClient) Get(key string) ([]byte, error) {
	item, err := mc.client.Get(keyPrefix + key)
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

func (mc *MemcacheClient) Set(key string, value []byte, ttlSeconds int32) error {
	return mc.client.Set(&memcache.Item{
		Key:        keyPrefix + key,
		Value:      value,
		Expiration: ttlSeconds,
	})
}
