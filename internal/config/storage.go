package config

const (
	DriverJSON     = "json"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type StorageConfig struct {
	DriverName  string `yaml:"driver"`
	UsersPath   string `yaml:"users-file"`
	RecordsPath string `yaml:"records-file"`
	BoltPath    string `yaml:"bolt-file"`
}

func (s *StorageConfig) setDefaults() {
	if s.DriverName == "" {
		s.DriverName = DriverJSON
	}
	if s.UsersPath == "" {
		s.UsersPath = "data/users.json"
	}
	if s.RecordsPath == "" {
		s.RecordsPath = "data/records.json"
	}
	if s.BoltPath == "" {
		s.BoltPath = "data/ledger.db"
	}
}

func (s *StorageConfig) Driver() string {
	return s.DriverName
}

func (s *StorageConfig) UsersFile() string {
	return s.UsersPath
}

func (s *StorageConfig) RecordsFile() string {
	return s.RecordsPath
}

func (s *StorageConfig) BoltFile() string {
	return s.BoltPath
}
