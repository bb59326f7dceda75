package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "data/config.yaml"
	configFileEnvKey  = "CONFIG_FILE"
	tokenEnvKey       = "TELEGRAM_TOKEN"
)

type config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	App       AppConfig       `yaml:"app"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Calendar  CalendarConfig  `yaml:"calendar"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Ops       OpsConfig       `yaml:"ops"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads the yaml file named by CONFIG_FILE (data/config.yaml by default).
// A .env file next to the binary is loaded first when present.
func New() (*Service, error) {
	_ = godotenv.Load()

	path := os.Getenv(configFileEnvKey)
	if path == "" {
		path = defaultConfigFile
	}
	return FromFile(path)
}

func FromFile(path string) (*Service, error) {
	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if token := os.Getenv(tokenEnvKey); token != "" {
		s.config.Telegram.ApiToken = token
	}
	s.config.App.setDefaults()
	s.config.Storage.setDefaults()
	s.config.Schedule.setDefaults()
	s.config.Calendar.setDefaults()
	s.config.Ops.setDefaults()
	s.config.Tracing.setDefaults()

	if err = s.config.Schedule.validate(); err != nil {
		return nil, errors.Wrap(err, "schedule config")
	}
	return s, nil
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Schedule() *ScheduleConfig {
	return &s.config.Schedule
}

func (s *Service) Calendar() *CalendarConfig {
	return &s.config.Calendar
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Ops() *OpsConfig {
	return &s.config.Ops
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
