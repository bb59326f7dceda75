package config

import "time"

const (
	defaultCategory = "uncategorized"
	defaultTimezone = "Local"
)

type AppConfig struct {
	TimezoneName        string `yaml:"timezone"`
	DefaultCategoryName string `yaml:"default-category"`
}

func (s *AppConfig) setDefaults() {
	if s.DefaultCategoryName == "" {
		s.DefaultCategoryName = defaultCategory
	}
	if s.TimezoneName == "" {
		s.TimezoneName = defaultTimezone
	}
}

func (s *AppConfig) DefaultCategory() string {
	return s.DefaultCategoryName
}

// Location falls back to the process zone when the name is unknown.
func (s *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.TimezoneName)
	if err != nil {
		return time.Local
	}
	return loc
}
