package config

import (
	"time"

	"github.com/pkg/errors"
)

const (
	defaultDigestAt      = "06:00"
	defaultCheckInterval = 60
	clockLayout          = "15:04"
)

type ScheduleConfig struct {
	DigestTime           string `yaml:"digest-at"`
	CheckIntervalSeconds int64  `yaml:"check-interval-seconds"`
}

func (s *ScheduleConfig) setDefaults() {
	if s.DigestTime == "" {
		s.DigestTime = defaultDigestAt
	}
	if s.CheckIntervalSeconds <= 0 {
		s.CheckIntervalSeconds = defaultCheckInterval
	}
}

func (s *ScheduleConfig) validate() error {
	if _, err := time.Parse(clockLayout, s.DigestTime); err != nil {
		return errors.Errorf("digest-at %q is not HH:MM", s.DigestTime)
	}
	return nil
}

func (s *ScheduleConfig) DigestAt() string {
	return s.DigestTime
}

// DigestOffset is the trigger as a duration since midnight.
func (s *ScheduleConfig) DigestOffset() time.Duration {
	t, err := time.Parse(clockLayout, s.DigestTime)
	if err != nil {
		t, _ = time.Parse(clockLayout, defaultDigestAt)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

func (s *ScheduleConfig) CheckInterval() time.Duration {
	return time.Duration(s.CheckIntervalSeconds) * time.Second
}
