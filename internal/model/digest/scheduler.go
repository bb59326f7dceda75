package digest

import (
	"context"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/entity/user"
	"max.ks1230/ledger-bot/internal/logger"
	"max.ks1230/ledger-bot/internal/model/customerr"
)

const (
	Header          = "📅 今日行程 & 記帳 📅\n"
	Bullet          = "🔹 "
	NoRecordsToday  = "📌 今天沒有任何記錄"
	recordSeparator = "\n"
)

//go:generate minimock -i messageSender -o ./mock/ -s "_mock.go"

type messageSender interface {
	SendMessage(text string, userID user.ID) error
}

type recordsSource interface {
	TodayRecords(ctx context.Context) []string
}

type usersSource interface {
	LoadUsers(ctx context.Context) []user.ID
}

type config interface {
	DigestOffset() time.Duration
	CheckInterval() time.Duration
}

type Result struct {
	Sent   int
	Failed int
}

// Scheduler pushes the daily digest once per calendar day. It has a single
// waiting state; a trigger already passed at start-up is skipped for that day.
type Scheduler struct {
	records  recordsSource
	users    usersSource
	sender   messageSender
	offset   time.Duration
	interval time.Duration
	location *time.Location
	clock    func() time.Time

	lastFired string
}

func NewScheduler(config config, location *time.Location, records recordsSource, users usersSource, sender messageSender) *Scheduler {
	return &Scheduler{
		records:  records,
		users:    users,
		sender:   sender,
		offset:   config.DigestOffset(),
		interval: config.CheckInterval(),
		location: location,
		clock:    time.Now,
	}
}

func (s *Scheduler) WithClock(clock func() time.Time) *Scheduler {
	s.clock = clock
	return s
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.prime(s.clock())
	logger.Info("Start digest scheduler", zap.Duration("at", s.offset), zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop digest scheduler")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) prime(at time.Time) {
	at = at.In(s.location)
	if at.After(s.trigger(at)) {
		s.lastFired = day(at)
		logger.Info("digest time already passed, skipping today", zap.String("day", s.lastFired))
	}
}

// tick fires when today's trigger is reached and today has not fired yet.
func (s *Scheduler) tick(ctx context.Context) bool {
	at := s.clock().In(s.location)
	today := day(at)
	if s.lastFired == today || at.Before(s.trigger(at)) {
		return false
	}
	s.lastFired = today
	s.SendDigest(ctx)
	return true
}

func (s *Scheduler) trigger(at time.Time) time.Time {
	return now.With(at).BeginningOfDay().Add(s.offset)
}

// SendDigest pushes today's digest to every registered user. A failed push
// is logged and the remaining users still get theirs.
func (s *Scheduler) SendDigest(ctx context.Context) Result {
	span, ctx := opentracing.StartSpanFromContext(ctx, "sendDigest")
	defer span.Finish()

	message := BuildMessage(s.records.TodayRecords(ctx))
	users := s.users.LoadUsers(ctx)
	logger.Info("Sending digest", zap.Int("users", len(users)))

	var res Result
	for _, id := range users {
		if err := s.sender.SendMessage(message, id); err != nil {
			dispatchErr := &customerr.DispatchError{UserID: id.String(), Err: err}
			logger.Warn("failed to push digest", zap.Error(dispatchErr))
			observeDispatch(false)
			res.Failed++
			continue
		}
		observeDispatch(true)
		res.Sent++
	}

	span.SetTag("sent", res.Sent)
	if res.Failed > 0 {
		ext.Error.Set(span, true)
	}
	logger.Info("Digest sent", zap.Int("sent", res.Sent), zap.Int("failed", res.Failed))
	return res
}

// BuildMessage renders the digest text, never an empty bullet list.
func BuildMessage(descriptions []string) string {
	if len(descriptions) == 0 {
		return Header + NoRecordsToday
	}
	lines := make([]string, 0, len(descriptions))
	for _, d := range descriptions {
		lines = append(lines, Bullet+d)
	}
	return Header + strings.Join(lines, recordSeparator)
}

func day(t time.Time) string {
	return t.Format(record.DayLayout)
}
