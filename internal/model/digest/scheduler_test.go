package digest

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"max.ks1230/ledger-bot/internal/entity/user"
	"max.ks1230/ledger-bot/internal/model/digest/mock"
)

type scheduleConfig struct {
	interval time.Duration
}

func (scheduleConfig) DigestOffset() time.Duration { return 6 * time.Hour }

func (c scheduleConfig) CheckInterval() time.Duration {
	if c.interval == 0 {
		return time.Minute
	}
	return c.interval
}

type recordsFunc func() []string

func (f recordsFunc) TodayRecords(context.Context) []string { return f() }

type usersList []user.ID

func (u usersList) LoadUsers(context.Context) []user.ID { return u }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func at(day, hour, minute int) time.Time {
	return time.Date(2026, 10, day, hour, minute, 0, 0, time.UTC)
}

func noRecords() []string { return nil }

func Test_BuildMessage_ShouldUseSentinelWhenEmpty(t *testing.T) {
	assert.Equal(t, "📅 今日行程 & 記帳 📅\n📌 今天沒有任何記錄", BuildMessage(nil))
	assert.Equal(t, "📅 今日行程 & 記帳 📅\n📌 今天沒有任何記錄", BuildMessage([]string{}))
}

func Test_BuildMessage_ShouldListRecords(t *testing.T) {
	msg := BuildMessage([]string{"午餐", "週三 3點 開會"})

	assert.Equal(t, "📅 今日行程 & 記帳 📅\n🔹 午餐\n🔹 週三 3點 開會", msg)
}

func Test_SendDigest_ShouldContinueAfterFailedPush(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	msg := BuildMessage([]string{"午餐"})
	sender.SendMessageMock.When(msg, "a").Then(nil)
	sender.SendMessageMock.When(msg, "b").Then(errors.New("blocked by user"))
	sender.SendMessageMock.When(msg, "c").Then(nil)

	s := NewScheduler(scheduleConfig{}, time.UTC,
		recordsFunc(func() []string { return []string{"午餐"} }),
		usersList{"a", "b", "c"},
		sender)

	res := s.SendDigest(context.Background())

	assert.Equal(t, Result{Sent: 2, Failed: 1}, res)
	assert.Equal(t, uint64(3), sender.SendMessageAfterCounter())
}

func Test_SendDigest_ShouldSendSentinelWithoutRecords(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect("📅 今日行程 & 記帳 📅\n📌 今天沒有任何記錄", user.ID("42")).
		Return(nil)

	s := NewScheduler(scheduleConfig{}, time.UTC, recordsFunc(noRecords), usersList{"42"}, sender)

	assert.Equal(t, Result{Sent: 1}, s.SendDigest(context.Background()))
}

func Test_Tick_ShouldFireOncePerDay(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	sender.SendMessageMock.Return(nil)

	clock := &fakeClock{now: at(14, 5, 58)}
	s := NewScheduler(scheduleConfig{}, time.UTC, recordsFunc(noRecords), usersList{"42"}, sender).
		WithClock(clock.Now)
	s.prime(clock.now)

	ctx := context.Background()
	assert.False(t, s.tick(ctx))

	clock.now = at(14, 6, 0)
	assert.True(t, s.tick(ctx))

	clock.now = at(14, 6, 1)
	assert.False(t, s.tick(ctx))
	clock.now = at(14, 23, 59)
	assert.False(t, s.tick(ctx))

	clock.now = at(15, 6, 0)
	assert.True(t, s.tick(ctx))

	assert.Equal(t, uint64(2), sender.SendMessageAfterCounter())
}

func Test_Tick_ShouldSkipTriggerPassedBeforeStart(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	sender.SendMessageMock.Return(nil)

	clock := &fakeClock{now: at(14, 9, 30)}
	s := NewScheduler(scheduleConfig{}, time.UTC, recordsFunc(noRecords), usersList{"42"}, sender).
		WithClock(clock.Now)
	s.prime(clock.now)

	ctx := context.Background()
	assert.False(t, s.tick(ctx))
	clock.now = at(14, 18, 0)
	assert.False(t, s.tick(ctx))

	clock.now = at(15, 6, 2)
	assert.True(t, s.tick(ctx))
	assert.Equal(t, uint64(1), sender.SendMessageAfterCounter())
}

func Test_Run_ShouldStopOnCancel(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	// before the trigger, so no push happens while running
	clock := &fakeClock{now: at(14, 1, 0)}
	s := NewScheduler(scheduleConfig{interval: time.Millisecond}, time.UTC, recordsFunc(noRecords), usersList{"42"}, sender).
		WithClock(clock.Now)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Equal(t, uint64(0), sender.SendMessageAfterCounter())
}
