package messages

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/entity/user"
	"max.ks1230/ledger-bot/internal/model/classifier"
	"max.ks1230/ledger-bot/internal/model/messages/mock"
	"max.ks1230/ledger-bot/internal/model/reports"
	"max.ks1230/ledger-bot/internal/model/storage"
)

const senderID = user.ID("123")

var now = time.Date(2026, 10, 14, 12, 30, 0, 0, time.UTC)

type appConfig struct{}

func (appConfig) DefaultCategory() string   { return "uncategorized" }
func (appConfig) Location() *time.Location { return time.UTC }
func (appConfig) DigestAt() string         { return "06:00" }

type brokenClassifier struct{}

func (brokenClassifier) Classify(context.Context, string) (record.Record, error) {
	return record.Record{}, errors.New("disk full")
}

type publisherSpy struct {
	published []record.Record
}

func (p *publisherSpy) PublishRecord(_ context.Context, rec record.Record) error {
	p.published = append(p.published, rec)
	return nil
}

type fixture struct {
	store     *storage.Store
	sender    *mock.MessageSenderMock
	renderer  *mock.CalendarRendererMock
	publisher *publisherSpy
	service   *Service
}

func newFixture(m *minimock.Controller) *fixture {
	store := storage.New(storage.NewInMemStorage())
	clock := func() time.Time { return now }
	f := &fixture{
		store:     store,
		sender:    mock.NewMessageSenderMock(m),
		renderer:  mock.NewCalendarRendererMock(m),
		publisher: &publisherSpy{},
	}
	f.service = NewService(f.sender, Deps{
		Registrar:  store,
		Classifier: classifier.New(store, appConfig{}).WithClock(clock),
		Reports:    reports.NewEngine(appConfig{}, store).WithClock(clock),
		Renderer:   f.renderer,
		Publisher:  f.publisher,
	}, appConfig{})
	return f
}

func (f *fixture) registered(t *testing.T) *fixture {
	require.NoError(t, f.store.SaveUsers(context.Background(), []user.ID{senderID}))
	return f
}

func (f *fixture) send(text string) error {
	return f.service.HandleIncomingMessage(context.Background(), Message{Text: text, UserID: senderID})
}

func Test_OnFirstMessages_ShouldRegisterUserOnce(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m)

	var sent []string
	f.sender.SendMessageMock.Set(func(text string, userID user.ID) error {
		assert.Equal(t, senderID, userID)
		sent = append(sent, text)
		return nil
	})

	assert.NoError(t, f.send("午餐 120元 食物"))
	assert.NoError(t, f.send("總花費"))

	assert.Equal(t, []string{
		"✅ 你已成功註冊！每日 06:00 會收到行程提醒！",
		"✅ 已記帳：午餐 120 元（食物）",
		"💰 總花費：120 元",
	}, sent)
	assert.Equal(t, []user.ID{senderID}, f.store.LoadUsers(context.Background()))
	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, "午餐", f.publisher.published[0].Description)
}

func Test_OnInvalidAmount_ShouldAnswerWithHint(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m).registered(t)

	f.sender.SendMessageMock.Expect(classifier.AmountHint, senderID).Return(nil)

	assert.NoError(t, f.send("午餐 abc元"))
	assert.Empty(t, f.store.LoadRecords(context.Background()))
	assert.Empty(t, f.publisher.published)
}

func Test_OnAppointment_ShouldKeepTextVerbatim(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m).registered(t)

	f.sender.SendMessageMock.Expect("📅 已記錄行程：週三 3點 開會", senderID).Return(nil)

	assert.NoError(t, f.send("週三 3點 開會"))

	recs := f.store.LoadRecords(context.Background())
	require.Len(t, recs, 1)
	assert.Equal(t, record.Appointment, recs[0].Kind)
	assert.Equal(t, "週三 3點 開會", recs[0].Description)
}

func Test_OnCalendarCommand_ShouldSendRenderedImage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m).registered(t)
	png := []byte{0x89, 'P', 'N', 'G'}

	f.sender.SendMessageMock.Return(nil)
	f.renderer.RenderMock.Expect("2026-10-14", []string{"週三 3點 開會"}).Return(png, nil)
	f.sender.SendImageMock.Expect(png, senderID).Return(nil)

	assert.NoError(t, f.send("週三 3點 開會"))
	assert.NoError(t, f.send("日曆"))
}

func Test_OnCalendarCommand_ShouldAnswerSentinelWithoutRecords(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m).registered(t)

	f.sender.SendMessageMock.Expect("📌 今天沒有任何記錄", senderID).Return(nil)

	assert.NoError(t, f.send("日曆"))
}

func Test_OnCalendarRenderFailure_ShouldFallBackToText(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m).registered(t)

	var sent []string
	f.sender.SendMessageMock.Set(func(text string, _ user.ID) error {
		sent = append(sent, text)
		return nil
	})
	f.renderer.RenderMock.Return(nil, errors.New("no font"))

	assert.NoError(t, f.send("午餐 120元"))
	assert.NoError(t, f.send("日曆"))

	require.Len(t, sent, 2)
	assert.Equal(t, "✅ 已記帳：午餐 120 元（uncategorized）", sent[0])
	assert.Equal(t, "📅 今日行程 & 記帳 📅\n🔹 午餐", sent[1])
}

func Test_OnAppointmentsCommand_ShouldListAll(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m).registered(t)

	var sent []string
	f.sender.SendMessageMock.Set(func(text string, _ user.ID) error {
		sent = append(sent, text)
		return nil
	})

	assert.NoError(t, f.send("行程"))
	assert.NoError(t, f.send("週三 3點 開會"))
	assert.NoError(t, f.send("行程"))

	require.Len(t, sent, 3)
	assert.Equal(t, "📌 目前沒有任何行程", sent[0])
	assert.Equal(t, "📅 所有行程\n🔹 週三 3點 開會", sent[2])
}

func Test_OnUnknownText_ShouldAnswerWithUsage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m).registered(t)

	f.sender.SendMessageMock.Expect(fallbackMessage+"\n\n"+usageMessage, senderID).Return(nil)

	assert.NoError(t, f.send("hello there"))
	assert.Empty(t, f.store.LoadRecords(context.Background()))
}

func Test_OnStorageFailure_ShouldApologiseAndReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	store := storage.New(storage.NewInMemStorage())
	require.NoError(t, store.SaveUsers(context.Background(), []user.ID{senderID}))
	sender := mock.NewMessageSenderMock(m)
	sender.SendMessageMock.Expect(cannotSaveMessage, senderID).Return(nil)

	service := NewService(sender, Deps{
		Registrar:  store,
		Classifier: brokenClassifier{},
		Reports:    reports.NewEngine(appConfig{}, store),
		Renderer:   mock.NewCalendarRendererMock(m),
	}, appConfig{})

	err := service.HandleIncomingMessage(context.Background(), Message{Text: "午餐 120元", UserID: senderID})
	assert.Error(t, err)
}
