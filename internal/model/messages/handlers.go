package messages

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/logger"
	"max.ks1230/ledger-bot/internal/model/customerr"
	"max.ks1230/ledger-bot/internal/model/digest"
	"max.ks1230/ledger-bot/internal/model/reports"
)

const (
	fallbackMessage = "請輸入「日曆」來查看今日記錄"
	usageMessage    = "📖 使用方式\n" +
		"記帳：午餐 120元 食物\n" +
		"記錄行程：週三 3點 開會\n" +
		"日曆：今日記錄圖片\n" +
		"今日：今日記錄\n" +
		"總花費：累計花費\n" +
		"分類：各分類花費\n" +
		"行程：所有行程"
	noAppointmentsMessage = "📌 目前沒有任何行程"
	noExpensesMessage     = "📌 目前沒有任何花費"
	cannotSaveMessage     = "⚠️ 暫時無法儲存記錄，請稍後再試"

	expenseSavedTemplate     = "✅ 已記帳：%s %s 元（%s）"
	appointmentSavedTemplate = "📅 已記錄行程：%s"
	totalTemplate            = "💰 總花費：%s 元"
	categoryLineTemplate     = "%s：%s 元"
	appointmentsHeader       = "📅 所有行程\n"
)

const (
	startCommand        = "/start"
	helpCommand         = "說明"
	calendarCommand     = "日曆"
	todayCommand        = "今日"
	totalCommand        = "總花費"
	appointmentsCommand = "行程"
	categoriesCommand   = "分類"
)

// Reply is either a text or a PNG image.
type Reply struct {
	Text  string
	Image []byte
}

type recordClassifier interface {
	Classify(ctx context.Context, text string) (record.Record, error)
}

type reportsEngine interface {
	Today() string
	TodayRecords(ctx context.Context) []string
	TotalExpense(ctx context.Context) decimal.Decimal
	AllAppointments(ctx context.Context) []string
	CategoryTotals(ctx context.Context) []reports.CategoryTotal
}

//go:generate minimock -i calendarRenderer -o ./mock/ -s "_mock.go"

type calendarRenderer interface {
	Render(day string, descriptions []string) ([]byte, error)
}

type recordPublisher interface {
	PublishRecord(ctx context.Context, rec record.Record) error
}

type handler func(ctx context.Context, text string) (Reply, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	classifier  recordClassifier
	reports     reportsEngine
	renderer    calendarRenderer
	publisher   recordPublisher
}

func newHandler(deps Deps) *HandlerService {
	res := &HandlerService{
		classifier: deps.Classifier,
		reports:    deps.Reports,
		renderer:   deps.Renderer,
		publisher:  deps.Publisher,
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleHelp
	m[helpCommand] = s.handleHelp
	m[calendarCommand] = s.handleCalendar
	m[todayCommand] = s.handleToday
	m[totalCommand] = s.handleTotal
	m[appointmentsCommand] = s.handleAppointments
	m[categoriesCommand] = s.handleCategories
	return m
}

// HandleMessage answers a read command or classifies the text into a record.
func (s *HandlerService) HandleMessage(ctx context.Context, text string) (Reply, error) {
	text = strings.TrimSpace(text)
	if h, ok := s.handlersMap[text]; ok {
		return h(ctx, text)
	}
	return s.handleRecord(ctx, text)
}

func (s *HandlerService) handleHelp(_ context.Context, _ string) (Reply, error) {
	return textReply(usageMessage), nil
}

func (s *HandlerService) handleCalendar(ctx context.Context, _ string) (Reply, error) {
	today := s.reports.TodayRecords(ctx)
	if len(today) == 0 {
		return textReply(digest.NoRecordsToday), nil
	}
	img, err := s.renderer.Render(s.reports.Today(), today)
	if err != nil {
		logger.Error("cannot render calendar, answering with text", zap.Error(err))
		return textReply(digest.BuildMessage(today)), nil
	}
	return Reply{Image: img}, nil
}

func (s *HandlerService) handleToday(ctx context.Context, _ string) (Reply, error) {
	return textReply(digest.BuildMessage(s.reports.TodayRecords(ctx))), nil
}

func (s *HandlerService) handleTotal(ctx context.Context, _ string) (Reply, error) {
	return textReply(fmt.Sprintf(totalTemplate, s.reports.TotalExpense(ctx).String())), nil
}

func (s *HandlerService) handleAppointments(ctx context.Context, _ string) (Reply, error) {
	appointments := s.reports.AllAppointments(ctx)
	if len(appointments) == 0 {
		return textReply(noAppointmentsMessage), nil
	}
	return textReply(appointmentsHeader + bulletList(appointments)), nil
}

func (s *HandlerService) handleCategories(ctx context.Context, _ string) (Reply, error) {
	totals := s.reports.CategoryTotals(ctx)
	if len(totals) == 0 {
		return textReply(noExpensesMessage), nil
	}
	lines := make([]string, 0, len(totals))
	for _, t := range totals {
		lines = append(lines, fmt.Sprintf(categoryLineTemplate, t.Category, t.Amount.String()))
	}
	return textReply(strings.Join(lines, "\n")), nil
}

func (s *HandlerService) handleRecord(ctx context.Context, text string) (Reply, error) {
	rec, err := s.classifier.Classify(ctx, text)

	var validationErr *customerr.ValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.Info("rejected record", zap.String("reason", validationErr.Err))
		return textReply(validationErr.Hint), nil
	case errors.Is(err, customerr.ErrUnrecognized):
		return textReply(fallbackMessage + "\n\n" + usageMessage), nil
	case err != nil:
		return textReply(cannotSaveMessage), errors.Wrap(err, "handle record")
	}

	countRecord(rec.Kind)
	s.publish(ctx, rec)

	if rec.IsExpense() {
		return textReply(fmt.Sprintf(expenseSavedTemplate, rec.Description, rec.Amount.String(), rec.Category)), nil
	}
	return textReply(fmt.Sprintf(appointmentSavedTemplate, rec.Description)), nil
}

func (s *HandlerService) publish(ctx context.Context, rec record.Record) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRecord(ctx, rec); err != nil {
		logger.Error("failed to publish record event", zap.Error(err))
	}
}
