package classifier

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/logger"
	"max.ks1230/ledger-bot/internal/model/customerr"
)

// ExpenseMarker is the currency unit suffix of an expense amount.
const ExpenseMarker = "元"

// ScheduleMarkers are time of day, weekday and date keywords.
var ScheduleMarkers = []string{"點", "週", "星期", "月", "號"}

const AmountHint = "❌ 金額格式錯誤，請輸入：項目 金額元 [分類]，例如：午餐 120元 食物"

type recordAppender interface {
	AppendRecord(ctx context.Context, rec record.Record) error
}

type config interface {
	DefaultCategory() string
	Location() *time.Location
}

type Classifier struct {
	storage         recordAppender
	defaultCategory string
	location        *time.Location
	clock           func() time.Time
}

func New(storage recordAppender, config config) *Classifier {
	return &Classifier{
		storage:         storage,
		defaultCategory: config.DefaultCategory(),
		location:        config.Location(),
		clock:           time.Now,
	}
}

// WithClock replaces the wall clock used to stamp new records.
func (c *Classifier) WithClock(clock func() time.Time) *Classifier {
	c.clock = clock
	return c
}

// Classify parses text and, on success, persists the record before returning.
// Nothing is stored when an error is returned.
func (c *Classifier) Classify(ctx context.Context, text string) (record.Record, error) {
	rec, err := Parse(text, c.clock().In(c.location), c.defaultCategory)
	if err != nil {
		return record.Record{}, err
	}
	if err = c.storage.AppendRecord(ctx, rec); err != nil {
		return record.Record{}, errors.Wrap(err, "classify")
	}
	logger.Info("record created",
		zap.String("type", string(rec.Kind)),
		zap.String("description", rec.Description))
	return rec, nil
}

// Parse applies the keyword rules in order, first match wins.
func Parse(text string, now time.Time, defaultCategory string) (record.Record, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return record.Record{}, customerr.ErrUnrecognized
	}

	if tokens := strings.Fields(text); strings.Contains(text, ExpenseMarker) && len(tokens) >= 2 {
		return parseExpense(tokens, now, defaultCategory)
	}

	if hasScheduleMarker(text) {
		return record.NewAppointment(text, now)
	}
	return record.Record{}, customerr.ErrUnrecognized
}

func parseExpense(tokens []string, now time.Time, defaultCategory string) (record.Record, error) {
	raw := strings.ReplaceAll(tokens[1], ExpenseMarker, "")
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return record.Record{}, &customerr.ValidationError{
			Err:  "invalid amount " + tokens[1],
			Hint: AmountHint,
		}
	}

	category := defaultCategory
	if len(tokens) > 2 {
		category = tokens[2]
	}
	return record.NewExpense(tokens[0], amount, category, now)
}

func hasScheduleMarker(text string) bool {
	for _, marker := range ScheduleMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
