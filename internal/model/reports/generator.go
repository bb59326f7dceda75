package reports

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/logger"
)

type recordsStorage interface {
	LoadRecords(ctx context.Context) []record.Record
}

type config interface {
	Location() *time.Location
}

// Engine answers read commands straight from the store, every call
// sees the latest persisted records.
type Engine struct {
	storage  recordsStorage
	location *time.Location
	clock    func() time.Time
}

type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

func NewEngine(config config, storage recordsStorage) *Engine {
	return &Engine{
		storage:  storage,
		location: config.Location(),
		clock:    time.Now,
	}
}

func (e *Engine) WithClock(clock func() time.Time) *Engine {
	e.clock = clock
	return e
}

// Today is the current day-bucket key.
func (e *Engine) Today() string {
	return e.clock().In(e.location).Format(record.DayLayout)
}

func (e *Engine) TodayRecords(ctx context.Context) []string {
	today := e.Today()
	res := descriptions(e.storage.LoadRecords(ctx), func(r record.Record) bool {
		return r.Day() == today
	})
	logger.Debug("today records", zap.String("day", today), zap.Int("count", len(res)))
	return res
}

func (e *Engine) TotalExpense(ctx context.Context) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range e.storage.LoadRecords(ctx) {
		if rec.IsExpense() {
			total = total.Add(rec.Amount)
		}
	}
	return total
}

func (e *Engine) AllAppointments(ctx context.Context) []string {
	return descriptions(e.storage.LoadRecords(ctx), record.Record.IsAppointment)
}

// CategoryTotals sums expenses per category, biggest first.
func (e *Engine) CategoryTotals(ctx context.Context) []CategoryTotal {
	m := make(map[string]decimal.Decimal)
	for _, rec := range e.storage.LoadRecords(ctx) {
		if !rec.IsExpense() {
			continue
		}
		if cur, ok := m[rec.Category]; ok {
			m[rec.Category] = cur.Add(rec.Amount)
		} else {
			m[rec.Category] = rec.Amount
		}
	}
	res := make([]CategoryTotal, 0, len(m))
	for cat, am := range m {
		res = append(res, CategoryTotal{Category: cat, Amount: am})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Amount.Equal(res[j].Amount) {
			return res[i].Category < res[j].Category
		}
		return res[i].Amount.GreaterThan(res[j].Amount)
	})
	return res
}

func descriptions(recs []record.Record, keep func(record.Record) bool) []string {
	res := make([]string, 0)
	for _, rec := range recs {
		if keep(rec) {
			res = append(res, rec.Description)
		}
	}
	return res
}
