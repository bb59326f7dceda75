package classifier

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/model/customerr"
	"max.ks1230/ledger-bot/internal/model/storage"
)

var now = time.Date(2026, 10, 14, 12, 30, 10, 0, time.UTC)

type appConfig struct{}

func (appConfig) DefaultCategory() string   { return "uncategorized" }
func (appConfig) Location() *time.Location { return time.UTC }

type failingAppender struct{}

func (failingAppender) AppendRecord(context.Context, record.Record) error {
	return errors.New("disk full")
}

func newClassifier() (*Classifier, *storage.Store) {
	store := storage.New(storage.NewInMemStorage())
	c := New(store, appConfig{}).WithClock(func() time.Time { return now })
	return c, store
}

func Test_Parse_ShouldBuildExpense(t *testing.T) {
	tests := []struct {
		text     string
		desc     string
		amount   string
		category string
	}{
		{"午餐 120元 食物", "午餐", "120", "食物"},
		{"咖啡 65.5元", "咖啡", "65.5", "uncategorized"},
		{"  計程車 300元 交通 回家  ", "計程車", "300", "交通"},
		{"7-11 45元 零食", "7-11", "45", "零食"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			rec, err := Parse(tt.text, now, "uncategorized")

			require.NoError(t, err)
			assert.Equal(t, record.Expense, rec.Kind)
			assert.Equal(t, tt.desc, rec.Description)
			assert.True(t, decimal.RequireFromString(tt.amount).Equal(rec.Amount), rec.Amount.String())
			assert.Equal(t, tt.category, rec.Category)
			assert.Equal(t, "2026-10-14 12:30", rec.Datetime())
		})
	}
}

func Test_Parse_ShouldRejectInvalidAmount(t *testing.T) {
	for _, text := range []string{"午餐 abc元", "午餐 0元", "午餐 -5元", "元旦 3點"} {
		t.Run(text, func(t *testing.T) {
			_, err := Parse(text, now, "uncategorized")

			var validationErr *customerr.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, AmountHint, validationErr.Hint)
		})
	}
}

func Test_Parse_ShouldBuildAppointmentWithVerbatimText(t *testing.T) {
	for _, text := range []string{"週三 3點 開會", "星期五 聚餐", "10月20號 看牙醫", "下午3點"} {
		t.Run(text, func(t *testing.T) {
			rec, err := Parse(text, now, "uncategorized")

			require.NoError(t, err)
			assert.Equal(t, record.Appointment, rec.Kind)
			assert.Equal(t, text, rec.Description)
			assert.True(t, rec.Amount.IsZero())
			assert.Empty(t, rec.Category)
		})
	}
}

func Test_Parse_ShouldNotRecognize(t *testing.T) {
	for _, text := range []string{"", "   ", "hello", "100元"} {
		t.Run(text, func(t *testing.T) {
			_, err := Parse(text, now, "uncategorized")
			assert.ErrorIs(t, err, customerr.ErrUnrecognized)
		})
	}
}

func Test_Classify_ShouldPersistRecord(t *testing.T) {
	ctx := context.Background()
	c, store := newClassifier()

	rec, err := c.Classify(ctx, "午餐 120元 食物")
	require.NoError(t, err)

	recs := store.LoadRecords(ctx)
	require.Len(t, recs, 1)
	assert.Equal(t, rec.Document(), recs[0].Document())
}

func Test_Classify_ShouldNotMutateStoreOnFailure(t *testing.T) {
	ctx := context.Background()
	c, store := newClassifier()

	_, err := c.Classify(ctx, "午餐 abc元")
	assert.Error(t, err)
	_, err = c.Classify(ctx, "random words")
	assert.ErrorIs(t, err, customerr.ErrUnrecognized)

	assert.Empty(t, store.LoadRecords(ctx))
}

func Test_Classify_ShouldReturnStorageError(t *testing.T) {
	c := New(failingAppender{}, appConfig{}).WithClock(func() time.Time { return now })

	_, err := c.Classify(context.Background(), "週三 3點 開會")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
