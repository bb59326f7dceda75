package record

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2026, 10, 14, 12, 30, 45, 0, time.Local)

func Test_NewExpense_ShouldTruncateTimestampToMinute(t *testing.T) {
	rec, err := NewExpense("午餐", decimal.NewFromInt(120), "食物", created)

	require.NoError(t, err)
	assert.Equal(t, Expense, rec.Kind)
	assert.Equal(t, "2026-10-14 12:30", rec.Datetime())
	assert.Equal(t, "2026-10-14", rec.Day())
	assert.True(t, rec.IsExpense())
	assert.False(t, rec.IsAppointment())
}

func Test_NewExpense_ShouldRejectNonPositiveAmount(t *testing.T) {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := NewExpense("午餐", amount, "食物", created)
		assert.ErrorIs(t, err, ErrNonPositive)
	}
}

func Test_NewRecord_ShouldRejectEmptyDescription(t *testing.T) {
	_, err := NewExpense("", decimal.NewFromInt(1), "", created)
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, err = NewAppointment("", created)
	assert.ErrorIs(t, err, ErrEmptyDescription)
}

func Test_Document_ShouldOmitAmountForAppointment(t *testing.T) {
	rec, err := NewAppointment("週三 3點 開會", created)
	require.NoError(t, err)

	doc := rec.Document()
	assert.Equal(t, Appointment, doc.Type)
	assert.Empty(t, doc.Amount)
	assert.Empty(t, doc.Category)
	assert.Equal(t, "2026-10-14 12:30", doc.Datetime)
}

func Test_Document_ShouldRestoreExpense(t *testing.T) {
	doc := Document{
		Type:        Expense,
		Description: "咖啡",
		Amount:      "65.5",
		Category:    "飲料",
		Datetime:    "2026-10-14 08:05",
	}

	rec, err := doc.Record()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("65.5").Equal(rec.Amount))
	assert.Equal(t, "飲料", rec.Category)
	assert.Equal(t, "2026-10-14", rec.Day())
	assert.Equal(t, doc, rec.Document())
}

func Test_Document_ShouldFailOnBadContent(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{"unknown type", Document{Type: "other", Description: "x", Datetime: "2026-10-14 08:05"}},
		{"bad datetime", Document{Type: Appointment, Description: "x", Datetime: "yesterday"}},
		{"bad amount", Document{Type: Expense, Description: "x", Amount: "abc", Datetime: "2026-10-14 08:05"}},
		{"missing amount", Document{Type: Expense, Description: "x", Datetime: "2026-10-14 08:05"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.doc.Record()
			assert.Error(t, err)
		})
	}
}
