package record

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	TimestampLayout = "2006-01-02 15:04"
	DayLayout       = "2006-01-02"
)

// Kind values are the persisted type labels.
type Kind string

const (
	Expense     Kind = "消費"
	Appointment Kind = "行程"
)

func (k Kind) Valid() bool {
	return k == Expense || k == Appointment
}

// Record is a single expense or appointment entry. Records are values:
// they are only ever appended to the store or read back, never changed.
type Record struct {
	Kind        Kind
	Description string
	Amount      decimal.Decimal
	Category    string
	Timestamp   time.Time
}

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrNonPositive      = errors.New("amount must be positive")
	ErrUnknownKind      = errors.New("unknown record type")
)

// NewExpense builds an expense record stamped with created truncated to the minute.
func NewExpense(description string, amount decimal.Decimal, category string, created time.Time) (Record, error) {
	if description == "" {
		return Record{}, ErrEmptyDescription
	}
	if !amount.IsPositive() {
		return Record{}, ErrNonPositive
	}
	return Record{
		Kind:        Expense,
		Description: description,
		Amount:      amount,
		Category:    category,
		Timestamp:   created.Truncate(time.Minute),
	}, nil
}

func NewAppointment(description string, created time.Time) (Record, error) {
	if description == "" {
		return Record{}, ErrEmptyDescription
	}
	return Record{
		Kind:        Appointment,
		Description: description,
		Timestamp:   created.Truncate(time.Minute),
	}, nil
}

func (r Record) IsExpense() bool {
	return r.Kind == Expense
}

func (r Record) IsAppointment() bool {
	return r.Kind == Appointment
}

// Day is the day-bucket key used for "today" filtering.
func (r Record) Day() string {
	return r.Timestamp.Format(DayLayout)
}

func (r Record) Datetime() string {
	return r.Timestamp.Format(TimestampLayout)
}
