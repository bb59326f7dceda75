package record

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Document is the persisted shape of a Record.
type Document struct {
	Type        Kind        `json:"type"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount,omitempty"`
	Category    string      `json:"category,omitempty"`
	Datetime    string      `json:"datetime"`
}

func (r Record) Document() Document {
	doc := Document{
		Type:        r.Kind,
		Description: r.Description,
		Datetime:    r.Datetime(),
	}
	if r.IsExpense() {
		doc.Amount = json.Number(r.Amount.String())
		doc.Category = r.Category
	}
	return doc
}

// Record restores the entry. The wall clock of the datetime is kept as written.
func (d Document) Record() (Record, error) {
	if !d.Type.Valid() {
		return Record{}, errors.Wrapf(ErrUnknownKind, "type %q", d.Type)
	}
	ts, err := time.ParseInLocation(TimestampLayout, d.Datetime, time.Local)
	if err != nil {
		return Record{}, errors.Wrap(err, "parse datetime")
	}
	if d.Type == Appointment {
		return NewAppointment(d.Description, ts)
	}
	amount, err := decimal.NewFromString(d.Amount.String())
	if err != nil {
		return Record{}, errors.Wrap(err, "parse amount")
	}
	return NewExpense(d.Description, amount, d.Category, ts)
}
