package storage

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/entity/user"
	"max.ks1230/ledger-bot/internal/model/customerr"
)

const indent = "  "

func encodeUsers(users []user.ID) ([]byte, error) {
	if users == nil {
		users = []user.ID{}
	}
	return encode(users)
}

// decodeUsers treats blank content as an empty collection.
func decodeUsers(raw []byte) ([]user.ID, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []user.ID{}, nil
	}
	var users []user.ID
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, errors.Wrap(err, "decode users")
	}
	return users, nil
}

func encodeRecords(records []record.Record) ([]byte, error) {
	docs := make([]record.Document, 0, len(records))
	for _, rec := range records {
		docs = append(docs, rec.Document())
	}
	return encode(docs)
}

func decodeRecords(raw []byte) ([]record.Record, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []record.Record{}, nil
	}
	var docs []record.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, errors.Wrap(err, "decode records")
	}
	res := make([]record.Record, 0, len(docs))
	for i, doc := range docs {
		rec, err := doc.Record()
		if err != nil {
			skipRecord(i, err)
			continue
		}
		res = append(res, rec)
	}
	return res, nil
}

// skipRecord drops one unreadable entry so the rest of the history survives
// the next rewrite.
func skipRecord(position int, err error) {
	logReadError(&customerr.PersistenceReadError{
		Collection: recordsCollection,
		Err:        errors.Wrapf(err, "record %d skipped", position),
	})
}

// encode keeps non-ASCII text readable in the files.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
