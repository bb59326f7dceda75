package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/entity/user"
	"max.ks1230/ledger-bot/internal/logger"
)

const dsnTemplate = "user=%s password=%s host=%s port=%d dbname=%s sslmode=%s"

const (
	usersTable   = "ledger_users"
	recordsTable = "ledger_records"
)

const schema = `
CREATE TABLE IF NOT EXISTS ledger_users (
	position INTEGER NOT NULL,
	id       TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS ledger_records (
	position    INTEGER PRIMARY KEY,
	type        TEXT NOT NULL,
	description TEXT NOT NULL,
	amount      NUMERIC,
	category    TEXT,
	created_at  TIMESTAMP NOT NULL
);
`

// maxBindParams is the most bind parameters one postgres statement accepts.
const maxBindParams = 65535

var (
	psql          = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	recordColumns = []string{"position", "type", "description", "amount", "category", "created_at"}
)

type postgresConfig interface {
	Host() string
	Port() int
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

// PostgresStorage mirrors the document contract: a save replaces the
// whole table inside one transaction, position keeps insertion order.
type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config postgresConfig) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Port(),
		config.Database(),
		config.SSLMode()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if _, err = db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "create schema")
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) LoadUsers(ctx context.Context) ([]user.ID, error) {
	query := psql.Select("id").
		From(usersTable).
		OrderBy("position")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load users")
	}
	defer closeRows(rows)

	users := make([]user.ID, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "load users")
		}
		users = append(users, user.ID(id))
	}
	return users, errors.Wrap(rows.Err(), "load users")
}

func (s *PostgresStorage) SaveUsers(ctx context.Context, users []user.ID) error {
	rows := make([][]interface{}, 0, len(users))
	for i, id := range users {
		rows = append(rows, []interface{}{i, id.String()})
	}
	inserts := insertBatches(usersTable, []string{"position", "id"}, rows)
	return errors.Wrap(s.replace(ctx, usersTable, inserts), "save users")
}

func (s *PostgresStorage) LoadRecords(ctx context.Context) ([]record.Record, error) {
	query := psql.Select(recordColumns...).
		From(recordsTable).
		OrderBy("position")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load records")
	}
	defer closeRows(rows)

	recs := make([]record.Record, 0)
	for rows.Next() {
		var (
			position   int
			kind, desc string
			amount     decimal.NullDecimal
			category   sql.NullString
			created    time.Time
		)
		if err = rows.Scan(&position, &kind, &desc, &amount, &category, &created); err != nil {
			return nil, errors.Wrap(err, "load records")
		}
		rec, err := restoreRecord(record.Kind(kind), desc, amount, category.String, created)
		if err != nil {
			skipRecord(position, err)
			continue
		}
		recs = append(recs, rec)
	}
	return recs, errors.Wrap(rows.Err(), "load records")
}

func (s *PostgresStorage) SaveRecords(ctx context.Context, records []record.Record) error {
	rows := make([][]interface{}, 0, len(records))
	for i, rec := range records {
		rows = append(rows, recordRow(i, rec))
	}
	inserts := insertBatches(recordsTable, recordColumns, rows)
	return errors.Wrap(s.replace(ctx, recordsTable, inserts), "save records")
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func (s *PostgresStorage) replace(ctx context.Context, table string, inserts []sq.InsertBuilder) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		txErr := tx.Rollback()
		if txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	if _, err = psql.Delete(table).RunWith(tx).ExecContext(ctx); err != nil {
		return err
	}
	for _, insert := range inserts {
		if _, err = insert.RunWith(tx).ExecContext(ctx); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// insertBatches splits rows so that no statement goes over the
// bind parameter limit of the postgres protocol.
func insertBatches(table string, columns []string, rows [][]interface{}) []sq.InsertBuilder {
	perStatement := maxBindParams / len(columns)
	res := make([]sq.InsertBuilder, 0, len(rows)/perStatement+1)
	for start := 0; start < len(rows); start += perStatement {
		end := start + perStatement
		if end > len(rows) {
			end = len(rows)
		}
		b := psql.Insert(table).Columns(columns...)
		for _, row := range rows[start:end] {
			b = b.Values(row...)
		}
		res = append(res, b)
	}
	return res
}

func recordRow(position int, rec record.Record) []interface{} {
	var (
		amount   interface{}
		category interface{}
	)
	if rec.IsExpense() {
		amount = rec.Amount
		category = rec.Category
	}
	// stored without zone, the wall clock is the persisted value
	created := time.Date(rec.Timestamp.Year(), rec.Timestamp.Month(), rec.Timestamp.Day(),
		rec.Timestamp.Hour(), rec.Timestamp.Minute(), 0, 0, time.UTC)
	return []interface{}{position, string(rec.Kind), rec.Description, amount, category, created}
}

func restoreRecord(kind record.Kind, desc string, amount decimal.NullDecimal, category string, created time.Time) (record.Record, error) {
	created = time.Date(created.Year(), created.Month(), created.Day(),
		created.Hour(), created.Minute(), 0, 0, time.Local)
	switch kind {
	case record.Expense:
		if !amount.Valid {
			return record.Record{}, errors.New("expense without amount")
		}
		return record.NewExpense(desc, amount.Decimal, category, created)
	case record.Appointment:
		return record.NewAppointment(desc, created)
	default:
		return record.Record{}, errors.Wrapf(record.ErrUnknownKind, "type %q", kind)
	}
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Error("error closing rows", zap.Error(err))
	}
}
