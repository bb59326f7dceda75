package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/ledger-bot/internal/entity/record"
	"max.ks1230/ledger-bot/internal/entity/user"
)

type filesCfg struct {
	users, records string
}

func (c filesCfg) UsersFile() string   { return c.users }
func (c filesCfg) RecordsFile() string { return c.records }

func newJSONStore(t *testing.T) (*Store, filesCfg) {
	dir := t.TempDir()
	cfg := filesCfg{
		users:   filepath.Join(dir, "users.json"),
		records: filepath.Join(dir, "records.json"),
	}
	return New(NewJSONStorage(cfg)), cfg
}

func lunch(t *testing.T) record.Record {
	rec, err := record.NewExpense("午餐", decimal.NewFromInt(120), "食物",
		time.Date(2026, 10, 14, 12, 30, 0, 0, time.Local))
	require.NoError(t, err)
	return rec
}

func meeting(t *testing.T) record.Record {
	rec, err := record.NewAppointment("週三 3點 開會", time.Date(2026, 10, 14, 9, 0, 0, 0, time.Local))
	require.NoError(t, err)
	return rec
}

func Test_LoadRecords_ShouldDegradeToEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content *string
	}{
		{"missing file", nil},
		{"empty file", strPtr("")},
		{"whitespace only", strPtr("  \n")},
		{"malformed json", strPtr("[{\"type\": ")},
		{"wrong shape", strPtr("{\"type\": \"消費\"}")},
		{"bad record", strPtr(`[{"type":"消費","description":"x","amount":"abc","datetime":"2026-10-14 08:00"}]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, cfg := newJSONStore(t)
			if tt.content != nil {
				require.NoError(t, os.WriteFile(cfg.records, []byte(*tt.content), 0o644))
				require.NoError(t, os.WriteFile(cfg.users, []byte(*tt.content), 0o644))
			}

			recs := store.LoadRecords(context.Background())
			users := store.LoadUsers(context.Background())

			assert.NotNil(t, recs)
			assert.Empty(t, recs)
			assert.NotNil(t, users)
			assert.Empty(t, users)
		})
	}
}

func Test_AppendRecord_ShouldRewriteWholeCollection(t *testing.T) {
	ctx := context.Background()
	store, cfg := newJSONStore(t)

	require.NoError(t, store.AppendRecord(ctx, lunch(t)))
	require.NoError(t, store.AppendRecord(ctx, meeting(t)))

	recs := store.LoadRecords(ctx)
	require.Len(t, recs, 2)
	assert.Equal(t, "午餐", recs[0].Description)
	assert.True(t, decimal.NewFromInt(120).Equal(recs[0].Amount))
	assert.Equal(t, "週三 3點 開會", recs[1].Description)

	raw, err := os.ReadFile(cfg.records)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type":"消費","description":"午餐","amount":120,"category":"食物","datetime":"2026-10-14 12:30"},
		{"type":"行程","description":"週三 3點 開會","datetime":"2026-10-14 09:00"}
	]`, string(raw))

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(cfg.records), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func Test_LoadRecords_ShouldReadOriginalFormat(t *testing.T) {
	store, cfg := newJSONStore(t)
	content := `[
  {"type": "消費", "description": "晚餐", "amount": 250.5, "category": "食物", "datetime": "2026-10-13 19:10"},
  {"type": "行程", "description": "10月20號 看牙醫", "datetime": "2026-10-14 07:45"}
]`
	require.NoError(t, os.WriteFile(cfg.records, []byte(content), 0o644))

	recs := store.LoadRecords(context.Background())

	require.Len(t, recs, 2)
	assert.True(t, decimal.RequireFromString("250.5").Equal(recs[0].Amount))
	assert.Equal(t, "2026-10-13", recs[0].Day())
	assert.Equal(t, record.Appointment, recs[1].Kind)
}

func Test_AppendRecord_ShouldKeepHistoryAroundInvalidRecord(t *testing.T) {
	ctx := context.Background()
	store, cfg := newJSONStore(t)
	content := `[
  {"type": "消費", "description": "晚餐", "amount": 250, "category": "食物", "datetime": "2026-10-13 19:10"},
  {"type": "行程", "description": "10月20號 看牙醫", "datetime": "2026-10-14 07:45"},
  {"type": "消費", "description": "免費試吃", "amount": 0, "category": "食物", "datetime": "2026-10-14 08:00"},
  {"type": "備忘", "description": "x", "datetime": "2026-10-14 08:00"},
  {"type": "行程", "description": "y", "datetime": "2026-10-14 08:00:30"}
]`
	require.NoError(t, os.WriteFile(cfg.records, []byte(content), 0o644))

	recs := store.LoadRecords(ctx)
	require.Len(t, recs, 2)
	assert.Equal(t, "晚餐", recs[0].Description)
	assert.Equal(t, "10月20號 看牙醫", recs[1].Description)

	require.NoError(t, store.AppendRecord(ctx, lunch(t)))

	recs = store.LoadRecords(ctx)
	require.Len(t, recs, 3)
	assert.Equal(t, "晚餐", recs[0].Description)
	assert.Equal(t, "10月20號 看牙醫", recs[1].Description)
	assert.Equal(t, "午餐", recs[2].Description)
}

func Test_RegisterUser_ShouldAddUserOnce(t *testing.T) {
	ctx := context.Background()
	store, cfg := newJSONStore(t)

	added, err := store.RegisterUser(ctx, "U1")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.RegisterUser(ctx, "U1")
	require.NoError(t, err)
	assert.False(t, added)

	added, err = store.RegisterUser(ctx, "U2")
	require.NoError(t, err)
	assert.True(t, added)

	assert.Equal(t, []user.ID{"U1", "U2"}, store.LoadUsers(ctx))

	raw, err := os.ReadFile(cfg.users)
	require.NoError(t, err)
	assert.JSONEq(t, `["U1","U2"]`, string(raw))
}

func Test_LoadUsers_ShouldDropDuplicates(t *testing.T) {
	store, cfg := newJSONStore(t)
	require.NoError(t, os.WriteFile(cfg.users, []byte(`["a","b","a"]`), 0o644))

	assert.Equal(t, []user.ID{"a", "b"}, store.LoadUsers(context.Background()))
}

func Test_SaveRecords_ShouldFailWhenDirectoryIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	store := New(NewJSONStorage(filesCfg{
		users:   filepath.Join(blocker, "users.json"),
		records: filepath.Join(blocker, "records.json"),
	}))

	err := store.AppendRecord(context.Background(), lunch(t))

	assert.Error(t, err)
}

func Test_BoltStorage_ShouldPersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")

	backend, err := NewBoltStorage(path)
	require.NoError(t, err)
	store := New(backend)
	assert.Empty(t, store.LoadRecords(ctx))
	assert.Empty(t, store.LoadUsers(ctx))

	require.NoError(t, store.AppendRecord(ctx, lunch(t)))
	_, err = store.RegisterUser(ctx, "42")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	backend, err = NewBoltStorage(path)
	require.NoError(t, err)
	store = New(backend)
	defer store.Close()

	recs := store.LoadRecords(ctx)
	require.Len(t, recs, 1)
	assert.Equal(t, lunch(t).Document(), recs[0].Document())
	assert.Equal(t, []user.ID{"42"}, store.LoadUsers(ctx))
}

func Test_InMemStorage_ShouldNotShareSlices(t *testing.T) {
	ctx := context.Background()
	backend := NewInMemStorage()
	store := New(backend)
	require.NoError(t, store.AppendRecord(ctx, lunch(t)))

	recs := store.LoadRecords(ctx)
	recs[0].Description = "changed"

	assert.Equal(t, "午餐", store.LoadRecords(ctx)[0].Description)
}

func Test_InsertBatches_ShouldStayUnderParamLimit(t *testing.T) {
	rows := make([][]interface{}, 0, 25000)
	for i := 0; i < 25000; i++ {
		rows = append(rows, []interface{}{i, "消費", "午餐", 120, "食物", time.Time{}})
	}

	batches := insertBatches(recordsTable, recordColumns, rows)

	require.Len(t, batches, 3)
	total := 0
	for _, b := range batches {
		_, args, err := b.ToSql()
		require.NoError(t, err)
		assert.LessOrEqual(t, len(args), maxBindParams)
		total += len(args)
	}
	assert.Equal(t, 25000*len(recordColumns), total)
}

func Test_InsertBatches_ShouldBeEmptyWithoutRows(t *testing.T) {
	assert.Empty(t, insertBatches(usersTable, []string{"position", "id"}, nil))
}

func strPtr(s string) *string {
	return &s
}
