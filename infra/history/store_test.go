package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/rote/core/model"
)

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func record(id string, at time.Time, codes ...string) Record {
	rec := Record{RunID: id, Timestamp: at}
	for i, c := range codes {
		rec.Assignments = append(rec.Assignments, model.Assignment{Period: 1, ParticipantCode: c, Capability: "Rey", RequirementIndex: i})
	}
	return rec
}

func TestQueryMatches(t *testing.T) {
	rec := record("r1", base, "111", "222")
	cases := []struct {
		name string
		q    Query
		want bool
	}{
		{"empty", Query{}, true},
		{"participant hit", Query{ParticipantCode: "222"}, true},
		{"participant miss", Query{ParticipantCode: "333"}, false},
		{"run id", Query{RunID: "r2"}, false},
		{"before start", Query{Start: base.Add(time.Minute)}, false},
		{"after end", Query{End: base.Add(-time.Minute)}, false},
		{"window", Query{Start: base.Add(-time.Minute), End: base.Add(time.Minute)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.q.Matches(rec))
		})
	}
}

func TestRecordParticipants(t *testing.T) {
	rec := record("r1", base, "b", "a", "b")
	assert.Equal(t, []string{"b", "a"}, rec.Participants())
}

func TestNewRecord(t *testing.T) {
	plan := model.Plan{RunID: "r1", CreatedAt: base, Assignments: []model.Assignment{{ParticipantCode: "a"}}}
	rec := NewRecord(plan)
	assert.Equal(t, "r1", rec.RunID)
	assert.Equal(t, base, rec.Timestamp)
	assert.Len(t, rec.Assignments, 1)
}

func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, record("r1", base, "111")))
	require.NoError(t, store.Append(ctx, record("r2", base.Add(time.Hour), "222", "111")))
	require.NoError(t, store.Append(ctx, record("r3", base.Add(2*time.Hour), "333")))

	all, err := store.Query(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "r1", all[0].RunID)

	byCode, err := store.Query(ctx, Query{ParticipantCode: "111"})
	require.NoError(t, err)
	require.Len(t, byCode, 2)
	assert.Equal(t, "r2", byCode[1].RunID)

	window, err := store.Query(ctx, Query{Start: base.Add(30 * time.Minute), End: base.Add(90 * time.Minute)})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, "r2", window[0].RunID)

	byRun, err := store.Query(ctx, Query{RunID: "r3"})
	require.NoError(t, err)
	require.Len(t, byRun, 1)
	assert.Equal(t, "333", byRun[0].Assignments[0].ParticipantCode)
}

func TestJSONLStore(t *testing.T) {
	store, err := NewJSONLStore(filepath.Join(t.TempDir(), "history.jsonl"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	exerciseStore(t, store)
}

func TestRotatingJSONLStore(t *testing.T) {
	store, err := NewRotatingJSONLStore(filepath.Join(t.TempDir(), "nested", "history.jsonl"), 1, 2, 1)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	exerciseStore(t, store)
}

func TestRotatingJSONLStore_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.jsonl")
	store, err := NewRotatingJSONLStore(path, 1, 0, 0)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	codes := make([]string, 2000)
	for i := range codes {
		codes[i] = "participant-with-a-long-code"
	}
	big := record("big", base, codes...)
	for i := 0; i < 8; i++ {
		require.NoError(t, store.Append(context.Background(), big))
	}
	files, _ := filepath.Glob(filepath.Join(dir, "history*"))
	if len(files) < 2 {
		t.Fatalf("expected rotated files, got %v", files)
	}
	out, err := store.Query(context.Background(), Query{RunID: "big"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.LessOrEqual(t, len(out), 8)
}

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	exerciseStore(t, store)
}

func TestSQLiteStore_DuplicateRunID(t *testing.T) {
	store, err := NewSQLiteStore("file:dup.db?mode=memory&cache=shared")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, record("same", base, "a")))
	assert.Error(t, store.Append(ctx, record("same", base, "b")))

	out, err := store.Query(ctx, Query{ParticipantCode: "b"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		cfg  Config
		want any
	}{
		{Config{Backend: BackendNone}, NopStore{}},
		{Config{Backend: BackendJSONL, Path: filepath.Join(dir, "a.jsonl")}, &JSONLStore{}},
		{Config{Backend: BackendJSONL, Path: filepath.Join(dir, "b.jsonl"), MaxSizeMB: 1}, &RotatingJSONLStore{}},
		{Config{Backend: BackendSQLite, Path: filepath.Join(dir, "c.db")}, &SQLiteStore{}},
	}
	for _, tc := range cases {
		store, err := Open(tc.cfg)
		require.NoError(t, err)
		assert.IsType(t, tc.want, store)
		_ = store.Close()
	}
	_, err := Open(Config{Backend: "redis"})
	assert.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	var c Config
	c.SetDefaults()
	assert.Equal(t, BackendJSONL, c.Backend)
	assert.Equal(t, "rote_history.jsonl", c.Path)
	assert.NoError(t, c.Validate())

	s := Config{Backend: BackendSQLite}
	s.SetDefaults()
	assert.Equal(t, "rote_history.db", s.Path)

	n := Config{Backend: BackendNone}
	n.SetDefaults()
	assert.Empty(t, n.Path)
	assert.NoError(t, n.Validate())

	assert.Error(t, Config{Backend: "csv", Path: "x"}.Validate())
}
