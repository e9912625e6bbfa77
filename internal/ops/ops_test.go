package ops

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacksmith/inv/internal/stock"
	"github.com/jacksmith/inv/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// testConfig returns a config whose data file lives in a temp dir.
func testConfig(t *testing.T) *storage.Config {
	t.Helper()
	cfg := storage.DefaultConfig()
	cfg.DataFile = filepath.Join(t.TempDir(), "inventory.json")
	return cfg
}

func TestOpen(t *testing.T) {
	t.Run("missing data file starts empty", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		s := Open(testConfig(t), zap.New(core))

		assert.Equal(t, 0, s.Stock.Len())
		entries := logs.FilterMessage("data file not found, starting fresh").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "storage", entries[0].LoggerName)
	})

	t.Run("loads existing data in file order", func(t *testing.T) {
		cfg := testConfig(t)
		require.NoError(t, os.WriteFile(cfg.DataFile, []byte(`{"banana": 15, "apple": 3}`), 0644))

		s := Open(cfg, nil)
		assert.Equal(t, []string{"banana", "apple"}, s.Stock.Items().Names())
		assert.Equal(t, []string{"apple"}, s.Stock.LowItems(cfg.LowThreshold))
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		dir := t.TempDir()
		orig, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		defer os.Chdir(orig)

		s := Open(nil, nil)
		assert.Equal(t, storage.DefaultDataFile, s.File.Path())
	})

	t.Run("observers are attached", func(t *testing.T) {
		journal := &stock.Journal{}
		s := Open(testConfig(t), nil, journal)

		s.Stock.Add("apple", 2)
		assert.Equal(t, 1, journal.Len())
	})
}

func TestCommitRoundTrip(t *testing.T) {
	cfg := testConfig(t)

	s := Open(cfg, nil)
	s.Stock.Add("apple", 5)
	s.Stock.Add("banana", 15)
	s.Stock.Remove("apple", 10)
	require.NoError(t, s.Commit())

	reopened := Open(cfg, nil)
	assert.Equal(t, map[string]int{"banana": 15}, reopened.Stock.Items().Map())
	assert.Equal(t, 0, reopened.Stock.Quantity("apple"))
}

func TestCommitCorruptFile(t *testing.T) {
	const corrupt = `{"apple": 3,`

	t.Run("leaves the file in place", func(t *testing.T) {
		cfg := testConfig(t)
		require.NoError(t, os.WriteFile(cfg.DataFile, []byte(corrupt), 0644))

		s := Open(cfg, nil)
		s.Stock.Add("pear", 1)

		err := s.Commit()
		require.Error(t, err)
		var ce *storage.CorruptError
		assert.ErrorAs(t, err, &ce)
		assert.Equal(t, cfg.DataFile, ce.Path)

		data, err := os.ReadFile(cfg.DataFile)
		require.NoError(t, err)
		assert.Equal(t, corrupt, string(data))
	})

	t.Run("force overwrites", func(t *testing.T) {
		cfg := testConfig(t)
		require.NoError(t, os.WriteFile(cfg.DataFile, []byte(corrupt), 0644))

		s := Open(cfg, nil)
		s.Force = true
		s.Stock.Add("pear", 1)
		require.NoError(t, s.Commit())

		assert.Equal(t, map[string]int{"pear": 1}, Open(cfg, nil).Stock.Items().Map())
	})

	t.Run("missing file is not a reason to refuse", func(t *testing.T) {
		cfg := testConfig(t)
		s := Open(cfg, nil)
		s.Stock.Add("pear", 1)
		require.NoError(t, s.Commit())
	})
}

func TestParseAdjustments(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		adjs, err := ParseAdjustments([]byte(`
- op: add
  item: apple
  qty: 10
- op: remove
  item: apple
  qty: 3
`))
		require.NoError(t, err)
		require.Len(t, adjs, 2)
		assert.Equal(t, stock.OpAdd, adjs[0].Op)
		assert.Equal(t, "apple", adjs[0].Item)
		assert.Equal(t, 10, adjs[0].Qty)
	})

	t.Run("json", func(t *testing.T) {
		adjs, err := ParseAdjustments([]byte(`[{"op": "add", "item": 123, "qty": "ten"}]`))
		require.NoError(t, err)
		require.Len(t, adjs, 1)
		assert.Equal(t, 123, adjs[0].Item)
		assert.Equal(t, "ten", adjs[0].Qty)
	})

	t.Run("not a list", func(t *testing.T) {
		_, err := ParseAdjustments([]byte(`op: add`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse adjustments")
	})
}

func TestLoadAdjustmentsMissingFile(t *testing.T) {
	_, err := LoadAdjustments(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyAll(t *testing.T) {
	st := stock.New()
	adjs := []stock.Adjustment{
		{Op: stock.OpAdd, Item: "apple", Qty: 10},
		{Op: stock.OpAdd, Item: 123, Qty: "ten"},
		{Op: stock.OpRemove, Item: "orange", Qty: 1},
		{Op: stock.OpRemove, Item: "apple", Qty: 3},
	}

	results, sum := ApplyAll(st, adjs)

	require.Len(t, results, 4)
	assert.Equal(t, Summary{Applied: 2, Rejected: 1, NotFound: 1}, sum)
	assert.Equal(t, stock.OutcomeRejected, results[1].Outcome)
	assert.Equal(t, 7, st.Quantity("apple"))
}

func TestRunDemo(t *testing.T) {
	cfg := testConfig(t)
	journal := &stock.Journal{}
	s := Open(cfg, nil, journal)

	var buf bytes.Buffer
	require.NoError(t, RunDemo(s, &buf, journal))

	out := buf.String()
	assert.Contains(t, out, "Apple stock: 7\n")
	assert.Contains(t, out, "Low items: []\n")
	assert.Contains(t, out, "apple -> 7\nbanana -> 15\n")
	assert.Contains(t, out, "Journal:\n")
	assert.Equal(t, 2, journal.Len())
	assert.True(t, strings.HasSuffix(journal.Entries()[1], "Added 15 of banana"))

	reopened := Open(cfg, nil)
	assert.Equal(t, map[string]int{"apple": 7, "banana": 15}, reopened.Stock.Items().Map())
}

func TestRunDemoSaveFailure(t *testing.T) {
	cfg := storage.DefaultConfig()
	cfg.DataFile = filepath.Join(t.TempDir(), "missing-dir", "inventory.json")
	s := Open(cfg, nil)

	var buf bytes.Buffer
	err := RunDemo(s, &buf, nil)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "--- Items Report ---")
}
