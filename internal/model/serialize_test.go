package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("preserves key order", func(t *testing.T) {
		doc, err := Decode([]byte(`{"pear": 2, "apple": 7, "fig": 1}`))
		require.NoError(t, err)

		assert.Equal(t, []string{"pear", "apple", "fig"}, doc.Entries.Names())
		assert.Equal(t, map[string]int{"pear": 2, "apple": 7, "fig": 1}, doc.Entries.Map())
		assert.Empty(t, doc.Skipped)
	})

	t.Run("empty object", func(t *testing.T) {
		doc, err := Decode([]byte("{}"))
		require.NoError(t, err)
		assert.Empty(t, doc.Entries)
	})

	t.Run("skips values that are not non-negative integers", func(t *testing.T) {
		doc, err := Decode([]byte(`{
			"apple": 3,
			"banana": "ten",
			"cherry": 2.5,
			"date": -4,
			"elder": null,
			"fig": [1],
			"grape": true
		}`))
		require.NoError(t, err)

		assert.Equal(t, Snapshot{{Name: "apple", Quantity: 3}}, doc.Entries)
		require.Len(t, doc.Skipped, 6)
		assert.Equal(t, "banana", doc.Skipped[0].Name)
		assert.Equal(t, `"ten"`, doc.Skipped[0].Value)
		assert.Equal(t, "not an integer", doc.Skipped[0].Reason)
		assert.Equal(t, "negative quantity", doc.Skipped[2].Reason)
	})

	t.Run("drops zero quantities", func(t *testing.T) {
		doc, err := Decode([]byte(`{"apple": 0, "pear": 1}`))
		require.NoError(t, err)
		assert.Equal(t, Snapshot{{Name: "pear", Quantity: 1}}, doc.Entries)
		assert.Empty(t, doc.Skipped)
	})

	t.Run("repeated key keeps first position and last value", func(t *testing.T) {
		doc, err := Decode([]byte(`{"apple": 1, "pear": 2, "apple": 9}`))
		require.NoError(t, err)
		assert.Equal(t, Snapshot{{Name: "apple", Quantity: 9}, {Name: "pear", Quantity: 2}}, doc.Entries)
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		cases := map[string]string{
			"empty":         "",
			"truncated":     `{"apple": 3`,
			"not json":      "apple=3",
			"trailing":      `{"apple": 3} {}`,
			"missing colon": `{"apple" 3}`,
		}
		for name, input := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := Decode([]byte(input))
				assert.Error(t, err)
			})
		}
	})

	t.Run("rejects non-object documents", func(t *testing.T) {
		_, err := Decode([]byte(`["apple", 3]`))
		assert.ErrorIs(t, err, ErrNotObject)

		_, err = Decode([]byte(`42`))
		assert.ErrorIs(t, err, ErrNotObject)
	})
}

func TestEncode(t *testing.T) {
	t.Run("empty snapshot", func(t *testing.T) {
		data, err := Encode(nil)
		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(data))
	})

	t.Run("indents and keeps order", func(t *testing.T) {
		data, err := Encode(Snapshot{{Name: "pear", Quantity: 2}, {Name: "apple", Quantity: 10}})
		require.NoError(t, err)
		assert.Equal(t, "{\n    \"pear\": 2,\n    \"apple\": 10\n}\n", string(data))
	})

	t.Run("escapes names", func(t *testing.T) {
		data, err := Encode(Snapshot{{Name: `say "hi"`, Quantity: 1}})
		require.NoError(t, err)

		doc, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, `say "hi"`, doc.Entries[0].Name)
	})
}

func TestSaveInventoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	original := Snapshot{
		{Name: "banana", Quantity: 15},
		{Name: "apple", Quantity: 7},
	}

	require.NoError(t, SaveInventory(path, original))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, original.Map(), doc.Entries.Map())
	assert.Equal(t, original, doc.Entries)
}

func TestSaveInventoryError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "inventory.json")

	err := SaveInventory(path, Snapshot{{Name: "apple", Quantity: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write inventory file")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
