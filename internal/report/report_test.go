package report

import (
	"bytes"
	"testing"

	"github.com/jacksmith/inv/internal/cli"
	"github.com/jacksmith/inv/internal/stock"
	"github.com/stretchr/testify/assert"
)

func sampleStore() *stock.Store {
	s := stock.New()
	s.Add("apple", 3)
	s.Add("banana", 15)
	return s
}

func TestItems(t *testing.T) {
	t.Run("lists items in store order", func(t *testing.T) {
		var buf bytes.Buffer
		Items(&buf, sampleStore())

		assert.Equal(t, "\n--- Items Report ---\napple -> 3\nbanana -> 15\n--------------------\n\n", buf.String())
	})

	t.Run("empty store prints empty message", func(t *testing.T) {
		var buf bytes.Buffer
		Items(&buf, stock.New())

		assert.Equal(t, "\n--- Items Report ---\nInventory is empty.\n--------------------\n\n", buf.String())
	})

	t.Run("report does not change the store", func(t *testing.T) {
		s := sampleStore()
		before := s.Items()

		Items(&bytes.Buffer{}, s)
		assert.Equal(t, before, s.Items())
	})
}

func TestLow(t *testing.T) {
	t.Run("lists low items with quantities", func(t *testing.T) {
		var buf bytes.Buffer
		Low(&buf, sampleStore(), stock.DefaultLowThreshold)

		assert.Equal(t, "Low stock (<= 5):\n  apple -> 3\n", buf.String())
	})

	t.Run("nothing low", func(t *testing.T) {
		var buf bytes.Buffer
		Low(&buf, sampleStore(), 1)

		assert.Equal(t, "No low-stock items.\n", buf.String())
	})
}

func TestTable(t *testing.T) {
	defer cli.SetColorEnabled(cli.ColorEnabled())
	cli.SetColorEnabled(false)

	t.Run("flags low rows", func(t *testing.T) {
		var buf bytes.Buffer
		Table(&buf, sampleStore(), 5)

		assert.Equal(t, "apple    3  [low]\nbanana  15  [ok]\n", buf.String())
	})

	t.Run("empty store", func(t *testing.T) {
		var buf bytes.Buffer
		Table(&buf, stock.New(), 5)

		assert.Equal(t, "Inventory is empty.\n", buf.String())
	})
}
