package api_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libdash/internal/api"
)

func TestTransactionRefDecoding(t *testing.T) {
	t.Run("expanded refs project title and name", func(t *testing.T) {
		raw := `{
			"transactionId": "TXN-42",
			"bookId": {"_id": "b1", "title": "Dune"},
			"userId": {"_id": "u1", "name": "Paul"},
			"status": "borrowed",
			"borrowDate": "2024-03-01",
			"dueDate": "2024-03-15"
		}`
		var tx api.Transaction
		require.NoError(t, json.Unmarshal([]byte(raw), &tx))

		assert.Equal(t, "Dune", tx.BookTitle())
		assert.Equal(t, "Paul", tx.UserName())
		assert.Equal(t, "b1", tx.Book.ID)
		assert.Equal(t, "u1", tx.User.ID)
	})

	t.Run("bare id strings render as Unknown without erroring", func(t *testing.T) {
		raw := `{
			"transactionId": "TXN-43",
			"bookId": "b7",
			"userId": "u9",
			"status": "borrowed",
			"borrowDate": "2024-03-02"
		}`
		var tx api.Transaction
		require.NoError(t, json.Unmarshal([]byte(raw), &tx))

		assert.Equal(t, "Unknown", tx.BookTitle())
		assert.Equal(t, "Unknown", tx.UserName())
		assert.Equal(t, "b7", tx.Book.ID)
		assert.False(t, tx.Book.Expanded)
	})

	t.Run("expanded ref missing a title still renders Unknown", func(t *testing.T) {
		raw := `{"transactionId": "TXN-44", "bookId": {"_id": "b7"}, "userId": "u9", "status": "overdue", "borrowDate": "2024-01-02"}`
		var tx api.Transaction
		require.NoError(t, json.Unmarshal([]byte(raw), &tx))
		assert.Equal(t, "Unknown", tx.BookTitle())
	})

	t.Run("optional fine and overdue days decode when present", func(t *testing.T) {
		raw := `{"transactionId": "TXN-45", "bookId": "b1", "userId": "u1", "status": "overdue", "borrowDate": "2024-01-02", "fine": 2.5, "overdueDays": 4}`
		var tx api.Transaction
		require.NoError(t, json.Unmarshal([]byte(raw), &tx))
		require.NotNil(t, tx.Fine)
		assert.InDelta(t, 2.5, *tx.Fine, 0.001)
		require.NotNil(t, tx.OverdueDays)
		assert.Equal(t, 4, *tx.OverdueDays)
	})
}

func TestRowAccessors(t *testing.T) {
	var rows []api.Row
	raw := `[{"title": "Dune", "borrowCount": 12, "_id": 3}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &rows))
	row := rows[0]

	title, ok := row.String("title")
	assert.True(t, ok)
	assert.Equal(t, "Dune", title)

	count, ok := row.Number("borrowCount")
	assert.True(t, ok)
	assert.Equal(t, float64(12), count)

	month, ok := row.Int("_id")
	assert.True(t, ok)
	assert.Equal(t, 3, month)

	_, ok = row.Number("title")
	assert.False(t, ok, "string fields are not numeric")
	_, ok = row.Number("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"_id", "borrowCount", "title"}, row.Keys())
}
