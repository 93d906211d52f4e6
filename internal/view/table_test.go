package view_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libdash/internal/api"
	"libdash/internal/view"
)

func TestUserMessage(t *testing.T) {
	t.Run("each failure class gets a distinct message", func(t *testing.T) {
		unavailable := view.UserMessage(fmt.Errorf("wrap: %w", api.ErrUnavailable))
		timeout := view.UserMessage(fmt.Errorf("wrap: %w", api.ErrTimeout))
		request := view.UserMessage(&api.RequestError{Status: http.StatusNotFound, Message: "Book not found"})

		assert.Contains(t, unavailable, "Cannot connect")
		assert.Contains(t, timeout, "timeout")
		assert.NotEqual(t, unavailable, timeout)
		assert.Equal(t, "API Error (404): Book not found", request)
	})

	t.Run("unknown errors fall back to a generic message", func(t *testing.T) {
		assert.Equal(t, "Error: boom", view.UserMessage(fmt.Errorf("boom")))
	})
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", view.FormatValue(nil))
	assert.Equal(t, "Dune", view.FormatValue("Dune"))
	assert.Equal(t, "12", view.FormatValue(float64(12)))
	assert.Equal(t, "12.50", view.FormatValue(12.5))
	assert.Equal(t, "true", view.FormatValue(true))
}

func TestRowTable(t *testing.T) {
	rows := rowsFromJSON(t, `[
		{"title":"Dune","borrowCount":12},
		{"title":"Foundation"}
	]`)

	headers, cells := view.RowTable(rows)
	assert.Equal(t, []string{"borrowCount", "title"}, headers)
	require.Len(t, cells, 2)
	assert.Equal(t, []string{"12", "Dune"}, cells[0])
	assert.Equal(t, []string{"", "Foundation"}, cells[1], "missing fields become empty cells")

	headers, cells = view.RowTable(nil)
	assert.Nil(t, headers)
	assert.Nil(t, cells)
}
