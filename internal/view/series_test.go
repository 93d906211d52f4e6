package view_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libdash/internal/api"
	"libdash/internal/view"
)

func rowsFromJSON(t *testing.T, raw string) []api.Row {
	t.Helper()
	var rows []api.Row
	require.NoError(t, json.Unmarshal([]byte(raw), &rows))
	return rows
}

func TestPickValueColumn(t *testing.T) {
	t.Run("prefers the first named column present", func(t *testing.T) {
		rows := rowsFromJSON(t, `[{"title":"Dune","borrowCount":12,"count":4}]`)
		col, ok := view.PickValueColumn(rows, "borrowCount", "count")
		require.True(t, ok)
		assert.Equal(t, "borrowCount", col)
	})

	t.Run("falls through the preference list in order", func(t *testing.T) {
		rows := rowsFromJSON(t, `[{"title":"Dune","count":4}]`)
		col, ok := view.PickValueColumn(rows, "borrowCount", "count")
		require.True(t, ok)
		assert.Equal(t, "count", col)
	})

	t.Run("falls back to the only numeric column", func(t *testing.T) {
		rows := rowsFromJSON(t, `[{"title":"Dune","checkouts":7}]`)
		col, ok := view.PickValueColumn(rows, "borrowCount", "count")
		require.True(t, ok)
		assert.Equal(t, "checkouts", col)
	})

	t.Run("ignores preferred names bound to non-numeric values", func(t *testing.T) {
		rows := rowsFromJSON(t, `[{"borrowCount":"a lot","loans":3}]`)
		col, ok := view.PickValueColumn(rows, "borrowCount", "count")
		require.True(t, ok)
		assert.Equal(t, "loans", col)
	})

	t.Run("reports no column for empty or all-text rows", func(t *testing.T) {
		_, ok := view.PickValueColumn(nil, "count")
		assert.False(t, ok)

		rows := rowsFromJSON(t, `[{"title":"Dune"}]`)
		_, ok = view.PickValueColumn(rows, "count")
		assert.False(t, ok)
	})
}

func TestSeriesFromRows(t *testing.T) {
	t.Run("projects labels and values in row order", func(t *testing.T) {
		rows := rowsFromJSON(t, `[
			{"title":"Dune","borrowCount":12},
			{"title":"Foundation","borrowCount":9}
		]`)
		s := view.SeriesFromRows("Borrows", rows, "title", "borrowCount")

		require.Len(t, s.Points, 2)
		assert.Equal(t, view.Point{Label: "Dune", Value: 12}, s.Points[0])
		assert.Equal(t, view.Point{Label: "Foundation", Value: 9}, s.Points[1])
		assert.Equal(t, float64(21), s.Total())
		assert.False(t, s.Empty())
	})

	t.Run("numeric month labels resolve to month names", func(t *testing.T) {
		rows := rowsFromJSON(t, `[{"_id":1,"count":5},{"_id":13,"count":2}]`)
		s := view.SeriesFromRows("Activity", rows, "_id", "count")

		require.Len(t, s.Points, 2)
		assert.Equal(t, "Jan", s.Points[0].Label)
		assert.Equal(t, "Month 13", s.Points[1].Label)
	})

	t.Run("missing value fields contribute zero points", func(t *testing.T) {
		rows := rowsFromJSON(t, `[{"title":"Dune"},{"title":"Foundation","count":3}]`)
		s := view.SeriesFromRows("Borrows", rows, "title", "count")

		require.Len(t, s.Points, 2)
		assert.Equal(t, float64(0), s.Points[0].Value)
		assert.Equal(t, float64(3), s.Points[1].Value)
	})

	t.Run("rows without the label field are skipped", func(t *testing.T) {
		rows := rowsFromJSON(t, `[{"count":3},{"title":"Dune","count":4}]`)
		s := view.SeriesFromRows("Borrows", rows, "title", "count")
		require.Len(t, s.Points, 1)
		assert.Equal(t, "Dune", s.Points[0].Label)
	})
}
