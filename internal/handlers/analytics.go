package handlers

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"libdash/internal/api"
	"libdash/internal/view"
	"libdash/web/src/templates/pages"
)

// AnalyticsHandler renders the analytics page.
type AnalyticsHandler struct {
	page *Page
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(page *Page) *AnalyticsHandler {
	return &AnalyticsHandler{page: page}
}

// AnalyticsGet shows the analytics page for the requested tab. Value columns
// are picked via an ordered preference list because the reporting endpoints
// omit fields depending on the time window.
func (h *AnalyticsHandler) AnalyticsGet(c echo.Context) error {
	ctx := c.Request().Context()
	health := h.page.probe(c)

	data := pages.AnalyticsData{Tab: c.QueryParam("tab")}
	if data.Tab == "" {
		data.Tab = pages.AnalyticsTabMostBorrowed
	}

	switch data.Tab {
	case pages.AnalyticsTabUsers:
		rows, err := h.page.API.UserCategoryStats(ctx)
		if err != nil {
			data.UserErr = view.UserMessage(err)
			break
		}
		if col, ok := view.PickValueColumn(rows, "totalBorrows", "count"); ok {
			data.UserSeries = view.SeriesFromRows("Total Borrows", rows, "_id", col)
		}

	case pages.AnalyticsTabPatterns:
		rows, err := h.page.API.ReadingPatterns(ctx)
		if err != nil {
			data.PatternsErr = view.UserMessage(err)
			break
		}
		if col, ok := view.PickValueColumn(rows, "totalTransactions", "count"); ok {
			data.ActivitySeries = view.SeriesFromRows("Transactions", rows, "_id", col)
		}
		// The duration chart only appears when the payload carries one of
		// the known duration columns; a stray numeric field is not a
		// stand-in for it.
		for _, col := range []string{"averageBorrowDuration", "avgDuration"} {
			if !hasColumn(rows, col) {
				continue
			}
			data.DurationSeries = view.SeriesFromRows("Avg Duration", rows, "_id", col)
			data.HasDuration = !data.DurationSeries.Empty()
			break
		}

	case pages.AnalyticsTabMonthly:
		current := time.Now().Year()
		data.Year = current
		if y, err := strconv.Atoi(c.QueryParam("year")); err == nil && y >= current-2 && y <= current {
			data.Year = y
		}
		data.Years = []int{current - 2, current - 1, current}

		rows, err := h.page.API.MonthlyReport(ctx, data.Year)
		if err != nil {
			data.MonthlyErr = view.UserMessage(err)
			break
		}
		data.MonthlySeries = monthlySeries(rows)
		data.MonthlyRows = namedMonths(rows)

	default:
		data.Limit = 10
		if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l >= 5 && l <= 50 {
			data.Limit = l
		}
		data.Period = c.QueryParam("period")
		if data.Period == "" {
			data.Period = "all"
		}

		rows, err := h.page.API.MostBorrowed(ctx, data.Limit, data.Period)
		if err != nil {
			data.BorrowedErr = view.UserMessage(err)
			break
		}
		data.MostBorrowed = rows
		if col, ok := view.PickValueColumn(rows, "borrowCount", "count"); ok {
			data.BorrowedSeries = view.SeriesFromRows("Borrow Count", rows, "title", col)
		}
	}

	return h.page.render(c, "Analytics", health, pages.Analytics(data))
}

// monthlySeries builds one series per activity column the report carries.
func monthlySeries(rows []api.Row) []view.Series {
	columns := []struct {
		key  string
		name string
	}{
		{"totalBorrows", "Total Borrows"},
		{"totalReturns", "Total Returns"},
		{"totalOverdue", "Overdue Books"},
	}

	var series []view.Series
	for _, col := range columns {
		if !hasColumn(rows, col.key) {
			continue
		}
		series = append(series, view.SeriesFromRows(col.name, rows, "month", col.key))
	}
	return series
}

// namedMonths replaces the numeric month field with its full name for the
// report table. The chart series are built from the raw rows beforehand.
func namedMonths(rows []api.Row) []api.Row {
	named := make([]api.Row, 0, len(rows))
	for _, row := range rows {
		out := make(api.Row, len(row))
		for k, v := range row {
			out[k] = v
		}
		if n, ok := row.Int("month"); ok {
			out["month"] = view.MonthLongName(n)
		}
		named = append(named, out)
	}
	return named
}

// hasColumn reports whether the rows carry a numeric field of that name.
func hasColumn(rows []api.Row, key string) bool {
	if len(rows) == 0 {
		return false
	}
	_, ok := rows[0].Number(key)
	return ok
}
